package http

import (
	"workforce-api/internal/workforce/domain/repository"
	"workforce-api/internal/workforce/usecase"

	"github.com/gofiber/fiber/v2"
)

// DepartmentHandler handles HTTP requests for departments.
type DepartmentHandler struct {
	usecase usecase.DepartmentUsecaseInterface
}

// NewDepartmentHandler creates a new department HTTP handler.
func NewDepartmentHandler(uc usecase.DepartmentUsecaseInterface) *DepartmentHandler {
	return &DepartmentHandler{usecase: uc}
}

// RegisterRoutes mounts the department routes.
func (h *DepartmentHandler) RegisterRoutes(router fiber.Router, auth *AuthMiddleware) {
	router.Get("/departments", h.List)
	router.Get("/departments/:departmentId", h.Get)

	protected := router.Group("/", auth.Protect())
	protected.Post("/departments", h.Create)
	protected.Put("/departments/:departmentId", h.Update)
	protected.Delete("/departments/:departmentId", h.Delete)
}

// List returns departments; the `scope` query parameter selects parents,
// children, or all (the default).
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	scope := repository.DepartmentScope(c.Query("scope", string(repository.ScopeAll)))
	switch scope {
	case repository.ScopeParents, repository.ScopeChildren, repository.ScopeAll:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "scope must be one of parents, children, all",
		})
	}

	departments, err := h.usecase.List(c.UserContext(), scope)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"departments": departments,
		"count":       len(departments),
	})
}

func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	department, err := h.usecase.Get(c.UserContext(), c.Params("departmentId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(department)
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	department, err := h.usecase.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(department)
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	var req usecase.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	department, err := h.usecase.Update(c.UserContext(), c.Params("departmentId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(department)
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.UserContext(), c.Params("departmentId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
