package http

import (
	"workforce-api/internal/workforce/usecase"

	"github.com/gofiber/fiber/v2"
)

// AssignmentHandler handles HTTP requests for project-employee assignments.
type AssignmentHandler struct {
	usecase usecase.AssignmentUsecaseInterface
}

// NewAssignmentHandler creates a new assignment HTTP handler.
func NewAssignmentHandler(uc usecase.AssignmentUsecaseInterface) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// RegisterRoutes mounts the assignment routes.
func (h *AssignmentHandler) RegisterRoutes(router fiber.Router, auth *AuthMiddleware) {
	router.Get("/assignments", h.List)
	router.Get("/assignments/:empProjectId", h.Get)

	protected := router.Group("/", auth.Protect())
	protected.Post("/assignments", h.Create)
	protected.Delete("/assignments/:empProjectId", h.Delete)
}

func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	assignments, err := h.usecase.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

func (h *AssignmentHandler) Get(c *fiber.Ctx) error {
	assignment, err := h.usecase.Get(c.UserContext(), c.Params("empProjectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(assignment)
}

func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	assignment, err := h.usecase.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.UserContext(), c.Params("empProjectId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
