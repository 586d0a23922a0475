package http

import (
	"workforce-api/internal/workforce/usecase"

	"github.com/gofiber/fiber/v2"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	usecase     usecase.ProjectUsecaseInterface
	assignments usecase.AssignmentUsecaseInterface
}

// NewProjectHandler creates a new project HTTP handler.
func NewProjectHandler(uc usecase.ProjectUsecaseInterface, assignments usecase.AssignmentUsecaseInterface) *ProjectHandler {
	return &ProjectHandler{usecase: uc, assignments: assignments}
}

// RegisterRoutes mounts the project routes.
func (h *ProjectHandler) RegisterRoutes(router fiber.Router, auth *AuthMiddleware) {
	router.Get("/projects", h.List)
	router.Get("/projects/:projectId", h.Get)
	router.Get("/projects/:projectId/employees", h.ListEmployees)

	protected := router.Group("/", auth.Protect())
	protected.Post("/projects", h.Create)
	protected.Put("/projects/:projectId", h.Update)
	protected.Delete("/projects/:projectId", h.Delete)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.usecase.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"projects": projects,
		"count":    len(projects),
	})
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.usecase.Get(c.UserContext(), c.Params("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// ListEmployees returns the assignments of one project.
func (h *ProjectHandler) ListEmployees(c *fiber.Ctx) error {
	projectID := c.Params("projectId")
	if _, err := h.usecase.Get(c.UserContext(), projectID); err != nil {
		return respondError(c, err)
	}

	assignments, err := h.assignments.ListByProject(c.UserContext(), projectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"projectId":   projectID,
		"assignments": assignments,
		"count":       len(assignments),
	})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	project, err := h.usecase.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var req usecase.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	project, err := h.usecase.Update(c.UserContext(), c.Params("projectId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.UserContext(), c.Params("projectId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
