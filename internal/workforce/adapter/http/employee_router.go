package http

import (
	"strconv"

	"workforce-api/internal/workforce/usecase"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles HTTP requests for employees.
type EmployeeHandler struct {
	usecase usecase.EmployeeUsecaseInterface
}

// NewEmployeeHandler creates a new employee HTTP handler.
func NewEmployeeHandler(uc usecase.EmployeeUsecaseInterface) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

// RegisterRoutes mounts the employee routes. Mutations go through the auth
// middleware; reads stay public.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router, auth *AuthMiddleware) {
	router.Get("/employees", h.List)
	router.Get("/employees/:employeeId", h.Get)

	protected := router.Group("/", auth.Protect())
	protected.Post("/employees", h.Create)
	protected.Put("/employees/:employeeId", h.Update)
	protected.Delete("/employees/:employeeId", h.Delete)
}

// List returns all employees, optionally filtered with a CEL expression in
// the `filter` query parameter.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.usecase.List(c.UserContext(), c.Query("filter"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"employees": employees,
		"count":     len(employees),
	})
}

// Get returns one employee by business key.
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return nil
	}

	employee, err := h.usecase.Get(c.UserContext(), employeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Create adds a new employee, minting a business key when none is given.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	employee, err := h.usecase.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// Update applies a partial update to one employee.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return nil
	}

	var req usecase.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	employee, err := h.usecase.Update(c.UserContext(), employeeID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Delete removes one employee.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return nil
	}

	if err := h.usecase.Delete(c.UserContext(), employeeID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseEmployeeID writes the 400 response itself so handlers can simply
// bail out when the path parameter is not numeric.
func parseEmployeeID(c *fiber.Ctx) (int64, bool) {
	employeeID, err := strconv.ParseInt(c.Params("employeeId"), 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "employeeId must be an integer",
		})
		return 0, false
	}
	return employeeID, true
}
