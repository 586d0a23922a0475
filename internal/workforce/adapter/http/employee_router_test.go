package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "workforce-api/internal/shared/errors"
	"workforce-api/internal/workforce/config"
	"workforce-api/internal/workforce/domain/model"
	"workforce-api/internal/workforce/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeUsecase struct {
	employees map[int64]*model.Employee
	listErr   error
}

func newStubEmployeeUsecase() *stubEmployeeUsecase {
	return &stubEmployeeUsecase{employees: make(map[int64]*model.Employee)}
}

func (s *stubEmployeeUsecase) Create(_ context.Context, req usecase.CreateEmployeeRequest) (*model.Employee, error) {
	emp := &model.Employee{
		EmployeeID: req.EmployeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Tags:       []string{},
		IsActive:   true,
	}
	if emp.EmployeeID == 0 {
		emp.EmployeeID = int64(len(s.employees) + 1)
	}
	s.employees[emp.EmployeeID] = emp
	return emp, nil
}

func (s *stubEmployeeUsecase) Get(_ context.Context, employeeID int64) (*model.Employee, error) {
	emp, ok := s.employees[employeeID]
	if !ok {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeUsecase) List(_ context.Context, _ string) ([]*model.Employee, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	result := make([]*model.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (s *stubEmployeeUsecase) Update(_ context.Context, employeeID int64, req usecase.UpdateEmployeeRequest) (*model.Employee, error) {
	emp, ok := s.employees[employeeID]
	if !ok {
		return nil, apperrors.ErrEmployeeNotFound
	}
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	return emp, nil
}

func (s *stubEmployeeUsecase) Delete(_ context.Context, employeeID int64) error {
	if _, ok := s.employees[employeeID]; !ok {
		return apperrors.ErrEmployeeNotFound
	}
	delete(s.employees, employeeID)
	return nil
}

func newTestApp(uc usecase.EmployeeUsecaseInterface) *fiber.App {
	app := fiber.New()
	auth := NewAuthMiddleware(&config.Config{AuthEnabled: false})
	NewEmployeeHandler(uc).RegisterRoutes(app.Group("/api/v1"), auth)
	return app
}

func TestEmployeeRouterCreateAndGet(t *testing.T) {
	uc := newStubEmployeeUsecase()
	app := newTestApp(uc)

	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     "grace@example.com",
	})
	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created model.Employee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(1), created.EmployeeID)
	assert.True(t, created.IsActive)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/employees/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestEmployeeRouterGetNotFound(t *testing.T) {
	app := newTestApp(newStubEmployeeUsecase())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/employees/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEmployeeRouterBadEmployeeID(t *testing.T) {
	app := newTestApp(newStubEmployeeUsecase())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/employees/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEmployeeRouterListEnvelope(t *testing.T) {
	uc := newStubEmployeeUsecase()
	uc.employees[7] = &model.Employee{EmployeeID: 7, FirstName: "Ada"}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/employees", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Employees []*model.Employee `json:"employees"`
		Count     int               `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, 1, envelope.Count)
	require.Len(t, envelope.Employees, 1)
	assert.Equal(t, int64(7), envelope.Employees[0].EmployeeID)
}

func TestEmployeeRouterInternalErrorShape(t *testing.T) {
	uc := newStubEmployeeUsecase()
	uc.listErr = io.ErrUnexpectedEOF
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/employees", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Internal server error", payload["error"])
	assert.Equal(t, io.ErrUnexpectedEOF.Error(), payload["message"])
}

func TestEmployeeRouterInfrastructureErrorShape(t *testing.T) {
	uc := newStubEmployeeUsecase()
	uc.listErr = apperrors.NewInfrastructureError("failed to mint employee ID")
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/employees", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// 500-class domain errors use the same body shape as unknown errors.
	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Internal server error", payload["error"])
	assert.Equal(t, "failed to mint employee ID", payload["message"])
}

func TestEmployeeRouterAuthRequired(t *testing.T) {
	cfg := &config.Config{
		AuthEnabled:  true,
		JWTSecretKey: "0123456789abcdef0123456789abcdef",
		JWTIssuer:    "workforce-api",
	}
	app := fiber.New()
	auth := NewAuthMiddleware(cfg)
	NewEmployeeHandler(newStubEmployeeUsecase()).RegisterRoutes(app.Group("/api/v1"), auth)

	// Reads stay public.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/employees", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Mutations need a token.
	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
