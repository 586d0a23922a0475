package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInfrastructureError("mongo upsert failed").WithCause(cause)

	assert.Contains(t, err.Error(), "mongo upsert failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("employee")
	assert.Equal(t, "employee not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.True(t, IsNotFound(err))
}

func TestIsNotFound_SentinelErrors(t *testing.T) {
	assert.True(t, IsNotFound(ErrEmployeeNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrProjectNotFound)))
	assert.False(t, IsNotFound(ErrDuplicateKey))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ErrDuplicateKey))
	assert.True(t, IsConflict(NewConflictError("employeeId taken")))
	assert.False(t, IsConflict(ErrEmployeeNotFound))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("salary must be positive")))
	assert.True(t, IsValidation(ErrInvalidFilter))
	assert.False(t, IsValidation(ErrNotFound))
}

func TestWrapError_PassesAppErrorThrough(t *testing.T) {
	orig := NewConflictError("duplicate")
	wrapped := WrapError(orig, "ignored")
	assert.Same(t, orig, wrapped)

	plain := errors.New("boom")
	wrapped = WrapError(plain, "context")
	assert.Equal(t, ErrorTypeInternal, wrapped.Type)
	assert.True(t, errors.Is(wrapped, plain))
}

func TestWithDetailAndCode(t *testing.T) {
	err := NewValidationError("bad input").
		WithCode("EMP_VALIDATION").
		WithDetail("field", "email")

	assert.Equal(t, "EMP_VALIDATION", err.Code)
	assert.Equal(t, "email", err.Details["field"])
}
