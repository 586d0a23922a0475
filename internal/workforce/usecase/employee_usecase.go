package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "workforce-api/internal/shared/errors"
	"workforce-api/internal/shared/eventbus"
	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce/domain/model"
	"workforce-api/internal/workforce/domain/repository"

	"github.com/go-playground/validator/v10"
)

// Counter names, one per collection whose business keys the API mints.
const (
	counterEmployees   = "employees"
	counterAssignments = "project_employees"
)

// EmployeeUsecaseInterface defines the contract for employee operations.
type EmployeeUsecaseInterface interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (*model.Employee, error)
	Get(ctx context.Context, employeeID int64) (*model.Employee, error)
	List(ctx context.Context, filterExpr string) ([]*model.Employee, error)
	Update(ctx context.Context, employeeID int64, req UpdateEmployeeRequest) (*model.Employee, error)
	Delete(ctx context.Context, employeeID int64) error
}

// CreateEmployeeRequest carries a new employee. EmployeeID zero means
// "mint one from the counter collection".
type CreateEmployeeRequest struct {
	EmployeeID   int64          `json:"employeeId,omitempty"`
	FirstName    string         `json:"firstName" validate:"required"`
	LastName     string         `json:"lastName" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Phone        string         `json:"phone,omitempty"`
	DepartmentID string         `json:"departmentId,omitempty"`
	Position     string         `json:"position,omitempty"`
	Salary       float64        `json:"salary,omitempty" validate:"gte=0"`
	HireDate     time.Time      `json:"hireDate,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	IsActive     *bool          `json:"isActive,omitempty"`
	Address      *model.Address `json:"address,omitempty"`
}

// UpdateEmployeeRequest carries a partial employee update; nil pointers mean
// "leave unchanged".
type UpdateEmployeeRequest struct {
	FirstName    *string        `json:"firstName,omitempty"`
	LastName     *string        `json:"lastName,omitempty"`
	Email        *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string        `json:"phone,omitempty"`
	DepartmentID *string        `json:"departmentId,omitempty"`
	Position     *string        `json:"position,omitempty"`
	Salary       *float64       `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Tags         *[]string      `json:"tags,omitempty"`
	IsActive     *bool          `json:"isActive,omitempty"`
	Address      *model.Address `json:"address,omitempty"`
}

// EmployeeUsecase implements employee CRUD with counter-backed key minting
// and change-event publication.
type EmployeeUsecase struct {
	repo      repository.EmployeeRepository
	counters  repository.CounterRepository
	publisher *changePublisher
	validate  *validator.Validate
	log       logger.Logger
	now       func() time.Time
}

// NewEmployeeUsecase creates a new employee usecase.
func NewEmployeeUsecase(
	repo repository.EmployeeRepository,
	counters repository.CounterRepository,
	bus eventbus.Bus,
	store repository.ChangeEventStore,
	log logger.Logger,
) *EmployeeUsecase {
	return &EmployeeUsecase{
		repo:      repo,
		counters:  counters,
		publisher: newChangePublisher(bus, store, log),
		validate:  validator.New(),
		log:       log,
		now:       time.Now,
	}
}

// Create validates the request, mints a business key when the client did not
// supply one, applies defaults, and upserts the document.
func (uc *EmployeeUsecase) Create(ctx context.Context, req CreateEmployeeRequest) (*model.Employee, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	employeeID := req.EmployeeID
	if employeeID == 0 {
		var err error
		employeeID, err = uc.counters.Next(ctx, counterEmployees)
		if err != nil {
			return nil, apperrors.NewInfrastructureError("failed to mint employee ID").WithCause(err)
		}
	} else {
		_, err := uc.repo.GetByEmployeeID(ctx, employeeID)
		if err == nil {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("employee %d already exists", employeeID))
		}
		if !errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, err
		}
	}

	now := uc.now().UTC()
	employee := &model.Employee{
		EmployeeID:   employeeID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
		Tags:         req.Tags,
		IsActive:     true,
		Address:      req.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if employee.Tags == nil {
		employee.Tags = []string{}
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := uc.repo.Upsert(ctx, employee); err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, counterEmployees, strconv.FormatInt(employeeID, 10),
		model.ChangeTypeCreated, toDocument(employee))
	return employee, nil
}

// Get returns one employee by business key.
func (uc *EmployeeUsecase) Get(ctx context.Context, employeeID int64) (*model.Employee, error) {
	return uc.repo.GetByEmployeeID(ctx, employeeID)
}

// List returns all employees, optionally filtered by a CEL expression over
// the `employee` variable.
func (uc *EmployeeUsecase) List(ctx context.Context, filterExpr string) ([]*model.Employee, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filterExpr == "" {
		return employees, nil
	}

	filter, err := NewListFilter("employee", filterExpr)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.Employee, 0, len(employees))
	for _, employee := range employees {
		matched, err := filter.Match(toDocument(employee))
		if err != nil {
			return nil, err
		}
		if matched {
			filtered = append(filtered, employee)
		}
	}
	return filtered, nil
}

// Update applies a partial update to one employee.
func (uc *EmployeeUsecase) Update(ctx context.Context, employeeID int64, req UpdateEmployeeRequest) (*model.Employee, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	employee, err := uc.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.DepartmentID != nil {
		employee.DepartmentID = *req.DepartmentID
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.Tags != nil {
		employee.Tags = *req.Tags
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.Address != nil {
		employee.Address = req.Address
	}
	employee.UpdatedAt = uc.now().UTC()

	if err := uc.repo.Upsert(ctx, employee); err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, counterEmployees, strconv.FormatInt(employeeID, 10),
		model.ChangeTypeUpdated, toDocument(employee))
	return employee, nil
}

// Delete removes one employee by business key.
func (uc *EmployeeUsecase) Delete(ctx context.Context, employeeID int64) error {
	if err := uc.repo.Delete(ctx, employeeID); err != nil {
		return err
	}
	uc.publisher.publish(ctx, counterEmployees, strconv.FormatInt(employeeID, 10),
		model.ChangeTypeDeleted, nil)
	return nil
}
