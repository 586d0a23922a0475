package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "workforce-api/internal/shared/errors"
	"workforce-api/internal/shared/eventbus"
	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce/domain/model"
	"workforce-api/internal/workforce/domain/repository"

	"github.com/go-playground/validator/v10"
)

// DepartmentUsecaseInterface defines the contract for department operations.
type DepartmentUsecaseInterface interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (*model.Department, error)
	Get(ctx context.Context, departmentID string) (*model.Department, error)
	List(ctx context.Context, scope repository.DepartmentScope) ([]*model.Department, error)
	Update(ctx context.Context, departmentID string, req UpdateDepartmentRequest) (*model.Department, error)
	Delete(ctx context.Context, departmentID string) error
}

// CreateDepartmentRequest carries a new department; a non-empty
// ParentDepartmentID makes it a child department.
type CreateDepartmentRequest struct {
	DepartmentID       string `json:"departmentId" validate:"required"`
	Name               string `json:"name" validate:"required"`
	Description        string `json:"description,omitempty"`
	ParentDepartmentID string `json:"parentDepartmentId,omitempty"`
}

// UpdateDepartmentRequest carries a partial department update.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DepartmentUsecase implements department CRUD over the two-collection
// repository.
type DepartmentUsecase struct {
	repo      repository.DepartmentRepository
	publisher *changePublisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewDepartmentUsecase creates a new department usecase.
func NewDepartmentUsecase(
	repo repository.DepartmentRepository,
	bus eventbus.Bus,
	store repository.ChangeEventStore,
	log logger.Logger,
) *DepartmentUsecase {
	return &DepartmentUsecase{
		repo:      repo,
		publisher: newChangePublisher(bus, store, log),
		validate:  validator.New(),
		now:       time.Now,
	}
}

func (uc *DepartmentUsecase) entityName(d *model.Department) string {
	if d.IsChild() {
		return "departments_child"
	}
	return "departments_parent"
}

func (uc *DepartmentUsecase) Create(ctx context.Context, req CreateDepartmentRequest) (*model.Department, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := uc.repo.GetByDepartmentID(ctx, req.DepartmentID); err == nil {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("department %s already exists", req.DepartmentID))
	} else if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		return nil, err
	}

	department := &model.Department{
		DepartmentID:       req.DepartmentID,
		Name:               req.Name,
		Description:        req.Description,
		ParentDepartmentID: req.ParentDepartmentID,
		CreatedAt:          uc.now().UTC(),
	}
	if err := uc.repo.Upsert(ctx, department); err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, uc.entityName(department), department.DepartmentID,
		model.ChangeTypeCreated, toDocument(department))
	return department, nil
}

func (uc *DepartmentUsecase) Get(ctx context.Context, departmentID string) (*model.Department, error) {
	return uc.repo.GetByDepartmentID(ctx, departmentID)
}

func (uc *DepartmentUsecase) List(ctx context.Context, scope repository.DepartmentScope) ([]*model.Department, error) {
	return uc.repo.List(ctx, scope)
}

func (uc *DepartmentUsecase) Update(ctx context.Context, departmentID string, req UpdateDepartmentRequest) (*model.Department, error) {
	department, err := uc.repo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if err := uc.repo.Upsert(ctx, department); err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, uc.entityName(department), department.DepartmentID,
		model.ChangeTypeUpdated, toDocument(department))
	return department, nil
}

func (uc *DepartmentUsecase) Delete(ctx context.Context, departmentID string) error {
	department, err := uc.repo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, departmentID); err != nil {
		return err
	}

	uc.publisher.publish(ctx, uc.entityName(department), departmentID,
		model.ChangeTypeDeleted, nil)
	return nil
}
