package usecase

import (
	"context"
	"fmt"
	"time"

	apperrors "workforce-api/internal/shared/errors"
	"workforce-api/internal/shared/eventbus"
	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce/domain/model"
	"workforce-api/internal/workforce/domain/repository"

	"github.com/go-playground/validator/v10"
)

// AssignmentUsecaseInterface defines the contract for project-employee
// assignment operations.
type AssignmentUsecaseInterface interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (*model.ProjectEmployee, error)
	Get(ctx context.Context, empProjectID string) (*model.ProjectEmployee, error)
	List(ctx context.Context) ([]*model.ProjectEmployee, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.ProjectEmployee, error)
	Delete(ctx context.Context, empProjectID string) error
}

// CreateAssignmentRequest links an employee to a project. EmpProjectID empty
// means "mint one from the counter collection".
type CreateAssignmentRequest struct {
	EmpProjectID string    `json:"empProjectId,omitempty"`
	ProjectID    string    `json:"projectId" validate:"required"`
	EmployeeID   int64     `json:"employeeId" validate:"required"`
	Role         string    `json:"role,omitempty"`
	AssignedDate time.Time `json:"assignedDate,omitempty"`
}

// AssignmentUsecase implements assignment operations. The employee and
// project references are looked up so a dangling link fails loudly at write
// time even though the store itself enforces nothing.
type AssignmentUsecase struct {
	repo      repository.AssignmentRepository
	employees repository.EmployeeRepository
	projects  repository.ProjectRepository
	counters  repository.CounterRepository
	publisher *changePublisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewAssignmentUsecase creates a new assignment usecase.
func NewAssignmentUsecase(
	repo repository.AssignmentRepository,
	employees repository.EmployeeRepository,
	projects repository.ProjectRepository,
	counters repository.CounterRepository,
	bus eventbus.Bus,
	store repository.ChangeEventStore,
	log logger.Logger,
) *AssignmentUsecase {
	return &AssignmentUsecase{
		repo:      repo,
		employees: employees,
		projects:  projects,
		counters:  counters,
		publisher: newChangePublisher(bus, store, log),
		validate:  validator.New(),
		now:       time.Now,
	}
}

func (uc *AssignmentUsecase) Create(ctx context.Context, req CreateAssignmentRequest) (*model.ProjectEmployee, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := uc.employees.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	if _, err := uc.projects.GetByProjectID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	empProjectID := req.EmpProjectID
	if empProjectID == "" {
		seq, err := uc.counters.Next(ctx, counterAssignments)
		if err != nil {
			return nil, apperrors.NewInfrastructureError("failed to mint assignment ID").WithCause(err)
		}
		empProjectID = fmt.Sprintf("EP-%d", seq)
	}

	assignedDate := req.AssignedDate
	if assignedDate.IsZero() {
		assignedDate = uc.now().UTC()
	}
	assignment := &model.ProjectEmployee{
		EmpProjectID: empProjectID,
		ProjectID:    req.ProjectID,
		EmployeeID:   req.EmployeeID,
		Role:         req.Role,
		AssignedDate: assignedDate,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.repo.Upsert(ctx, assignment); err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, counterAssignments, empProjectID,
		model.ChangeTypeCreated, toDocument(assignment))
	return assignment, nil
}

func (uc *AssignmentUsecase) Get(ctx context.Context, empProjectID string) (*model.ProjectEmployee, error) {
	return uc.repo.GetByEmpProjectID(ctx, empProjectID)
}

func (uc *AssignmentUsecase) List(ctx context.Context) ([]*model.ProjectEmployee, error) {
	return uc.repo.List(ctx)
}

func (uc *AssignmentUsecase) ListByProject(ctx context.Context, projectID string) ([]*model.ProjectEmployee, error) {
	return uc.repo.ListByProjectID(ctx, projectID)
}

func (uc *AssignmentUsecase) Delete(ctx context.Context, empProjectID string) error {
	if err := uc.repo.Delete(ctx, empProjectID); err != nil {
		return err
	}
	uc.publisher.publish(ctx, counterAssignments, empProjectID, model.ChangeTypeDeleted, nil)
	return nil
}
