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

// ProjectUsecaseInterface defines the contract for project operations.
type ProjectUsecaseInterface interface {
	Create(ctx context.Context, req CreateProjectRequest) (*model.Project, error)
	Get(ctx context.Context, projectID string) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Update(ctx context.Context, projectID string, req UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, projectID string) error
}

// CreateProjectRequest carries a new project.
type CreateProjectRequest struct {
	ProjectID   string     `json:"projectId" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=active completed on-hold"`
	Budget      float64    `json:"budget,omitempty" validate:"gte=0"`
	StartDate   time.Time  `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// UpdateProjectRequest carries a partial project update.
type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=active completed on-hold"`
	Budget      *float64   `json:"budget,omitempty" validate:"omitempty,gte=0"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// ProjectUsecase implements project CRUD.
type ProjectUsecase struct {
	repo      repository.ProjectRepository
	publisher *changePublisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewProjectUsecase creates a new project usecase.
func NewProjectUsecase(
	repo repository.ProjectRepository,
	bus eventbus.Bus,
	store repository.ChangeEventStore,
	log logger.Logger,
) *ProjectUsecase {
	return &ProjectUsecase{
		repo:      repo,
		publisher: newChangePublisher(bus, store, log),
		validate:  validator.New(),
		now:       time.Now,
	}
}

func (uc *ProjectUsecase) Create(ctx context.Context, req CreateProjectRequest) (*model.Project, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := uc.repo.GetByProjectID(ctx, req.ProjectID); err == nil {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("project %s already exists", req.ProjectID))
	} else if !errors.Is(err, apperrors.ErrProjectNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.ProjectStatusActive
	}
	project := &model.Project{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.Upsert(ctx, project); err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, "projects", project.ProjectID,
		model.ChangeTypeCreated, toDocument(project))
	return project, nil
}

func (uc *ProjectUsecase) Get(ctx context.Context, projectID string) (*model.Project, error) {
	return uc.repo.GetByProjectID(ctx, projectID)
}

func (uc *ProjectUsecase) List(ctx context.Context) ([]*model.Project, error) {
	return uc.repo.List(ctx)
}

func (uc *ProjectUsecase) Update(ctx context.Context, projectID string, req UpdateProjectRequest) (*model.Project, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	project, err := uc.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if err := uc.repo.Upsert(ctx, project); err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, "projects", projectID,
		model.ChangeTypeUpdated, toDocument(project))
	return project, nil
}

func (uc *ProjectUsecase) Delete(ctx context.Context, projectID string) error {
	if err := uc.repo.Delete(ctx, projectID); err != nil {
		return err
	}
	uc.publisher.publish(ctx, "projects", projectID, model.ChangeTypeDeleted, nil)
	return nil
}
