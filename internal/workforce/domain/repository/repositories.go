// Package repository defines the persistence contracts of the workforce
// module. Implementations live under adapter/persistence.
package repository

import (
	"context"

	"workforce-api/internal/workforce/domain/model"
)

// EmployeeRepository persists employees keyed by their business key.
type EmployeeRepository interface {
	Upsert(ctx context.Context, employee *model.Employee) error
	GetByEmployeeID(ctx context.Context, employeeID int64) (*model.Employee, error)
	List(ctx context.Context) ([]*model.Employee, error)
	Delete(ctx context.Context, employeeID int64) error
}

// DepartmentScope selects which department collection(s) an operation targets.
type DepartmentScope string

const (
	ScopeParents  DepartmentScope = "parents"
	ScopeChildren DepartmentScope = "children"
	ScopeAll      DepartmentScope = "all"
)

// DepartmentRepository persists parent and child departments. The collection
// is chosen from the document itself: a department with a parent reference
// goes to the child collection.
type DepartmentRepository interface {
	Upsert(ctx context.Context, department *model.Department) error
	GetByDepartmentID(ctx context.Context, departmentID string) (*model.Department, error)
	List(ctx context.Context, scope DepartmentScope) ([]*model.Department, error)
	Delete(ctx context.Context, departmentID string) error
}

// ProjectRepository persists projects keyed by projectId.
type ProjectRepository interface {
	Upsert(ctx context.Context, project *model.Project) error
	GetByProjectID(ctx context.Context, projectID string) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Delete(ctx context.Context, projectID string) error
}

// AssignmentRepository persists project-employee links keyed by empProjectId.
type AssignmentRepository interface {
	Upsert(ctx context.Context, assignment *model.ProjectEmployee) error
	GetByEmpProjectID(ctx context.Context, empProjectID string) (*model.ProjectEmployee, error)
	List(ctx context.Context) ([]*model.ProjectEmployee, error)
	ListByProjectID(ctx context.Context, projectID string) ([]*model.ProjectEmployee, error)
	Delete(ctx context.Context, empProjectID string) error
}

// CounterRepository mints monotonically increasing sequence numbers per
// collection name. Next must be safe under concurrent callers.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
	Current(ctx context.Context, name string) (int64, error)
}

// ChangeEventStore persists change events beyond the lifetime of an
// in-process subscriber (Redis Streams in production).
type ChangeEventStore interface {
	Append(ctx context.Context, event model.ChangeEvent) error
	Recent(ctx context.Context, entity string, limit int64) ([]model.ChangeEvent, error)
}
