// Package workforce wires the employee, department, project, and assignment
// modules together: Mongo repositories, usecases, the event bus, and the
// HTTP adapters.
package workforce

import (
	"context"
	"fmt"

	"workforce-api/internal/shared/eventbus"
	"workforce-api/internal/shared/logger"
	workforcehttp "workforce-api/internal/workforce/adapter/http"
	"workforce-api/internal/workforce/adapter/persistence"
	"workforce-api/internal/workforce/adapter/persistence/mongodb"
	"workforce-api/internal/workforce/config"
	"workforce-api/internal/workforce/domain/repository"
	"workforce-api/internal/workforce/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module holds every wired component of the workforce API.
type Module struct {
	cfg *config.Config
	log logger.Logger

	bus        eventbus.Bus
	eventStore repository.ChangeEventStore

	employees   usecase.EmployeeUsecaseInterface
	departments usecase.DepartmentUsecaseInterface
	projects    usecase.ProjectUsecaseInterface
	assignments usecase.AssignmentUsecaseInterface

	employeeHandler   *workforcehttp.EmployeeHandler
	departmentHandler *workforcehttp.DepartmentHandler
	projectHandler    *workforcehttp.ProjectHandler
	assignmentHandler *workforcehttp.AssignmentHandler
	reportHandler     *workforcehttp.ReportHandler
	authHandler       *workforcehttp.AuthHandler
	changeFeed        *workforcehttp.ChangeFeedHandler
	changeHistory     *workforcehttp.ChangeHistoryHandler
	authMiddleware    *workforcehttp.AuthMiddleware
}

// NewModule constructs repositories, usecases, and HTTP handlers. The Redis
// client may be nil; change events then live only on the in-process bus.
func NewModule(ctx context.Context, db *mongo.Database, redisClient *redis.Client, cfg *config.Config, log logger.Logger) (*Module, error) {
	employeeRepo, err := mongodb.NewEmployeeRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("employee repository: %w", err)
	}
	departmentRepo, err := mongodb.NewDepartmentRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("department repository: %w", err)
	}
	projectRepo, err := mongodb.NewProjectRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("project repository: %w", err)
	}
	assignmentRepo, err := mongodb.NewAssignmentRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("assignment repository: %w", err)
	}
	counterRepo := mongodb.NewCounterRepository(db)

	bus := eventbus.New(log.WithComponent("eventbus"))

	var eventStore repository.ChangeEventStore
	if redisClient != nil {
		eventStore = persistence.NewRedisEventStore(redisClient, log)
	}

	m := &Module{
		cfg:         cfg,
		log:         log,
		bus:         bus,
		eventStore:  eventStore,
		employees:   usecase.NewEmployeeUsecase(employeeRepo, counterRepo, bus, eventStore, log),
		departments: usecase.NewDepartmentUsecase(departmentRepo, bus, eventStore, log),
		projects:    usecase.NewProjectUsecase(projectRepo, bus, eventStore, log),
		assignments: usecase.NewAssignmentUsecase(assignmentRepo, employeeRepo, projectRepo, counterRepo, bus, eventStore, log),
	}

	m.authMiddleware = workforcehttp.NewAuthMiddleware(cfg)
	m.employeeHandler = workforcehttp.NewEmployeeHandler(m.employees)
	m.departmentHandler = workforcehttp.NewDepartmentHandler(m.departments)
	m.projectHandler = workforcehttp.NewProjectHandler(m.projects, m.assignments)
	m.assignmentHandler = workforcehttp.NewAssignmentHandler(m.assignments)
	m.reportHandler = workforcehttp.NewReportHandler(m.employees, log)
	m.authHandler = workforcehttp.NewAuthHandler(cfg)
	m.changeFeed = workforcehttp.NewChangeFeedHandler(bus, log)
	m.changeHistory = workforcehttp.NewChangeHistoryHandler(eventStore)

	return m, nil
}

// RegisterRoutes mounts the whole API under /api/v1 plus the websocket feed.
func (m *Module) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	m.authHandler.RegisterRoutes(api)
	m.employeeHandler.RegisterRoutes(api, m.authMiddleware)
	m.departmentHandler.RegisterRoutes(api, m.authMiddleware)
	m.projectHandler.RegisterRoutes(api, m.authMiddleware)
	m.assignmentHandler.RegisterRoutes(api, m.authMiddleware)
	m.reportHandler.RegisterRoutes(api)
	m.changeHistory.RegisterRoutes(api)
	m.changeFeed.RegisterRoutes(app)
}

// Bus exposes the event bus for additional subscribers.
func (m *Module) Bus() eventbus.Bus {
	return m.bus
}

// Employees exposes the employee usecase, used by the seed verification path.
func (m *Module) Employees() usecase.EmployeeUsecaseInterface {
	return m.employees
}
