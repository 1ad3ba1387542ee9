package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// ProjectSvcFacade defines operations on projects, their tasks and expenses.
// Task and expense mutations keep the project's cached progress and actual
// cost in step.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error)

	// RecomputeActualCost rebuilds the project's cached cost from its
	// expenses and attendance wages and persists the result.
	RecomputeActualCost(ctx context.Context, projectID string) (decimal.Decimal, error)
	// RecomputeProgress rebuilds the project's cached completion percent
	// from its task counts and persists the result.
	RecomputeProgress(ctx context.Context, projectID string) (int, error)

	CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, updaterUserID string) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error)

	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ProjectExpense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.ProjectExpense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ProjectExpense, error)
}
