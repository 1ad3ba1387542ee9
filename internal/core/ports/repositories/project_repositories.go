package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// ProjectReader defines read operations for projects, tasks and expenses.
type ProjectReader interface {
	// FindProjectByID retrieves a specific project.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves projects, optionally filtered by status, newest first.
	ListProjects(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error)

	// SumProjectCosts returns the expense total and attendance wage total for a project.
	SumProjectCosts(ctx context.Context, projectID string) (expenseTotal, wageTotal decimal.Decimal, err error)

	// CountTasks returns the total and completed task counts for a project.
	CountTasks(ctx context.Context, projectID string) (total, completed int, err error)

	// FindTaskByID retrieves a specific task.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasksByProject retrieves a project's tasks ordered by due date.
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error)

	// FindExpenseByID retrieves a specific project expense.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ProjectExpense, error)

	// ListExpensesByProject retrieves a project's expenses, newest first.
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ProjectExpense, error)
}

// ProjectWriter defines write operations for projects, tasks and expenses.
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error

	// UpdateProjectActualCost writes a freshly recomputed actual cost to the project row.
	UpdateProjectActualCost(ctx context.Context, projectID string, actualCost decimal.Decimal, updatedAt time.Time) error

	// UpdateProjectProgress writes a freshly recomputed progress percentage to the project row.
	UpdateProjectProgress(ctx context.Context, projectID string, progress int, updatedAt time.Time) error

	SaveTask(ctx context.Context, task domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, taskID string) error

	SaveExpense(ctx context.Context, expense domain.ProjectExpense) error
	UpdateExpense(ctx context.Context, expense domain.ProjectExpense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
