package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for projects, tasks and expenses.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, name, description, start_date, end_date, budget, actual_cost, progress, supervisor_id, client_company, priority, status, remarks, created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.Description,
		&p.StartDate,
		&p.EndDate,
		&p.Budget,
		&p.ActualCost,
		&p.Progress,
		&p.SupervisorID,
		&p.ClientCompany,
		&p.Priority,
		&p.Status,
		&p.Remarks,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (project_id, name, description, start_date, end_date, budget, actual_cost, progress, supervisor_id, client_company, priority, status, remarks, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Description,
		project.StartDate,
		project.EndDate,
		project.Budget,
		project.ActualCost,
		project.Progress,
		project.SupervisorID,
		project.ClientCompany,
		project.Priority,
		project.Status,
		project.Remarks,
		project.CreatedAt,
		project.CreatedBy,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`

	p, err := scanProject(r.db(ctx).QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("project %s not found", projectID))
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	return p, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY start_date DESC;`

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *PgxProjectRepository) SumProjectCosts(ctx context.Context, projectID string) (expenseTotal, wageTotal decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM project_expenses WHERE project_id = $1), 0),
			COALESCE((SELECT SUM(total_wage) FROM worker_attendances WHERE project_id = $1), 0);
	`
	err = r.db(ctx).QueryRow(ctx, query, projectID).Scan(&expenseTotal, &wageTotal)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum costs for project %s: %w", projectID, err)
	}
	return expenseTotal, wageTotal, nil
}

func (r *PgxProjectRepository) CountTasks(ctx context.Context, projectID string) (total, completed int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'COMPLETED')
		FROM tasks
		WHERE project_id = $1;
	`
	err = r.db(ctx).QueryRow(ctx, query, projectID).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count tasks for project %s: %w", projectID, err)
	}
	return total, completed, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, start_date = $4, end_date = $5, budget = $6, supervisor_id = $7, client_company = $8, priority = $9, status = $10, remarks = $11, last_updated_at = $12, last_updated_by = $13
		WHERE project_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Description,
		project.StartDate,
		project.EndDate,
		project.Budget,
		project.SupervisorID,
		project.ClientCompany,
		project.Priority,
		project.Status,
		project.Remarks,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("project %s not found", project.ProjectID))
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProjectActualCost(ctx context.Context, projectID string, actualCost decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE projects SET actual_cost = $2, last_updated_at = $3 WHERE project_id = $1;`
	tag, err := r.db(ctx).Exec(ctx, query, projectID, actualCost, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update actual cost for project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("project %s not found", projectID))
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProjectProgress(ctx context.Context, projectID string, progress int, updatedAt time.Time) error {
	query := `UPDATE projects SET progress = $2, last_updated_at = $3 WHERE project_id = $1;`
	tag, err := r.db(ctx).Exec(ctx, query, projectID, progress, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update progress for project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("project %s not found", projectID))
	}
	return nil
}

const taskColumns = `task_id, project_id, title, description, start_date, due_date, status, completion_notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.TaskID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&t.StartDate,
		&t.DueDate,
		&t.Status,
		&t.CompletionNotes,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxProjectRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := `
		INSERT INTO tasks (task_id, project_id, title, description, start_date, due_date, status, completion_notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		task.TaskID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.StartDate,
		task.DueDate,
		task.Status,
		task.CompletionNotes,
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save task %s: %w", task.TaskID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1;`

	t, err := scanTask(r.db(ctx).QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("task %s not found", taskID))
		}
		return nil, fmt.Errorf("failed to find task by ID %s: %w", taskID, err)
	}
	return t, nil
}

func (r *PgxProjectRepository) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE project_id = $1
		ORDER BY due_date NULLS LAST, created_at;
	`
	rows, err := r.db(ctx).Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for project %s: %w", projectID, err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *PgxProjectRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, start_date = $4, due_date = $5, status = $6, completion_notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE task_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		task.TaskID,
		task.Title,
		task.Description,
		task.StartDate,
		task.DueDate,
		task.Status,
		task.CompletionNotes,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("task %s not found", task.TaskID))
	}
	return nil
}

func (r *PgxProjectRepository) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("task %s not found", taskID))
	}
	return nil
}

const expenseColumns = `expense_id, project_id, expense_type, amount, date, description, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (*domain.ProjectExpense, error) {
	var e domain.ProjectExpense
	err := row.Scan(
		&e.ExpenseID,
		&e.ProjectID,
		&e.ExpenseType,
		&e.Amount,
		&e.Date,
		&e.Description,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxProjectRepository) SaveExpense(ctx context.Context, expense domain.ProjectExpense) error {
	query := `
		INSERT INTO project_expenses (expense_id, project_id, expense_type, amount, date, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		expense.ExpenseID,
		expense.ProjectID,
		expense.ExpenseType,
		expense.Amount,
		expense.Date,
		expense.Description,
		expense.CreatedAt,
		expense.CreatedBy,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ProjectExpense, error) {
	query := `SELECT ` + expenseColumns + ` FROM project_expenses WHERE expense_id = $1;`

	e, err := scanExpense(r.db(ctx).QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	return e, nil
}

func (r *PgxProjectRepository) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ProjectExpense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM project_expenses
		WHERE project_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.db(ctx).Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for project %s: %w", projectID, err)
	}
	defer rows.Close()

	expenses := []domain.ProjectExpense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

func (r *PgxProjectRepository) UpdateExpense(ctx context.Context, expense domain.ProjectExpense) error {
	query := `
		UPDATE project_expenses
		SET expense_type = $2, amount = $3, date = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE expense_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		expense.ExpenseID,
		expense.ExpenseType,
		expense.Amount,
		expense.Date,
		expense.Description,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expense.ExpenseID))
	}
	return nil
}

func (r *PgxProjectRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM project_expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
	}
	return nil
}
