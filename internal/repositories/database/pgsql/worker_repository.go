package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
)

type PgxWorkerRepository struct {
	BaseRepository
}

// newPgxWorkerRepository creates a new repository for workers and groups.
func newPgxWorkerRepository(pool *pgxpool.Pool) portsrepo.WorkerRepositoryFacade {
	return &PgxWorkerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

const workerColumns = `worker_id, name, worker_type, group_id, fixed_wage, daily_wage, ot1_rate, ot2_rate, contact, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanWorker(row pgx.Row) (*domain.Worker, error) {
	var w domain.Worker
	err := row.Scan(
		&w.WorkerID,
		&w.Name,
		&w.WorkerType,
		&w.GroupID,
		&w.FixedWage,
		&w.DailyWage,
		&w.OT1Rate,
		&w.OT2Rate,
		&w.Contact,
		&w.IsActive,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	query := `
		INSERT INTO workers (worker_id, name, worker_type, group_id, fixed_wage, daily_wage, ot1_rate, ot2_rate, contact, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		worker.WorkerID,
		worker.Name,
		worker.WorkerType,
		worker.GroupID,
		worker.FixedWage,
		worker.DailyWage,
		worker.OT1Rate,
		worker.OT2Rate,
		worker.Contact,
		worker.IsActive,
		worker.CreatedAt,
		worker.CreatedBy,
		worker.LastUpdatedAt,
		worker.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save worker %s: %w", worker.WorkerID, err)
	}
	return nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE worker_id = $1;`

	w, err := scanWorker(r.db(ctx).QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("worker %s not found", workerID))
		}
		return nil, fmt.Errorf("failed to find worker by ID %s: %w", workerID, err)
	}
	return w, nil
}

func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, workerType *domain.WorkerType) ([]domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE is_active = TRUE`
	args := []any{}
	if workerType != nil {
		query += ` AND worker_type = $1`
		args = append(args, *workerType)
	}
	query += ` ORDER BY name;`

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	workers := []domain.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		workers = append(workers, *w)
	}
	return workers, rows.Err()
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	query := `
		UPDATE workers
		SET name = $2, group_id = $3, fixed_wage = $4, daily_wage = $5, ot1_rate = $6, ot2_rate = $7, contact = $8, is_active = $9, last_updated_at = $10, last_updated_by = $11
		WHERE worker_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		worker.WorkerID,
		worker.Name,
		worker.GroupID,
		worker.FixedWage,
		worker.DailyWage,
		worker.OT1Rate,
		worker.OT2Rate,
		worker.Contact,
		worker.IsActive,
		worker.LastUpdatedAt,
		worker.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker %s: %w", worker.WorkerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("worker %s not found", worker.WorkerID))
	}
	return nil
}

func (r *PgxWorkerRepository) SaveGroup(ctx context.Context, group domain.OutsourcedGroup) error {
	query := `
		INSERT INTO outsourced_groups (group_id, name, leader_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		group.GroupID,
		group.Name,
		group.LeaderID,
		group.CreatedAt,
		group.CreatedBy,
		group.LastUpdatedAt,
		group.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: group %q already exists", apperrors.ErrDuplicate, group.Name)
		}
		return fmt.Errorf("failed to save group %s: %w", group.GroupID, err)
	}
	return nil
}

func (r *PgxWorkerRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.OutsourcedGroup, error) {
	query := `
		SELECT group_id, name, leader_id, created_at, created_by, last_updated_at, last_updated_by
		FROM outsourced_groups
		WHERE group_id = $1;
	`
	var g domain.OutsourcedGroup
	err := r.db(ctx).QueryRow(ctx, query, groupID).Scan(
		&g.GroupID,
		&g.Name,
		&g.LeaderID,
		&g.CreatedAt,
		&g.CreatedBy,
		&g.LastUpdatedAt,
		&g.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("group %s not found", groupID))
		}
		return nil, fmt.Errorf("failed to find group by ID %s: %w", groupID, err)
	}
	return &g, nil
}

func (r *PgxWorkerRepository) ListGroups(ctx context.Context) ([]domain.OutsourcedGroup, error) {
	query := `
		SELECT group_id, name, leader_id, created_at, created_by, last_updated_at, last_updated_by
		FROM outsourced_groups
		ORDER BY name;
	`
	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.OutsourcedGroup{}
	for rows.Next() {
		var g domain.OutsourcedGroup
		err := rows.Scan(&g.GroupID, &g.Name, &g.LeaderID, &g.CreatedAt, &g.CreatedBy, &g.LastUpdatedAt, &g.LastUpdatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *PgxWorkerRepository) UpdateGroup(ctx context.Context, group domain.OutsourcedGroup) error {
	query := `
		UPDATE outsourced_groups
		SET name = $2, leader_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE group_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		group.GroupID,
		group.Name,
		group.LeaderID,
		group.LastUpdatedAt,
		group.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: group %q already exists", apperrors.ErrDuplicate, group.Name)
		}
		return fmt.Errorf("failed to update group %s: %w", group.GroupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("group %s not found", group.GroupID))
	}
	return nil
}
