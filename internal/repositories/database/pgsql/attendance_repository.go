package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance records.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

const attendanceColumns = `attendance_id, worker_id, project_id, date, in_time, out_time, is_holiday, is_paid, hours_worked, overtime_hours, total_wage, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanAttendance(row pgx.Row) (*domain.WorkerAttendance, error) {
	var a domain.WorkerAttendance
	err := row.Scan(
		&a.AttendanceID,
		&a.WorkerID,
		&a.ProjectID,
		&a.Date,
		&a.InTime,
		&a.OutTime,
		&a.IsHoliday,
		&a.IsPaid,
		&a.HoursWorked,
		&a.OvertimeHours,
		&a.TotalWage,
		&a.Notes,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAttendance(rows pgx.Rows) ([]domain.WorkerAttendance, error) {
	atts := []domain.WorkerAttendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		atts = append(atts, *a)
	}
	return atts, rows.Err()
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, att domain.WorkerAttendance) error {
	query := `
		INSERT INTO worker_attendances (attendance_id, worker_id, project_id, date, in_time, out_time, is_holiday, is_paid, hours_worked, overtime_hours, total_wage, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		att.AttendanceID,
		att.WorkerID,
		att.ProjectID,
		att.Date,
		att.InTime,
		att.OutTime,
		att.IsHoliday,
		att.IsPaid,
		att.HoursWorked,
		att.OvertimeHours,
		att.TotalWage,
		att.Notes,
		att.CreatedAt,
		att.CreatedBy,
		att.LastUpdatedAt,
		att.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: worker %s already has attendance on %s", apperrors.ErrDuplicate, att.WorkerID, att.Date.Format("2006-01-02"))
		}
		return fmt.Errorf("failed to save attendance %s: %w", att.AttendanceID, err)
	}
	return nil
}

func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.WorkerAttendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM worker_attendances WHERE attendance_id = $1;`

	a, err := scanAttendance(r.db(ctx).QueryRow(ctx, query, attendanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("attendance %s not found", attendanceID))
		}
		return nil, fmt.Errorf("failed to find attendance by ID %s: %w", attendanceID, err)
	}
	return a, nil
}

func (r *PgxAttendanceRepository) ListAttendanceByWorker(ctx context.Context, workerID string, from, to time.Time) ([]domain.WorkerAttendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM worker_attendances
		WHERE worker_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date;
	`
	rows, err := r.db(ctx).Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for worker %s: %w", workerID, err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) ListAttendanceByProject(ctx context.Context, projectID string) ([]domain.WorkerAttendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM worker_attendances
		WHERE project_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.db(ctx).Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for project %s: %w", projectID, err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListUnpaidByGroup returns the group's unpaid records oldest date first,
// the order payment allocation consumes them in.
func (r *PgxAttendanceRepository) ListUnpaidByGroup(ctx context.Context, groupID string) ([]domain.WorkerAttendance, error) {
	query := `
		SELECT wa.attendance_id, wa.worker_id, wa.project_id, wa.date, wa.in_time, wa.out_time, wa.is_holiday, wa.is_paid, wa.hours_worked, wa.overtime_hours, wa.total_wage, wa.notes, wa.created_at, wa.created_by, wa.last_updated_at, wa.last_updated_by
		FROM worker_attendances wa
		JOIN workers w ON w.worker_id = wa.worker_id
		WHERE w.group_id = $1 AND wa.is_paid = FALSE
		ORDER BY wa.date, wa.created_at;
	`
	rows, err := r.db(ctx).Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid attendance for group %s: %w", groupID, err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *PgxAttendanceRepository) ExistsForWorkerOnDate(ctx context.Context, workerID string, date time.Time, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM worker_attendances
			WHERE worker_id = $1 AND date = $2 AND attendance_id <> $3
		);
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, query, workerID, date, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence for worker %s: %w", workerID, err)
	}
	return exists, nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, att domain.WorkerAttendance) error {
	query := `
		UPDATE worker_attendances
		SET date = $2, in_time = $3, out_time = $4, is_holiday = $5, hours_worked = $6, overtime_hours = $7, total_wage = $8, notes = $9, last_updated_at = $10, last_updated_by = $11
		WHERE attendance_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		att.AttendanceID,
		att.Date,
		att.InTime,
		att.OutTime,
		att.IsHoliday,
		att.HoursWorked,
		att.OvertimeHours,
		att.TotalWage,
		att.Notes,
		att.LastUpdatedAt,
		att.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: worker %s already has attendance on %s", apperrors.ErrDuplicate, att.WorkerID, att.Date.Format("2006-01-02"))
		}
		return fmt.Errorf("failed to update attendance %s: %w", att.AttendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("attendance %s not found", att.AttendanceID))
	}
	return nil
}

func (r *PgxAttendanceRepository) DeleteAttendance(ctx context.Context, attendanceID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM worker_attendances WHERE attendance_id = $1;`, attendanceID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", attendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("attendance %s not found", attendanceID))
	}
	return nil
}

func (r *PgxAttendanceRepository) MarkAttendancePaid(ctx context.Context, attendanceID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE worker_attendances
		SET is_paid = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE attendance_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, attendanceID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark attendance %s paid: %w", attendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("attendance %s not found", attendanceID))
	}
	return nil
}
