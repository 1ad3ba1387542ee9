package services

import (
	"context"
	"time"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// AttendanceSvcFacade defines operations on daily attendance records.
// Wage fields are always derived server-side; client-supplied values are
// never trusted.
type AttendanceSvcFacade interface {
	// CalculateWage previews the wage for a shift without persisting it.
	CalculateWage(ctx context.Context, req dto.CalculateAttendanceRequest) (*dto.WageBreakdownResponse, error)
	// RecordAttendance creates an attendance record, computes its wage and
	// refreshes the project's actual cost.
	RecordAttendance(ctx context.Context, req dto.RecordAttendanceRequest, creatorUserID string) (*domain.WorkerAttendance, error)
	// UpdateAttendance edits a record, recomputes its wage and refreshes
	// the project's actual cost.
	UpdateAttendance(ctx context.Context, attendanceID string, req dto.UpdateAttendanceRequest, updaterUserID string) (*domain.WorkerAttendance, error)
	// DeleteAttendance removes a record and refreshes the project's actual cost.
	DeleteAttendance(ctx context.Context, attendanceID string) error
	// GetAttendanceByID retrieves a single record.
	GetAttendanceByID(ctx context.Context, attendanceID string) (*domain.WorkerAttendance, error)
	// ListByWorker retrieves a worker's records within a date range.
	ListByWorker(ctx context.Context, workerID string, from, to time.Time) ([]domain.WorkerAttendance, error)
	// ListByProject retrieves a project's records within a date range.
	ListByProject(ctx context.Context, projectID string, from, to time.Time) ([]domain.WorkerAttendance, error)
	// MarkPaid flags one record as paid.
	MarkPaid(ctx context.Context, attendanceID string, updaterUserID string) error
	// MarkManyPaid flags a batch of records as paid.
	MarkManyPaid(ctx context.Context, attendanceIDs []string, updaterUserID string) error
}
