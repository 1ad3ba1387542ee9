package repositories

import (
	"context"
	"time"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// AttendanceReader defines read operations for attendance records.
type AttendanceReader interface {
	// FindAttendanceByID retrieves a specific attendance record.
	FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.WorkerAttendance, error)

	// ListAttendanceByWorker retrieves a worker's attendance within a date range, oldest first.
	ListAttendanceByWorker(ctx context.Context, workerID string, from, to time.Time) ([]domain.WorkerAttendance, error)

	// ListAttendanceByProject retrieves a project's attendance records, newest first.
	ListAttendanceByProject(ctx context.Context, projectID string) ([]domain.WorkerAttendance, error)

	// ListUnpaidByGroup retrieves the unpaid attendance records of a
	// group's members ordered oldest date first, the order payment
	// allocation consumes them in.
	ListUnpaidByGroup(ctx context.Context, groupID string) ([]domain.WorkerAttendance, error)

	// ExistsForWorkerOnDate reports whether the worker already has an
	// attendance record on the date, excluding the given record ID.
	ExistsForWorkerOnDate(ctx context.Context, workerID string, date time.Time, excludeID string) (bool, error)
}

// AttendanceWriter defines write operations for attendance records.
type AttendanceWriter interface {
	SaveAttendance(ctx context.Context, att domain.WorkerAttendance) error
	UpdateAttendance(ctx context.Context, att domain.WorkerAttendance) error
	DeleteAttendance(ctx context.Context, attendanceID string) error

	// MarkAttendancePaid flips is_paid on a single record.
	MarkAttendancePaid(ctx context.Context, attendanceID string, updatedBy string, updatedAt time.Time) error
}

// AttendanceRepositoryFacade combines all attendance repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
