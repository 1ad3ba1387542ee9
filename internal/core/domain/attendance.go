package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerAttendance records one worker's shift on one calendar date for one
// project. HoursWorked, OvertimeHours and TotalWage are derived fields,
// recomputed deterministically from the worker's current rates and the time
// span on every save; historical records are not retroactively recalculated
// when a worker's rates change unless explicitly re-saved.
//
// The (WorkerID, Date) pair is unique.
type WorkerAttendance struct {
	AttendanceID  string          `json:"attendanceID"` // Primary Key (UUID)
	WorkerID      string          `json:"workerID"`     // FK -> Worker
	ProjectID     string          `json:"projectID"`    // FK -> Project
	Date          time.Time       `json:"date"`         // calendar date
	InTime        time.Time       `json:"inTime"`
	OutTime       time.Time       `json:"outTime"`
	IsHoliday     bool            `json:"isHoliday"`
	IsPaid        bool            `json:"isPaid"`
	HoursWorked   decimal.Decimal `json:"hoursWorked"`   // derived
	OvertimeHours decimal.Decimal `json:"overtimeHours"` // derived
	TotalWage     decimal.Decimal `json:"totalWage"`     // derived
	Notes         string          `json:"notes"`
	AuditFields
}
