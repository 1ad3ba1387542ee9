package domain

import (
	"github.com/shopspring/decimal"
)

// WorkerType distinguishes salaried company workers from day-rate outsourced workers.
type WorkerType string

const (
	// WorkerOwn is paid a monthly salary prorated to an hourly rate.
	WorkerOwn WorkerType = "OWN"
	// WorkerOutsourced is paid per day worked plus overtime.
	WorkerOutsourced WorkerType = "OUTSOURCED"
)

// Worker is a labourer whose attendance drives wage records.
// FixedWage applies to own workers, DailyWage to outsourced workers.
// OT1Rate is the per-hour overtime rate on normal days, OT2Rate on holidays.
type Worker struct {
	WorkerID   string          `json:"workerID"` // Primary Key (UUID)
	Name       string          `json:"name"`
	WorkerType WorkerType      `json:"workerType"`
	GroupID    *string         `json:"groupID"` // Nullable FK -> OutsourcedGroup
	FixedWage  decimal.Decimal `json:"fixedWage"` // monthly salary for own workers
	DailyWage  decimal.Decimal `json:"dailyWage"` // day rate for outsourced workers
	OT1Rate    decimal.Decimal `json:"ot1Rate"`   // per hour, normal days
	OT2Rate    decimal.Decimal `json:"ot2Rate"`   // per hour, holidays
	Contact    string          `json:"contact"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// OutsourcedGroup is a named collection of outsourced workers with an
// optional leader, used to aggregate wage payables for lump payments.
type OutsourcedGroup struct {
	GroupID  string  `json:"groupID"` // Primary Key (UUID)
	Name     string  `json:"name"`    // unique
	LeaderID *string `json:"leaderID"` // Nullable FK -> Worker (outsourced)
	AuditFields
}
