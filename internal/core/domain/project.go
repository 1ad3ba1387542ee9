package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus indicates the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

// ProjectPriority ranks projects for planning.
type ProjectPriority string

const (
	PriorityLow      ProjectPriority = "LOW"
	PriorityMedium   ProjectPriority = "MEDIUM"
	PriorityHigh     ProjectPriority = "HIGH"
	PriorityVeryHigh ProjectPriority = "VERY_HIGH"
)

// Project is a construction job. ActualCost and Progress are cached
// aggregates: ActualCost is the sum of project expenses plus attendance
// wages, Progress the percentage of completed tasks. Both are recomputed
// by the trigger layer whenever an owning child record changes.
type Project struct {
	ProjectID     string          `json:"projectID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate"`
	Budget        decimal.Decimal `json:"budget"`
	ActualCost    decimal.Decimal `json:"actualCost"` // derived
	Progress      int             `json:"progress"`   // derived, 0..100
	SupervisorID  *string         `json:"supervisorID"` // Nullable FK -> User
	ClientCompany string          `json:"clientCompany"`
	Priority      ProjectPriority `json:"priority"`
	Status        ProjectStatus   `json:"status"`
	Remarks       string          `json:"remarks"`
	AuditFields
}

// TaskStatus indicates the completion state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

// Task is a single unit of work within a project.
type Task struct {
	TaskID          string     `json:"taskID"` // Primary Key (UUID)
	ProjectID       string     `json:"projectID"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartDate       *time.Time `json:"startDate"`
	DueDate         *time.Time `json:"dueDate"`
	Status          TaskStatus `json:"status"`
	CompletionNotes string     `json:"completionNotes"`
	AuditFields
}

// IsOverdue reports whether the task's due date has passed without completion.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskCompleted
}

// ExpenseType categorises a non-wage project expense.
type ExpenseType string

const (
	ExpenseMaterials     ExpenseType = "MATERIALS"
	ExpenseVehicleRent   ExpenseType = "VEHICLE_RENT"
	ExpenseEquipmentRent ExpenseType = "EQUIPMENT_RENT"
	ExpenseOther         ExpenseType = "OTHER"
)

// ProjectExpense is a non-wage expense attributed to a project; it
// contributes to the project's actual cost.
type ProjectExpense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	ProjectID   string          `json:"projectID"`
	ExpenseType ExpenseType     `json:"expenseType"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	AuditFields
}
