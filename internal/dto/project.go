package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// CreateProjectRequest defines the data needed to open a project.
type CreateProjectRequest struct {
	Name          string                 `json:"name" binding:"required"`
	Description   string                 `json:"description"`
	StartDate     time.Time              `json:"startDate" binding:"required"`
	EndDate       *time.Time             `json:"endDate"`
	Budget        decimal.Decimal        `json:"budget"`
	SupervisorID  *string                `json:"supervisorID"`
	ClientCompany string                 `json:"clientCompany"`
	Priority      domain.ProjectPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH VERY_HIGH"`
	Remarks       string                 `json:"remarks"`
}

// UpdateProjectRequest defines the data allowed for editing a project.
type UpdateProjectRequest struct {
	Name          *string                 `json:"name"`
	Description   *string                 `json:"description"`
	StartDate     *time.Time              `json:"startDate"`
	EndDate       *time.Time              `json:"endDate"`
	Budget        *decimal.Decimal        `json:"budget"`
	SupervisorID  *string                 `json:"supervisorID"`
	ClientCompany *string                 `json:"clientCompany"`
	Priority      *domain.ProjectPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH VERY_HIGH"`
	Status        *domain.ProjectStatus   `json:"status" binding:"omitempty,oneof=ACTIVE COMPLETED ON_HOLD"`
	Remarks       *string                 `json:"remarks"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID     string                 `json:"projectID"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	StartDate     time.Time              `json:"startDate"`
	EndDate       *time.Time             `json:"endDate"`
	Budget        decimal.Decimal        `json:"budget"`
	ActualCost    decimal.Decimal        `json:"actualCost"`
	Progress      int                    `json:"progress"`
	SupervisorID  *string                `json:"supervisorID"`
	ClientCompany string                 `json:"clientCompany"`
	Priority      domain.ProjectPriority `json:"priority"`
	Status        domain.ProjectStatus   `json:"status"`
	Remarks       string                 `json:"remarks"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:     p.ProjectID,
		Name:          p.Name,
		Description:   p.Description,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Budget:        p.Budget,
		ActualCost:    p.ActualCost,
		Progress:      p.Progress,
		SupervisorID:  p.SupervisorID,
		ClientCompany: p.ClientCompany,
		Priority:      p.Priority,
		Status:        p.Status,
		Remarks:       p.Remarks,
		CreatedAt:     p.CreatedAt,
	}
}

// ToProjectResponses converts a slice of projects.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i := range projects {
		res[i] = ToProjectResponse(&projects[i])
	}
	return res
}

// CreateTaskRequest defines the data needed to add a task to a project.
type CreateTaskRequest struct {
	ProjectID   string     `json:"projectID" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest defines the data allowed for editing a task.
type UpdateTaskRequest struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	StartDate       *time.Time         `json:"startDate"`
	DueDate         *time.Time         `json:"dueDate"`
	Status          *domain.TaskStatus `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS COMPLETED"`
	CompletionNotes *string            `json:"completionNotes"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID          string            `json:"taskID"`
	ProjectID       string            `json:"projectID"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	StartDate       *time.Time        `json:"startDate"`
	DueDate         *time.Time        `json:"dueDate"`
	Status          domain.TaskStatus `json:"status"`
	CompletionNotes string            `json:"completionNotes"`
	IsOverdue       bool              `json:"isOverdue"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ToTaskResponse converts a domain.Task to TaskResponse, computing overdue
// status against the supplied clock.
func ToTaskResponse(t *domain.Task, now time.Time) TaskResponse {
	return TaskResponse{
		TaskID:          t.TaskID,
		ProjectID:       t.ProjectID,
		Title:           t.Title,
		Description:     t.Description,
		StartDate:       t.StartDate,
		DueDate:         t.DueDate,
		Status:          t.Status,
		CompletionNotes: t.CompletionNotes,
		IsOverdue:       t.IsOverdue(now),
		CreatedAt:       t.CreatedAt,
	}
}

// ToTaskResponses converts a slice of tasks.
func ToTaskResponses(tasks []domain.Task, now time.Time) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToTaskResponse(&tasks[i], now)
	}
	return res
}

// CreateExpenseRequest defines the data needed to record a project expense.
type CreateExpenseRequest struct {
	ProjectID   string             `json:"projectID" binding:"required"`
	ExpenseType domain.ExpenseType `json:"expenseType" binding:"required,oneof=MATERIALS VEHICLE_RENT EQUIPMENT_RENT OTHER"`
	Amount      decimal.Decimal    `json:"amount" binding:"required"`
	Date        time.Time          `json:"date" binding:"required"`
	Description string             `json:"description"`
}

// UpdateExpenseRequest defines the data allowed for editing an expense.
type UpdateExpenseRequest struct {
	ExpenseType *domain.ExpenseType `json:"expenseType" binding:"omitempty,oneof=MATERIALS VEHICLE_RENT EQUIPMENT_RENT OTHER"`
	Amount      *decimal.Decimal    `json:"amount"`
	Date        *time.Time          `json:"date"`
	Description *string             `json:"description"`
}

// ExpenseResponse defines the data returned for a project expense.
type ExpenseResponse struct {
	ExpenseID   string             `json:"expenseID"`
	ProjectID   string             `json:"projectID"`
	ExpenseType domain.ExpenseType `json:"expenseType"`
	Amount      decimal.Decimal    `json:"amount"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToExpenseResponse converts a domain.ProjectExpense to ExpenseResponse.
func ToExpenseResponse(e *domain.ProjectExpense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		ProjectID:   e.ProjectID,
		ExpenseType: e.ExpenseType,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of expenses.
func ToExpenseResponses(expenses []domain.ProjectExpense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
