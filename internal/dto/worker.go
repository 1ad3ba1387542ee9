package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// CreateWorkerRequest defines the data needed to register a worker.
// Own workers require fixedWage; outsourced workers require dailyWage.
type CreateWorkerRequest struct {
	Name       string            `json:"name" binding:"required"`
	WorkerType domain.WorkerType `json:"workerType" binding:"required,oneof=OWN OUTSOURCED"`
	GroupID    *string           `json:"groupID"`
	FixedWage  decimal.Decimal   `json:"fixedWage"`
	DailyWage  decimal.Decimal   `json:"dailyWage"`
	OT1Rate    decimal.Decimal   `json:"ot1Rate"`
	OT2Rate    decimal.Decimal   `json:"ot2Rate"`
	Contact    string            `json:"contact"`
}

// UpdateWorkerRequest defines the data allowed for editing a worker.
type UpdateWorkerRequest struct {
	Name      *string          `json:"name"`
	GroupID   *string          `json:"groupID"`
	FixedWage *decimal.Decimal `json:"fixedWage"`
	DailyWage *decimal.Decimal `json:"dailyWage"`
	OT1Rate   *decimal.Decimal `json:"ot1Rate"`
	OT2Rate   *decimal.Decimal `json:"ot2Rate"`
	Contact   *string          `json:"contact"`
	IsActive  *bool            `json:"isActive"`
}

// WorkerResponse defines the data returned for a worker.
type WorkerResponse struct {
	WorkerID   string            `json:"workerID"`
	Name       string            `json:"name"`
	WorkerType domain.WorkerType `json:"workerType"`
	GroupID    *string           `json:"groupID"`
	FixedWage  decimal.Decimal   `json:"fixedWage"`
	DailyWage  decimal.Decimal   `json:"dailyWage"`
	OT1Rate    decimal.Decimal   `json:"ot1Rate"`
	OT2Rate    decimal.Decimal   `json:"ot2Rate"`
	Contact    string            `json:"contact"`
	IsActive   bool              `json:"isActive"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ToWorkerResponse converts a domain.Worker to WorkerResponse.
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:   w.WorkerID,
		Name:       w.Name,
		WorkerType: w.WorkerType,
		GroupID:    w.GroupID,
		FixedWage:  w.FixedWage,
		DailyWage:  w.DailyWage,
		OT1Rate:    w.OT1Rate,
		OT2Rate:    w.OT2Rate,
		Contact:    w.Contact,
		IsActive:   w.IsActive,
		CreatedAt:  w.CreatedAt,
	}
}

// ToWorkerResponses converts a slice of workers.
func ToWorkerResponses(workers []domain.Worker) []WorkerResponse {
	res := make([]WorkerResponse, len(workers))
	for i := range workers {
		res[i] = ToWorkerResponse(&workers[i])
	}
	return res
}

// CreateGroupRequest defines the data needed to create an outsourced group.
type CreateGroupRequest struct {
	Name     string  `json:"name" binding:"required"`
	LeaderID *string `json:"leaderID"`
}

// UpdateGroupRequest defines the data allowed for editing a group.
type UpdateGroupRequest struct {
	Name     *string `json:"name"`
	LeaderID *string `json:"leaderID"`
}

// GroupResponse defines the data returned for an outsourced group.
type GroupResponse struct {
	GroupID  string  `json:"groupID"`
	Name     string  `json:"name"`
	LeaderID *string `json:"leaderID"`
}

// ToGroupResponse converts a domain.OutsourcedGroup to GroupResponse.
func ToGroupResponse(g *domain.OutsourcedGroup) GroupResponse {
	return GroupResponse{GroupID: g.GroupID, Name: g.Name, LeaderID: g.LeaderID}
}

// ToGroupResponses converts a slice of groups.
func ToGroupResponses(groups []domain.OutsourcedGroup) []GroupResponse {
	res := make([]GroupResponse, len(groups))
	for i := range groups {
		res[i] = ToGroupResponse(&groups[i])
	}
	return res
}
