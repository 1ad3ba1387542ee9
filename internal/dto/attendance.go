package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// RecordAttendanceRequest defines the data needed to record a shift.
// InTime and OutTime are clock times in "15:04" format on the given date.
type RecordAttendanceRequest struct {
	WorkerID  string    `json:"workerID" binding:"required"`
	ProjectID string    `json:"projectID" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	InTime    string    `json:"inTime" binding:"required"`
	OutTime   string    `json:"outTime" binding:"required"`
	IsHoliday bool      `json:"isHoliday"`
	Notes     string    `json:"notes"`
}

// UpdateAttendanceRequest defines the data allowed for editing a shift.
type UpdateAttendanceRequest struct {
	Date      *time.Time `json:"date"`
	InTime    *string    `json:"inTime"`
	OutTime   *string    `json:"outTime"`
	IsHoliday *bool      `json:"isHoliday"`
	Notes     *string    `json:"notes"`
}

// CalculateAttendanceRequest previews a wage calculation without persisting.
type CalculateAttendanceRequest struct {
	WorkerID  string    `json:"workerID" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	InTime    string    `json:"inTime" binding:"required"`
	OutTime   string    `json:"outTime" binding:"required"`
	IsHoliday bool      `json:"isHoliday"`
}

// WageBreakdownResponse is the derived output of a wage calculation.
type WageBreakdownResponse struct {
	HoursWorked   decimal.Decimal `json:"hoursWorked"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	TotalWage     decimal.Decimal `json:"totalWage"`
}

// AttendanceResponse defines the data returned for an attendance record.
type AttendanceResponse struct {
	AttendanceID  string          `json:"attendanceID"`
	WorkerID      string          `json:"workerID"`
	ProjectID     string          `json:"projectID"`
	Date          time.Time       `json:"date"`
	InTime        time.Time       `json:"inTime"`
	OutTime       time.Time       `json:"outTime"`
	IsHoliday     bool            `json:"isHoliday"`
	IsPaid        bool            `json:"isPaid"`
	HoursWorked   decimal.Decimal `json:"hoursWorked"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	TotalWage     decimal.Decimal `json:"totalWage"`
	Notes         string          `json:"notes"`
}

// ToAttendanceResponse converts a domain.WorkerAttendance to AttendanceResponse.
func ToAttendanceResponse(a *domain.WorkerAttendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:  a.AttendanceID,
		WorkerID:      a.WorkerID,
		ProjectID:     a.ProjectID,
		Date:          a.Date,
		InTime:        a.InTime,
		OutTime:       a.OutTime,
		IsHoliday:     a.IsHoliday,
		IsPaid:        a.IsPaid,
		HoursWorked:   a.HoursWorked,
		OvertimeHours: a.OvertimeHours,
		TotalWage:     a.TotalWage,
		Notes:         a.Notes,
	}
}

// ToAttendanceResponses converts a slice of attendance records.
func ToAttendanceResponses(atts []domain.WorkerAttendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(atts))
	for i := range atts {
		res[i] = ToAttendanceResponse(&atts[i])
	}
	return res
}

// MarkPaidBulkRequest marks many attendance records paid in one call.
type MarkPaidBulkRequest struct {
	AttendanceIDs []string `json:"attendanceIDs" binding:"required,min=1"`
}
