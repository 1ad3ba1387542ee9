package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

var secondsPerHour = decimal.NewFromInt(3600)

// Params carries everything the wage calculation depends on: the worker's
// type and rates, the shift time span, and the payroll configuration.
type Params struct {
	WorkerType          domain.WorkerType
	InTime              time.Time
	OutTime             time.Time
	IsHoliday           bool
	FixedWage           decimal.Decimal // monthly, own workers
	DailyWage           decimal.Decimal // per day, outsourced workers
	OT1Rate             decimal.Decimal // per hour, normal days
	OT2Rate             decimal.Decimal // per hour, holidays
	StandardHoursPerDay decimal.Decimal
	WorkDaysPerMonth    decimal.Decimal
}

// Breakdown is the derived output of a wage calculation.
type Breakdown struct {
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	TotalWage     decimal.Decimal
}

// Calculate computes hours worked, overtime hours and total wage for one
// attendance span. The duration floors at zero when the out time does not
// follow the in time; overnight shifts are not supported. On holidays the
// entire shift counts as overtime at the holiday rate. Rates are taken as
// given; negative inputs are the caller's responsibility.
func Calculate(p Params) Breakdown {
	hours := shiftHours(p.InTime, p.OutTime)

	if p.IsHoliday {
		return Breakdown{
			HoursWorked:   hours,
			OvertimeHours: hours,
			TotalWage:     hours.Mul(p.OT2Rate),
		}
	}

	regularHours := decimal.Min(hours, p.StandardHoursPerDay)
	overtimeHours := decimal.Max(hours.Sub(p.StandardHoursPerDay), decimal.Zero)

	var totalWage decimal.Decimal
	switch p.WorkerType {
	case domain.WorkerOwn:
		hourlyRate := decimal.Zero
		if p.WorkDaysPerMonth.IsPositive() && p.StandardHoursPerDay.IsPositive() {
			hourlyRate = p.FixedWage.Div(p.WorkDaysPerMonth).Div(p.StandardHoursPerDay)
		}
		totalWage = regularHours.Mul(hourlyRate).Add(overtimeHours.Mul(p.OT1Rate))
	default:
		// Outsourced pay is a flat day rate regardless of regular hours worked.
		totalWage = p.DailyWage.Add(overtimeHours.Mul(p.OT1Rate))
	}

	return Breakdown{
		HoursWorked:   hours,
		OvertimeHours: overtimeHours,
		TotalWage:     totalWage,
	}
}

// shiftHours returns the non-negative shift duration in decimal hours.
func shiftHours(in, out time.Time) decimal.Decimal {
	if !out.After(in) {
		return decimal.Zero
	}
	seconds := int64(out.Sub(in) / time.Second)
	return decimal.NewFromInt(seconds).Div(secondsPerHour)
}
