package payroll_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/utils/payroll"
)

func shiftTimes(t *testing.T, in, out string) (time.Time, time.Time) {
	t.Helper()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	inT, err := time.Parse("15:04", in)
	assert.NoError(t, err)
	outT, err := time.Parse("15:04", out)
	assert.NoError(t, err)
	combine := func(hm time.Time) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, time.UTC)
	}
	return combine(inT), combine(outT)
}

func ownWorkerParams(t *testing.T, in, out string, holiday bool) payroll.Params {
	inT, outT := shiftTimes(t, in, out)
	return payroll.Params{
		WorkerType:          domain.WorkerOwn,
		InTime:              inT,
		OutTime:             outT,
		IsHoliday:           holiday,
		FixedWage:           decimal.NewFromInt(3000),
		OT1Rate:             decimal.NewFromInt(5),
		OT2Rate:             decimal.NewFromInt(10),
		StandardHoursPerDay: decimal.NewFromInt(8),
		WorkDaysPerMonth:    decimal.NewFromInt(30),
	}
}

func TestCalculateOwnWorkerWithOvertime(t *testing.T) {
	// 10h shift: 8 regular at 3000/30/8 = 12.50/h plus 2 overtime at 5/h.
	got := payroll.Calculate(ownWorkerParams(t, "07:00", "17:00", false))

	assert.True(t, got.HoursWorked.Equal(decimal.NewFromInt(10)), "hours: %s", got.HoursWorked)
	assert.True(t, got.OvertimeHours.Equal(decimal.NewFromInt(2)), "overtime: %s", got.OvertimeHours)
	assert.True(t, got.TotalWage.Equal(decimal.NewFromInt(110)), "wage: %s", got.TotalWage)
}

func TestCalculateOwnWorkerWithinStandardHours(t *testing.T) {
	got := payroll.Calculate(ownWorkerParams(t, "08:00", "12:00", false))

	assert.True(t, got.HoursWorked.Equal(decimal.NewFromInt(4)))
	assert.True(t, got.OvertimeHours.IsZero())
	assert.True(t, got.TotalWage.Equal(decimal.NewFromInt(50)), "4h at 12.50/h, got %s", got.TotalWage)
}

func TestCalculateHolidayClassifiesWholeShiftAsOvertime(t *testing.T) {
	got := payroll.Calculate(ownWorkerParams(t, "07:00", "17:00", true))

	assert.True(t, got.OvertimeHours.Equal(got.HoursWorked))
	assert.True(t, got.TotalWage.Equal(decimal.NewFromInt(100)), "10h at OT2 10/h, got %s", got.TotalWage)
}

func TestCalculateOutsourcedFlatDayRatePlusOvertime(t *testing.T) {
	inT, outT := shiftTimes(t, "07:00", "18:00")
	got := payroll.Calculate(payroll.Params{
		WorkerType:          domain.WorkerOutsourced,
		InTime:              inT,
		OutTime:             outT,
		DailyWage:           decimal.NewFromInt(80),
		OT1Rate:             decimal.NewFromInt(6),
		OT2Rate:             decimal.NewFromInt(12),
		StandardHoursPerDay: decimal.NewFromInt(8),
		WorkDaysPerMonth:    decimal.NewFromInt(30),
	})

	// 11h shift: flat 80 plus 3h overtime at 6/h. The day rate does not
	// shrink for short days, so regular hours never scale it.
	assert.True(t, got.HoursWorked.Equal(decimal.NewFromInt(11)))
	assert.True(t, got.OvertimeHours.Equal(decimal.NewFromInt(3)))
	assert.True(t, got.TotalWage.Equal(decimal.NewFromInt(98)), "wage: %s", got.TotalWage)
}

func TestCalculateOutsourcedShortDayStillEarnsDayRate(t *testing.T) {
	inT, outT := shiftTimes(t, "09:00", "12:00")
	got := payroll.Calculate(payroll.Params{
		WorkerType:          domain.WorkerOutsourced,
		InTime:              inT,
		OutTime:             outT,
		DailyWage:           decimal.NewFromInt(80),
		OT1Rate:             decimal.NewFromInt(6),
		StandardHoursPerDay: decimal.NewFromInt(8),
		WorkDaysPerMonth:    decimal.NewFromInt(30),
	})

	assert.True(t, got.TotalWage.Equal(decimal.NewFromInt(80)))
}

func TestCalculateZeroOrNegativeDurationYieldsZeros(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
	}{
		{"equal times", "08:00", "08:00"},
		{"out before in", "17:00", "08:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := payroll.Calculate(ownWorkerParams(t, tc.in, tc.out, false))
			assert.True(t, got.HoursWorked.IsZero())
			assert.True(t, got.OvertimeHours.IsZero())
			assert.True(t, got.TotalWage.IsZero())
		})
	}
}

func TestCalculateOwnWorkerZeroDivisorsYieldZeroRegularWage(t *testing.T) {
	p := ownWorkerParams(t, "07:00", "17:00", false)
	p.WorkDaysPerMonth = decimal.Zero

	got := payroll.Calculate(p)

	// Overtime still pays out at OT1 even when the hourly rate collapses.
	assert.True(t, got.TotalWage.Equal(decimal.NewFromInt(10)), "2h OT at 5/h, got %s", got.TotalWage)
}

func TestCalculateFractionalHours(t *testing.T) {
	got := payroll.Calculate(ownWorkerParams(t, "08:00", "16:30", false))

	assert.True(t, got.HoursWorked.Equal(decimal.RequireFromString("8.5")), "hours: %s", got.HoursWorked)
	assert.True(t, got.OvertimeHours.Equal(decimal.RequireFromString("0.5")))
	// 8h regular at 12.50 plus 0.5h at 5.
	assert.True(t, got.TotalWage.Equal(decimal.RequireFromString("102.5")), "wage: %s", got.TotalWage)
}
