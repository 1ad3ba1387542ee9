package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
	"github.com/praveentp099/uforce-accounting/internal/utils/payroll"
)

const clockLayout = "15:04"

type attendanceService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	workerRepo     portsrepo.WorkerRepositoryFacade
	projectRepo    portsrepo.ProjectRepositoryFacade
	txManager      portsrepo.TransactionManager
	recalc         *Recalculator

	standardHoursPerDay decimal.Decimal
	workDaysPerMonth    decimal.Decimal
}

// NewAttendanceService creates a new attendance service. standardHoursPerDay
// and workDaysPerMonth come from configuration and apply to all workers.
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	txManager portsrepo.TransactionManager,
	recalc *Recalculator,
	standardHoursPerDay, workDaysPerMonth decimal.Decimal,
) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		attendanceRepo:      attendanceRepo,
		workerRepo:          workerRepo,
		projectRepo:         projectRepo,
		txManager:           txManager,
		recalc:              recalc,
		standardHoursPerDay: standardHoursPerDay,
		workDaysPerMonth:    workDaysPerMonth,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// parseShift anchors "15:04" clock strings on the attendance date and
// rejects spans that do not move forward. Overnight shifts are not supported.
func parseShift(date time.Time, inClock, outClock string) (in, out time.Time, err error) {
	inT, err := time.Parse(clockLayout, inClock)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: in time must be in HH:MM format", apperrors.ErrValidation)
	}
	outT, err := time.Parse(clockLayout, outClock)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: out time must be in HH:MM format", apperrors.ErrValidation)
	}

	in = time.Date(date.Year(), date.Month(), date.Day(), inT.Hour(), inT.Minute(), 0, 0, date.Location())
	out = time.Date(date.Year(), date.Month(), date.Day(), outT.Hour(), outT.Minute(), 0, 0, date.Location())

	if !out.After(in) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: out time must be after in time", apperrors.ErrValidation)
	}
	return in, out, nil
}

// wageParams assembles calculation inputs from the worker's current rates.
// Rates are read live, not snapshotted: re-saving an old record after a
// rate change recalculates it at the new rates.
func (s *attendanceService) wageParams(worker *domain.Worker, in, out time.Time, isHoliday bool) payroll.Params {
	return payroll.Params{
		WorkerType:          worker.WorkerType,
		InTime:              in,
		OutTime:             out,
		IsHoliday:           isHoliday,
		FixedWage:           worker.FixedWage,
		DailyWage:           worker.DailyWage,
		OT1Rate:             worker.OT1Rate,
		OT2Rate:             worker.OT2Rate,
		StandardHoursPerDay: s.standardHoursPerDay,
		WorkDaysPerMonth:    s.workDaysPerMonth,
	}
}

func (s *attendanceService) CalculateWage(ctx context.Context, req dto.CalculateAttendanceRequest) (*dto.WageBreakdownResponse, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID)
	if err != nil {
		return nil, err
	}

	in, out, err := parseShift(req.Date, req.InTime, req.OutTime)
	if err != nil {
		return nil, err
	}

	b := payroll.Calculate(s.wageParams(worker, in, out, req.IsHoliday))
	return &dto.WageBreakdownResponse{
		HoursWorked:   b.HoursWorked,
		OvertimeHours: b.OvertimeHours,
		TotalWage:     b.TotalWage,
	}, nil
}

func (s *attendanceService) RecordAttendance(ctx context.Context, req dto.RecordAttendanceRequest, creatorUserID string) (*domain.WorkerAttendance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	worker, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	in, out, err := parseShift(req.Date, req.InTime, req.OutTime)
	if err != nil {
		return nil, err
	}

	exists, err := s.attendanceRepo.ExistsForWorkerOnDate(ctx, req.WorkerID, req.Date, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: worker already has an attendance record on this date", apperrors.ErrDuplicate)
	}

	b := payroll.Calculate(s.wageParams(worker, in, out, req.IsHoliday))

	now := time.Now()
	att := domain.WorkerAttendance{
		AttendanceID:  uuid.NewString(),
		WorkerID:      req.WorkerID,
		ProjectID:     req.ProjectID,
		Date:          req.Date,
		InTime:        in,
		OutTime:       out,
		IsHoliday:     req.IsHoliday,
		HoursWorked:   b.HoursWorked,
		OvertimeHours: b.OvertimeHours,
		TotalWage:     b.TotalWage,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The record and the project cost recompute commit together.
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.attendanceRepo.SaveAttendance(ctx, att); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindAttendance, att.ProjectID)
	})
	if err != nil {
		logger.Error("Failed to save attendance", slog.String("error", err.Error()), slog.String("worker_id", req.WorkerID))
		return nil, err
	}

	logger.Info("Attendance recorded",
		slog.String("attendance_id", att.AttendanceID),
		slog.String("worker_id", att.WorkerID),
		slog.String("total_wage", att.TotalWage.String()),
	)
	return &att, nil
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, attendanceID string, req dto.UpdateAttendanceRequest, updaterUserID string) (*domain.WorkerAttendance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	att, err := s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	// A paid record's wage is already settled by a group payment; editing
	// it would desync wages from the ledger.
	if att.IsPaid {
		return nil, fmt.Errorf("%w: paid attendance records cannot be edited", apperrors.ErrPrecondition)
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, att.WorkerID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil && !req.Date.Equal(att.Date) {
		exists, err := s.attendanceRepo.ExistsForWorkerOnDate(ctx, att.WorkerID, *req.Date, attendanceID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: worker already has an attendance record on this date", apperrors.ErrDuplicate)
		}
		att.Date = *req.Date
	}

	inClock := att.InTime.Format(clockLayout)
	outClock := att.OutTime.Format(clockLayout)
	if req.InTime != nil {
		inClock = *req.InTime
	}
	if req.OutTime != nil {
		outClock = *req.OutTime
	}
	in, out, err := parseShift(att.Date, inClock, outClock)
	if err != nil {
		return nil, err
	}
	att.InTime = in
	att.OutTime = out

	if req.IsHoliday != nil {
		att.IsHoliday = *req.IsHoliday
	}
	if req.Notes != nil {
		att.Notes = *req.Notes
	}

	// Derived fields are rebuilt on every save.
	b := payroll.Calculate(s.wageParams(worker, att.InTime, att.OutTime, att.IsHoliday))
	att.HoursWorked = b.HoursWorked
	att.OvertimeHours = b.OvertimeHours
	att.TotalWage = b.TotalWage

	att.LastUpdatedAt = time.Now()
	att.LastUpdatedBy = updaterUserID

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.attendanceRepo.UpdateAttendance(ctx, *att); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindAttendance, att.ProjectID)
	})
	if err != nil {
		logger.Error("Failed to update attendance", slog.String("error", err.Error()), slog.String("attendance_id", attendanceID))
		return nil, err
	}

	return att, nil
}

func (s *attendanceService) DeleteAttendance(ctx context.Context, attendanceID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	att, err := s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
	if err != nil {
		return err
	}
	if att.IsPaid {
		return fmt.Errorf("%w: paid attendance records cannot be deleted", apperrors.ErrPrecondition)
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.attendanceRepo.DeleteAttendance(ctx, attendanceID); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindAttendance, att.ProjectID)
	})
	if err != nil {
		logger.Error("Failed to delete attendance", slog.String("error", err.Error()), slog.String("attendance_id", attendanceID))
	}
	return err
}

func (s *attendanceService) GetAttendanceByID(ctx context.Context, attendanceID string) (*domain.WorkerAttendance, error) {
	return s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
}

func (s *attendanceService) ListByWorker(ctx context.Context, workerID string, from, to time.Time) ([]domain.WorkerAttendance, error) {
	return s.attendanceRepo.ListAttendanceByWorker(ctx, workerID, from, to)
}

func (s *attendanceService) ListByProject(ctx context.Context, projectID string, from, to time.Time) ([]domain.WorkerAttendance, error) {
	atts, err := s.attendanceRepo.ListAttendanceByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if from.IsZero() && to.IsZero() {
		return atts, nil
	}
	filtered := atts[:0]
	for _, a := range atts {
		if !from.IsZero() && a.Date.Before(from) {
			continue
		}
		if !to.IsZero() && a.Date.After(to) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered, nil
}

// MarkPaid flags a single record paid. The paid flag does not feed any
// cost aggregate, so no recompute fires.
func (s *attendanceService) MarkPaid(ctx context.Context, attendanceID string, updaterUserID string) error {
	if _, err := s.attendanceRepo.FindAttendanceByID(ctx, attendanceID); err != nil {
		return err
	}
	return s.attendanceRepo.MarkAttendancePaid(ctx, attendanceID, updaterUserID, time.Now())
}

// MarkManyPaid is the bulk path: it flips each record in turn. Bulk
// mutations bypass per-row trigger firing; the paid flag feeds no
// aggregate, so there is nothing to recompute afterwards.
func (s *attendanceService) MarkManyPaid(ctx context.Context, attendanceIDs []string, updaterUserID string) error {
	now := time.Now()
	for _, id := range attendanceIDs {
		if err := s.attendanceRepo.MarkAttendancePaid(ctx, id, updaterUserID, now); err != nil {
			return err
		}
	}
	middleware.GetLoggerFromCtx(ctx).Info("Attendance records marked paid", slog.Int("count", len(attendanceIDs)))
	return nil
}
