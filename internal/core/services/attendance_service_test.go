package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/core/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockAttendance *MockAttendanceRepository
	mockWorkers    *MockWorkerRepository
	mockProjects   *MockProjectRepository
	txm            *fakeTxManager
	recalc         *services.Recalculator
	recalcFired    []string
	service        portssvc.AttendanceSvcFacade
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockAttendance = new(MockAttendanceRepository)
	suite.mockWorkers = new(MockWorkerRepository)
	suite.mockProjects = new(MockProjectRepository)
	suite.recalcFired = nil
	suite.recalc = services.NewRecalculator()
	suite.recalc.Register(services.KindAttendance, func(ctx context.Context, parentID string) error {
		suite.recalcFired = append(suite.recalcFired, parentID)
		return nil
	})
	suite.txm = new(fakeTxManager)
	suite.service = services.NewAttendanceService(
		suite.mockAttendance,
		suite.mockWorkers,
		suite.mockProjects,
		suite.txm,
		suite.recalc,
		decimal.NewFromInt(8),
		decimal.NewFromInt(30),
	)
}

func outsourcedWorker() *domain.Worker {
	return &domain.Worker{
		WorkerID:   "wkr-1",
		Name:       "Ravi",
		WorkerType: domain.WorkerOutsourced,
		DailyWage:  decimal.NewFromInt(80),
		OT1Rate:    decimal.NewFromInt(10),
		OT2Rate:    decimal.NewFromInt(15),
		IsActive:   true,
	}
}

func (suite *AttendanceServiceTestSuite) TestCalculateWage_OutsourcedWithOvertime() {
	ctx := context.Background()
	suite.mockWorkers.On("FindWorkerByID", ctx, "wkr-1").Return(outsourcedWorker(), nil).Once()

	breakdown, err := suite.service.CalculateWage(ctx, dto.CalculateAttendanceRequest{
		WorkerID: "wkr-1",
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		InTime:   "08:00",
		OutTime:  "19:00",
	})

	suite.Require().NoError(err)
	suite.True(breakdown.HoursWorked.Equal(decimal.NewFromInt(11)))
	suite.True(breakdown.OvertimeHours.Equal(decimal.NewFromInt(3)))
	suite.True(breakdown.TotalWage.Equal(decimal.NewFromInt(110)))
}

func (suite *AttendanceServiceTestSuite) TestCalculateWage_HolidayAllHoursAtOT2() {
	ctx := context.Background()
	suite.mockWorkers.On("FindWorkerByID", ctx, "wkr-1").Return(outsourcedWorker(), nil).Once()

	breakdown, err := suite.service.CalculateWage(ctx, dto.CalculateAttendanceRequest{
		WorkerID:  "wkr-1",
		Date:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		InTime:    "08:00",
		OutTime:   "14:00",
		IsHoliday: true,
	})

	suite.Require().NoError(err)
	suite.True(breakdown.HoursWorked.Equal(decimal.NewFromInt(6)))
	suite.True(breakdown.OvertimeHours.Equal(decimal.NewFromInt(6)))
	suite.True(breakdown.TotalWage.Equal(decimal.NewFromInt(90)))
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_FiresProjectCostRecompute() {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.mockWorkers.On("FindWorkerByID", ctx, "wkr-1").Return(outsourcedWorker(), nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(&domain.Project{ProjectID: "proj-1"}, nil).Once()
	suite.mockAttendance.On("ExistsForWorkerOnDate", ctx, "wkr-1", date, "").Return(false, nil).Once()
	suite.mockAttendance.On("SaveAttendance", ctx, mock.MatchedBy(func(att domain.WorkerAttendance) bool {
		return att.TotalWage.Equal(decimal.NewFromInt(110)) && !att.IsPaid
	})).Return(nil).Once()

	record, err := suite.service.RecordAttendance(ctx, dto.RecordAttendanceRequest{
		WorkerID:  "wkr-1",
		ProjectID: "proj-1",
		Date:      date,
		InTime:    "08:00",
		OutTime:   "19:00",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(record.TotalWage.Equal(decimal.NewFromInt(110)))
	suite.Equal([]string{"proj-1"}, suite.recalcFired)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_DuplicateDateRejected() {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.mockWorkers.On("FindWorkerByID", ctx, "wkr-1").Return(outsourcedWorker(), nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(&domain.Project{ProjectID: "proj-1"}, nil).Once()
	suite.mockAttendance.On("ExistsForWorkerOnDate", ctx, "wkr-1", date, "").Return(true, nil).Once()

	_, err := suite.service.RecordAttendance(ctx, dto.RecordAttendanceRequest{
		WorkerID:  "wkr-1",
		ProjectID: "proj-1",
		Date:      date,
		InTime:    "08:00",
		OutTime:   "17:00",
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Empty(suite.recalcFired)
	suite.mockAttendance.AssertNotCalled(suite.T(), "SaveAttendance", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_OutBeforeInRejected() {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.mockWorkers.On("FindWorkerByID", ctx, "wkr-1").Return(outsourcedWorker(), nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(&domain.Project{ProjectID: "proj-1"}, nil).Once()

	_, err := suite.service.RecordAttendance(ctx, dto.RecordAttendanceRequest{
		WorkerID:  "wkr-1",
		ProjectID: "proj-1",
		Date:      date,
		InTime:    "17:00",
		OutTime:   "08:00",
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AttendanceServiceTestSuite) TestDeleteAttendance_PaidRecordBlocked() {
	ctx := context.Background()
	paid := &domain.WorkerAttendance{AttendanceID: "att-1", ProjectID: "proj-1", IsPaid: true}

	suite.mockAttendance.On("FindAttendanceByID", ctx, "att-1").Return(paid, nil).Once()

	err := suite.service.DeleteAttendance(ctx, "att-1")

	suite.Require().ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockAttendance.AssertNotCalled(suite.T(), "DeleteAttendance", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestMarkManyPaid_NoRecomputeFired() {
	ctx := context.Background()

	suite.mockAttendance.On("MarkAttendancePaid", ctx, "att-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAttendance.On("MarkAttendancePaid", ctx, "att-2", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.MarkManyPaid(ctx, []string{"att-1", "att-2"}, "user-1")

	suite.Require().NoError(err)
	suite.Empty(suite.recalcFired)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestUpdateAttendance_PaidRecordBlocked() {
	ctx := context.Background()
	paid := &domain.WorkerAttendance{AttendanceID: "att-1", WorkerID: "wkr-1", ProjectID: "proj-1", IsPaid: true}
	outClock := "19:00"

	suite.mockAttendance.On("FindAttendanceByID", ctx, "att-1").Return(paid, nil).Once()

	_, err := suite.service.UpdateAttendance(ctx, "att-1", dto.UpdateAttendanceRequest{OutTime: &outClock}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrPrecondition)
	suite.Empty(suite.recalcFired)
	suite.mockAttendance.AssertNotCalled(suite.T(), "UpdateAttendance", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestRecordAttendance_RecomputeFailureRollsBackUnitOfWork() {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.recalc.Register(services.KindAttendance, func(ctx context.Context, parentID string) error {
		return errors.New("db connection lost")
	})

	suite.mockWorkers.On("FindWorkerByID", ctx, "wkr-1").Return(outsourcedWorker(), nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(&domain.Project{ProjectID: "proj-1"}, nil).Once()
	suite.mockAttendance.On("ExistsForWorkerOnDate", ctx, "wkr-1", date, "").Return(false, nil).Once()
	suite.mockAttendance.On("SaveAttendance", ctx, mock.AnythingOfType("domain.WorkerAttendance")).Return(nil).Once()

	_, err := suite.service.RecordAttendance(ctx, dto.RecordAttendanceRequest{
		WorkerID:  "wkr-1",
		ProjectID: "proj-1",
		Date:      date,
		InTime:    "08:00",
		OutTime:   "17:00",
	}, "user-1")

	suite.Require().Error(err)
	suite.Equal(0, suite.txm.commits)
	suite.Equal(1, suite.txm.rollbacks)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
