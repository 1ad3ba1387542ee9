package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/core/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

type WorkerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWorkerRepository
	service  portssvc.WorkerSvcFacade
}

func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWorkerRepository)
	suite.service = services.NewWorkerService(suite.mockRepo)
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_OwnRequiresFixedWage() {
	ctx := context.Background()

	_, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		Name:       "Suresh",
		WorkerType: domain.WorkerOwn,
		DailyWage:  decimal.NewFromInt(80),
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveWorker", mock.Anything, mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_OutsourcedRequiresDailyWage() {
	ctx := context.Background()

	_, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		Name:       "Ravi",
		WorkerType: domain.WorkerOutsourced,
		FixedWage:  decimal.NewFromInt(3000),
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_GroupOnlyForOutsourced() {
	ctx := context.Background()
	groupID := "grp-1"

	_, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		Name:       "Suresh",
		WorkerType: domain.WorkerOwn,
		FixedWage:  decimal.NewFromInt(3000),
		GroupID:    &groupID,
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveWorker", mock.Anything, mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_OutsourcedInGroupSaved() {
	ctx := context.Background()
	groupID := "grp-1"

	suite.mockRepo.On("FindGroupByID", ctx, "grp-1").
		Return(&domain.OutsourcedGroup{GroupID: "grp-1", Name: "Masons"}, nil).Once()
	suite.mockRepo.On("SaveWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.WorkerType == domain.WorkerOutsourced && w.GroupID != nil && *w.GroupID == "grp-1" && w.IsActive
	})).Return(nil).Once()

	worker, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		Name:       "Ravi",
		WorkerType: domain.WorkerOutsourced,
		DailyWage:  decimal.NewFromInt(80),
		GroupID:    &groupID,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(worker.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestCreateGroup_LeaderMustBeOutsourced() {
	ctx := context.Background()
	leaderID := "wkr-own"

	suite.mockRepo.On("FindWorkerByID", ctx, "wkr-own").
		Return(&domain.Worker{WorkerID: "wkr-own", WorkerType: domain.WorkerOwn}, nil).Once()

	_, err := suite.service.CreateGroup(ctx, dto.CreateGroupRequest{
		Name:     "Masons",
		LeaderID: &leaderID,
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGroup", mock.Anything, mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestUpdateWorker_NegativeOvertimeRateRejected() {
	ctx := context.Background()
	negative := decimal.NewFromInt(-5)

	suite.mockRepo.On("FindWorkerByID", ctx, "wkr-1").Return(outsourcedWorker(), nil).Once()

	_, err := suite.service.UpdateWorker(ctx, "wkr-1", dto.UpdateWorkerRequest{OT1Rate: &negative}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateWorker", mock.Anything, mock.Anything)
}

func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}
