package services_test

import (
	"context"
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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPayments   *MockPaymentRepository
	mockAttendance *MockAttendanceRepository
	mockAccounts   *MockAccountRepository
	mockWorkers    *MockWorkerRepository
	service        portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPayments = new(MockPaymentRepository)
	suite.mockAttendance = new(MockAttendanceRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockWorkers = new(MockWorkerRepository)
	suite.service = services.NewPaymentService(suite.mockPayments, suite.mockAttendance, suite.mockAccounts, suite.mockWorkers)
}

func unpaidRecord(id string, wage int64) domain.WorkerAttendance {
	return domain.WorkerAttendance{
		AttendanceID: id,
		TotalWage:    decimal.NewFromInt(wage),
	}
}

func (suite *PaymentServiceTestSuite) TestAllocateGroupPayment_OldestFirstPrefix() {
	ctx := context.Background()
	group := &domain.OutsourcedGroup{GroupID: "grp-1", Name: "Masons"}
	funding := &domain.Account{AccountID: "acc-1", AccountType: domain.Asset, IsActive: true}
	unpaid := []domain.WorkerAttendance{
		unpaidRecord("att-1", 40),
		unpaidRecord("att-2", 30),
		unpaidRecord("att-3", 50),
	}

	suite.mockWorkers.On("FindGroupByID", ctx, "grp-1").Return(group, nil).Once()
	suite.mockAccounts.On("FindFundingAccount", ctx).Return(funding, nil).Once()
	suite.mockAttendance.On("ListUnpaidByGroup", ctx, "grp-1").Return(unpaid, nil).Once()
	suite.mockPayments.On("SaveGroupPayment", ctx,
		mock.AnythingOfType("domain.GroupPayment"),
		mock.MatchedBy(func(txn domain.Transaction) bool {
			// Funding from an asset account is recorded as a credit for the full amount.
			return txn.TransactionType == domain.Credit &&
				txn.AccountID == "acc-1" &&
				txn.Amount.Equal(decimal.NewFromInt(75))
		}),
		[]string{"att-1", "att-2"},
	).Return(nil).Once()

	result, err := suite.service.AllocateGroupPayment(ctx, "grp-1", dto.AllocateGroupPaymentRequest{
		Amount:      decimal.NewFromInt(75),
		PaymentDate: time.Now(),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(2, result.RecordsMarkedPaid)
	suite.True(result.AmountCovered.Equal(decimal.NewFromInt(70)))
	suite.True(result.Remainder.Equal(decimal.NewFromInt(5)))
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAllocateGroupPayment_ZeroCoverageStillPersists() {
	ctx := context.Background()
	group := &domain.OutsourcedGroup{GroupID: "grp-1", Name: "Masons"}
	funding := &domain.Account{AccountID: "acc-1", AccountType: domain.Income, IsActive: true}
	unpaid := []domain.WorkerAttendance{unpaidRecord("att-1", 100)}

	suite.mockWorkers.On("FindGroupByID", ctx, "grp-1").Return(group, nil).Once()
	suite.mockAccounts.On("FindFundingAccount", ctx).Return(funding, nil).Once()
	suite.mockAttendance.On("ListUnpaidByGroup", ctx, "grp-1").Return(unpaid, nil).Once()
	suite.mockPayments.On("SaveGroupPayment", ctx,
		mock.AnythingOfType("domain.GroupPayment"),
		mock.MatchedBy(func(txn domain.Transaction) bool {
			// A non-asset funding account records the outflow as a debit.
			return txn.TransactionType == domain.Debit
		}),
		[]string(nil),
	).Return(nil).Once()

	result, err := suite.service.AllocateGroupPayment(ctx, "grp-1", dto.AllocateGroupPaymentRequest{
		Amount:      decimal.NewFromInt(60),
		PaymentDate: time.Now(),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(0, result.RecordsMarkedPaid)
	suite.True(result.AmountCovered.IsZero())
	suite.True(result.Remainder.Equal(decimal.NewFromInt(60)))
}

func (suite *PaymentServiceTestSuite) TestAllocateGroupPayment_NoFundingAccountAborts() {
	ctx := context.Background()
	group := &domain.OutsourcedGroup{GroupID: "grp-1", Name: "Masons"}

	suite.mockWorkers.On("FindGroupByID", ctx, "grp-1").Return(group, nil).Once()
	suite.mockAccounts.On("FindFundingAccount", ctx).
		Return(nil, apperrors.NewNotFoundError("no active asset or income account exists")).Once()

	result, err := suite.service.AllocateGroupPayment(ctx, "grp-1", dto.AllocateGroupPaymentRequest{
		Amount:      decimal.NewFromInt(75),
		PaymentDate: time.Now(),
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrPrecondition)
	suite.Nil(result)
	suite.mockPayments.AssertNotCalled(suite.T(), "SaveGroupPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAllocateGroupPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.AllocateGroupPayment(ctx, "grp-1", dto.AllocateGroupPaymentRequest{
		Amount:      decimal.Zero,
		PaymentDate: time.Now(),
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestPayAllGroup_SettlesFullOutstanding() {
	ctx := context.Background()
	group := &domain.OutsourcedGroup{GroupID: "grp-1", Name: "Masons"}
	funding := &domain.Account{AccountID: "acc-1", AccountType: domain.Asset, IsActive: true}
	unpaid := []domain.WorkerAttendance{
		unpaidRecord("att-1", 40),
		unpaidRecord("att-2", 60),
	}

	suite.mockAttendance.On("ListUnpaidByGroup", ctx, "grp-1").Return(unpaid, nil).Twice()
	suite.mockWorkers.On("FindGroupByID", ctx, "grp-1").Return(group, nil).Once()
	suite.mockAccounts.On("FindFundingAccount", ctx).Return(funding, nil).Once()
	suite.mockPayments.On("SaveGroupPayment", ctx,
		mock.AnythingOfType("domain.GroupPayment"),
		mock.AnythingOfType("domain.Transaction"),
		[]string{"att-1", "att-2"},
	).Return(nil).Once()

	result, err := suite.service.PayAllGroup(ctx, "grp-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(2, result.RecordsMarkedPaid)
	suite.True(result.AmountCovered.Equal(decimal.NewFromInt(100)))
	suite.True(result.Remainder.IsZero())
}

func (suite *PaymentServiceTestSuite) TestPayAllGroup_NothingUnpaid() {
	ctx := context.Background()

	suite.mockAttendance.On("ListUnpaidByGroup", ctx, "grp-1").Return([]domain.WorkerAttendance{}, nil).Once()

	_, err := suite.service.PayAllGroup(ctx, "grp-1", "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestListPayables_SumsPerGroup() {
	ctx := context.Background()
	groups := []domain.OutsourcedGroup{
		{GroupID: "grp-1", Name: "Masons"},
		{GroupID: "grp-2", Name: "Electricians"},
	}

	suite.mockWorkers.On("ListGroups", ctx).Return(groups, nil).Once()
	suite.mockAttendance.On("ListUnpaidByGroup", ctx, "grp-1").
		Return([]domain.WorkerAttendance{unpaidRecord("att-1", 40), unpaidRecord("att-2", 30)}, nil).Once()
	suite.mockAttendance.On("ListUnpaidByGroup", ctx, "grp-2").
		Return([]domain.WorkerAttendance{}, nil).Once()

	payables, err := suite.service.ListPayables(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(payables, 2)
	suite.Equal(2, payables[0].UnpaidRecords)
	suite.True(payables[0].TotalOwed.Equal(decimal.NewFromInt(70)))
	suite.Equal(0, payables[1].UnpaidRecords)
	suite.True(payables[1].TotalOwed.IsZero())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
