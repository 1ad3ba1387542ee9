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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxns     *MockTransactionRepository
	mockAccounts *MockAccountRepository
	txm          *fakeTxManager
	recalc       *services.Recalculator
	service      portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxns = new(MockTransactionRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.txm = new(fakeTxManager)
	suite.recalc = services.NewRecalculator()
	suite.service = services.NewLedgerService(suite.mockTxns, suite.mockAccounts, suite.txm, suite.recalc)

	// Same rule the application container registers: a transaction change
	// rebuilds the account's cached balance.
	accountSvc := services.NewAccountService(suite.mockAccounts)
	suite.recalc.Register(services.KindTransaction, func(ctx context.Context, accountID string) error {
		_, err := accountSvc.RecomputeBalance(ctx, accountID)
		return err
	})
}

func bankAccount() *domain.Account {
	return &domain.Account{
		AccountID:   "acc-1",
		Name:        "Company Bank",
		AccountType: domain.Asset,
		IsActive:    true,
	}
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RefreshesBalanceInOneUnitOfWork() {
	ctx := context.Background()

	suite.mockAccounts.On("FindAccountByID", ctx, "acc-1").Return(bankAccount(), nil).Twice()
	suite.mockTxns.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.AccountID == "acc-1" && txn.Amount.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()
	suite.mockAccounts.On("SumTransactionTotals", ctx, "acc-1").
		Return(decimal.NewFromInt(500), decimal.NewFromInt(200), nil).Once()
	suite.mockAccounts.On("UpdateAccountBalance", ctx, "acc-1", decimal.NewFromInt(300), "system", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       "acc-1",
		Date:            time.Now(),
		Amount:          decimal.NewFromInt(500),
		TransactionType: domain.Debit,
		Description:     "material advance",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(1, suite.txm.commits)
	suite.Equal(0, suite.txm.rollbacks)
	suite.mockAccounts.AssertExpectations(suite.T())
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RecomputeFailureRollsBackUnitOfWork() {
	ctx := context.Background()

	suite.mockAccounts.On("FindAccountByID", ctx, "acc-1").Return(bankAccount(), nil).Twice()
	suite.mockTxns.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockAccounts.On("SumTransactionTotals", ctx, "acc-1").
		Return(decimal.Zero, decimal.Zero, errors.New("connection lost")).Once()

	_, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       "acc-1",
		Date:            time.Now(),
		Amount:          decimal.NewFromInt(500),
		TransactionType: domain.Debit,
		Description:     "material advance",
	}, "user-1")

	suite.Require().Error(err)
	suite.Equal(0, suite.txm.commits)
	suite.Equal(1, suite.txm.rollbacks)
	suite.mockAccounts.AssertNotCalled(suite.T(), "UpdateAccountBalance",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       "acc-1",
		Date:            time.Now(),
		Amount:          decimal.Zero,
		TransactionType: domain.Credit,
		Description:     "noop",
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxns.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_VoucherRowsImmutable() {
	ctx := context.Background()
	journalID := "jrn-1"
	amount := decimal.NewFromInt(50)

	suite.mockTxns.On("FindTransactionByID", ctx, "txn-1").Return(&domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		JournalID:     &journalID,
	}, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, "txn-1", dto.UpdateTransactionRequest{Amount: &amount}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxns.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_VoucherRowsImmutable() {
	ctx := context.Background()
	journalID := "jrn-1"

	suite.mockTxns.On("FindTransactionByID", ctx, "txn-1").Return(&domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		JournalID:     &journalID,
	}, nil).Once()

	err := suite.service.DeleteTransaction(ctx, "txn-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxns.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_RefreshesBalance() {
	ctx := context.Background()

	suite.mockTxns.On("FindTransactionByID", ctx, "txn-1").Return(&domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
	}, nil).Once()
	suite.mockTxns.On("DeleteTransaction", ctx, "txn-1").Return(nil).Once()
	suite.mockAccounts.On("FindAccountByID", ctx, "acc-1").Return(bankAccount(), nil).Once()
	suite.mockAccounts.On("SumTransactionTotals", ctx, "acc-1").
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockAccounts.On("UpdateAccountBalance", ctx, "acc-1", decimal.Zero, "system", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "txn-1")

	suite.Require().NoError(err)
	suite.Equal(1, suite.txm.commits)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
