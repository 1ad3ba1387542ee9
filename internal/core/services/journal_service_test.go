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

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournals *MockJournalRepository
	mockAccounts *MockAccountRepository
	service      portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournals = new(MockJournalRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournals, suite.mockAccounts)
}

func balancedRequest() dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		Date:        time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Description: "Cement purchase on credit",
		VoucherType: domain.VoucherJournal,
		Entries: []dto.JournalEntryRequest{
			{AccountID: "acc-materials", Debit: decimal.NewFromInt(500)},
			{AccountID: "acc-supplier", Credit: decimal.NewFromInt(500)},
		},
	}
}

func (suite *JournalServiceTestSuite) TestCreateJournal_MaterialisesOneTransactionPerEntry() {
	ctx := context.Background()

	suite.mockAccounts.On("FindAccountByID", ctx, "acc-materials").
		Return(&domain.Account{AccountID: "acc-materials", AccountType: domain.Expense}, nil).Once()
	suite.mockAccounts.On("FindAccountByID", ctx, "acc-supplier").
		Return(&domain.Account{AccountID: "acc-supplier", AccountType: domain.Liability}, nil).Once()
	suite.mockJournals.On("SaveJournal", ctx,
		mock.MatchedBy(func(j domain.Journal) bool {
			return j.Amount.Equal(decimal.NewFromInt(500)) && len(j.Entries) == 2
		}),
		mock.MatchedBy(func(txns []domain.Transaction) bool {
			if len(txns) != 2 {
				return false
			}
			debitOK := txns[0].TransactionType == domain.Debit &&
				txns[0].AccountID == "acc-materials" &&
				txns[0].Amount.Equal(decimal.NewFromInt(500)) &&
				txns[0].JournalID != nil
			creditOK := txns[1].TransactionType == domain.Credit &&
				txns[1].AccountID == "acc-supplier" &&
				txns[1].Amount.Equal(decimal.NewFromInt(500))
			return debitOK && creditOK
		}),
	).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, balancedRequest(), "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.True(journal.Amount.Equal(decimal.NewFromInt(500)))
	suite.mockJournals.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_UnbalancedRejected() {
	ctx := context.Background()
	req := balancedRequest()
	req.Entries[1].Credit = decimal.NewFromInt(400)

	_, err := suite.service.CreateJournal(ctx, req, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournals.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_TwoSidedEntryRejected() {
	ctx := context.Background()
	req := balancedRequest()
	req.Entries[0].Credit = decimal.NewFromInt(100)

	_, err := suite.service.CreateJournal(ctx, req, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_UnknownAccountBlocksSave() {
	ctx := context.Background()

	suite.mockAccounts.On("FindAccountByID", ctx, "acc-materials").
		Return(nil, apperrors.NewNotFoundError("account acc-materials not found")).Once()

	_, err := suite.service.CreateJournal(ctx, balancedRequest(), "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournals.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestValidateEntries_BalancedPasses() {
	err := suite.service.ValidateEntries(context.Background(), []dto.JournalEntryRequest{
		{AccountID: "a", Debit: decimal.NewFromInt(250)},
		{AccountID: "b", Credit: decimal.NewFromInt(250)},
	})
	suite.NoError(err)
}

func (suite *JournalServiceTestSuite) TestValidateEntries_ZeroTotalRejected() {
	err := suite.service.ValidateEntries(context.Background(), []dto.JournalEntryRequest{
		{AccountID: "a"},
		{AccountID: "b"},
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
