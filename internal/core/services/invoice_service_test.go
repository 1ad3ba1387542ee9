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

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoices *MockInvoiceRepository
	mockProjects *MockProjectRepository
	txm          *fakeTxManager
	recalc       *services.Recalculator
	service      portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoices = new(MockInvoiceRepository)
	suite.mockProjects = new(MockProjectRepository)
	suite.txm = new(fakeTxManager)
	suite.recalc = services.NewRecalculator()
	suite.service = services.NewInvoiceService(suite.mockInvoices, suite.mockProjects, suite.txm, suite.recalc)

	// Same rule the application container registers.
	suite.recalc.Register(services.KindInvoicePayment, func(ctx context.Context, invoiceID string) error {
		_, err := suite.service.RecomputeReceived(ctx, invoiceID)
		return err
	})
}

func invoiceWithTotal(total int64) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-001",
		ClientName:    "Acme Builders",
		TotalAmount:   decimal.NewFromInt(total),
	}
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_RefreshesReceivedAndPaidFlag() {
	ctx := context.Background()

	suite.mockInvoices.On("FindInvoiceByID", ctx, "inv-1").Return(invoiceWithTotal(1000), nil).Twice()
	suite.mockInvoices.On("SavePayment", ctx, mock.MatchedBy(func(p domain.InvoicePayment) bool {
		return p.InvoiceID == "inv-1" && p.Amount.Equal(decimal.NewFromInt(400))
	})).Return(nil).Once()
	suite.mockInvoices.On("SumPaymentsByInvoice", ctx, "inv-1").
		Return(decimal.NewFromInt(400), nil).Once()
	suite.mockInvoices.On("UpdateInvoiceReceived", ctx, "inv-1", decimal.NewFromInt(400), false, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, "inv-1", dto.RecordInvoicePaymentRequest{
		Amount: decimal.NewFromInt(400),
		Date:   time.Now(),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRecomputeReceived_FullCoverageFlipsPaid() {
	ctx := context.Background()

	suite.mockInvoices.On("FindInvoiceByID", ctx, "inv-1").Return(invoiceWithTotal(1000), nil).Once()
	suite.mockInvoices.On("SumPaymentsByInvoice", ctx, "inv-1").
		Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockInvoices.On("UpdateInvoiceReceived", ctx, "inv-1", decimal.NewFromInt(1000), true, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	invoice, err := suite.service.RecomputeReceived(ctx, "inv-1")

	suite.Require().NoError(err)
	suite.True(invoice.IsPaid)
	suite.True(invoice.BalanceDue().IsZero())
}

func (suite *InvoiceServiceTestSuite) TestRecomputeReceived_OverpaymentStaysPaid() {
	ctx := context.Background()

	suite.mockInvoices.On("FindInvoiceByID", ctx, "inv-1").Return(invoiceWithTotal(1000), nil).Once()
	suite.mockInvoices.On("SumPaymentsByInvoice", ctx, "inv-1").
		Return(decimal.NewFromInt(1200), nil).Once()
	suite.mockInvoices.On("UpdateInvoiceReceived", ctx, "inv-1", decimal.NewFromInt(1200), true, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	invoice, err := suite.service.RecomputeReceived(ctx, "inv-1")

	suite.Require().NoError(err)
	suite.True(invoice.IsPaid)
	suite.True(invoice.BalanceDue().Equal(decimal.NewFromInt(-200)))
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.RecordPayment(ctx, "inv-1", dto.RecordInvoicePaymentRequest{
		Amount: decimal.Zero,
		Date:   time.Now(),
	}, "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoices.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_TotalChangeMovesPaidThreshold() {
	ctx := context.Background()
	invoice := invoiceWithTotal(1000)
	invoice.AmountReceived = decimal.NewFromInt(800)
	newTotal := decimal.NewFromInt(700)

	suite.mockInvoices.On("FindInvoiceByID", ctx, "inv-1").Return(invoice, nil).Twice()
	suite.mockInvoices.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.TotalAmount.Equal(newTotal)
	})).Return(nil).Once()
	suite.mockInvoices.On("SumPaymentsByInvoice", ctx, "inv-1").
		Return(decimal.NewFromInt(800), nil).Once()
	// 800 received against a 700 total now counts as paid.
	suite.mockInvoices.On("UpdateInvoiceReceived", ctx, "inv-1", decimal.NewFromInt(800), true, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.UpdateInvoice(ctx, "inv-1", dto.UpdateInvoiceRequest{TotalAmount: &newTotal}, "user-1")

	suite.Require().NoError(err)
	suite.True(updated.IsPaid)
	suite.mockInvoices.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
