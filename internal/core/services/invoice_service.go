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
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
	txManager   portsrepo.TransactionManager
	recalc      *Recalculator
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, txManager portsrepo.TransactionManager, recalc *Recalculator) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, projectRepo: projectRepo, txManager: txManager, recalc: recalc}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: invoice total must be positive", apperrors.ErrValidation)
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		InvoiceNumber:  req.InvoiceNumber,
		ProjectID:      req.ProjectID,
		ClientName:     req.ClientName,
		Date:           req.Date,
		TotalAmount:    req.TotalAmount,
		AmountReceived: decimal.Zero,
		IsPaid:         false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save invoice", slog.String("error", err.Error()), slog.String("invoice_number", req.InvoiceNumber))
		return nil, err
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.invoiceRepo.ListInvoices(ctx, limit, offset)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		invoice.ClientName = *req.ClientName
	}
	if req.Date != nil {
		invoice.Date = *req.Date
	}
	if req.TotalAmount != nil {
		if !req.TotalAmount.IsPositive() {
			return nil, fmt.Errorf("%w: invoice total must be positive", apperrors.ErrValidation)
		}
		invoice.TotalAmount = *req.TotalAmount
	}
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = updaterUserID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, err
	}

	// A changed total moves the paid threshold, so refresh the cache.
	return s.RecomputeReceived(ctx, invoiceID)
}

// RecordPayment appends a payment against the invoice. Any positive amount
// is accepted and reduces the balance due directly; there is no prefix or
// ordering logic on invoice payments.
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordInvoicePaymentRequest, creatorUserID string) (*domain.InvoicePayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := domain.InvoicePayment{
		PaymentID: uuid.NewString(),
		InvoiceID: invoiceID,
		Amount:    req.Amount,
		Date:      req.Date,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The payment row and the received-total refresh commit together.
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.invoiceRepo.SavePayment(ctx, payment); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindInvoicePayment, invoiceID)
	})
	if err != nil {
		logger.Error("Failed to save invoice payment", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	logger.Info("Invoice payment recorded", slog.String("invoice_id", invoiceID), slog.String("amount", req.Amount.String()))
	return &payment, nil
}

func (s *invoiceService) ListPayments(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListPaymentsByInvoice(ctx, invoiceID)
}

// RecomputeReceived rebuilds the invoice's cached received total from its
// payments and refreshes the paid flag.
func (s *invoiceService) RecomputeReceived(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	received, err := s.invoiceRepo.SumPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to sum invoice payments", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	isPaid := invoice.TotalAmount.Sub(received).LessThanOrEqual(decimal.Zero)
	if err := s.invoiceRepo.UpdateInvoiceReceived(ctx, invoiceID, received, isPaid, time.Now()); err != nil {
		return nil, err
	}

	invoice.AmountReceived = received
	invoice.IsPaid = isPaid
	return invoice, nil
}
