package services

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// InvoiceSvcFacade defines operations on client invoices and their payments.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error)

	// RecordPayment appends a payment and refreshes the invoice's cached
	// received amount and paid flag.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordInvoicePaymentRequest, creatorUserID string) (*domain.InvoicePayment, error)
	// ListPayments retrieves the payments recorded against an invoice.
	ListPayments(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error)
	// RecomputeReceived rebuilds the invoice's cached received amount from
	// its payments and persists the result.
	RecomputeReceived(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}
