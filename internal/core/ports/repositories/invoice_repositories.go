package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// InvoiceReader defines read operations for invoices and their payments.
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices, newest first.
	ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error)

	// ListPaymentsByInvoice retrieves an invoice's payments, oldest first.
	ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error)

	// SumPaymentsByInvoice returns the total received against an invoice.
	SumPaymentsByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error)
}

// InvoiceWriter defines write operations for invoices and their payments.
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// SavePayment appends a payment to an invoice. Payments are never edited or removed.
	SavePayment(ctx context.Context, payment domain.InvoicePayment) error

	// UpdateInvoiceReceived writes a freshly recomputed received total and paid flag.
	UpdateInvoiceReceived(ctx context.Context, invoiceID string, amountReceived decimal.Decimal, isPaid bool, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
