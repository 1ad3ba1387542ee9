package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices and their payments.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, project_id, client_name, date, total_amount, amount_received, is_paid, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.InvoiceNumber,
		&inv.ProjectID,
		&inv.ClientName,
		&inv.Date,
		&inv.TotalAmount,
		&inv.AmountReceived,
		&inv.IsPaid,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_id, invoice_number, project_id, client_name, date, total_amount, amount_received, is_paid, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		invoice.InvoiceID,
		invoice.InvoiceNumber,
		invoice.ProjectID,
		invoice.ClientName,
		invoice.Date,
		invoice.TotalAmount,
		invoice.AmountReceived,
		invoice.IsPaid,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %q already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	inv, err := scanInvoice(r.db(ctx).QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	return inv, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *PgxInvoiceRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error) {
	query := `
		SELECT payment_id, invoice_id, amount, date, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM invoice_payments
		WHERE invoice_id = $1
		ORDER BY date, created_at;
	`
	rows, err := r.db(ctx).Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	payments := []domain.InvoicePayment{}
	for rows.Next() {
		var p domain.InvoicePayment
		err := rows.Scan(&p.PaymentID, &p.InvoiceID, &p.Amount, &p.Date, &p.Notes, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice payment row: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PgxInvoiceRepository) SumPaymentsByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM invoice_payments WHERE invoice_id = $1;
	`, invoiceID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for invoice %s: %w", invoiceID, err)
	}
	return total, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET client_name = $2, date = $3, total_amount = $4, last_updated_at = $5, last_updated_by = $6
		WHERE invoice_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		invoice.InvoiceID,
		invoice.ClientName,
		invoice.Date,
		invoice.TotalAmount,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoice.InvoiceID))
	}
	return nil
}

func (r *PgxInvoiceRepository) SavePayment(ctx context.Context, payment domain.InvoicePayment) error {
	query := `
		INSERT INTO invoice_payments (payment_id, invoice_id, amount, date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		payment.PaymentID,
		payment.InvoiceID,
		payment.Amount,
		payment.Date,
		payment.Notes,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceReceived(ctx context.Context, invoiceID string, amountReceived decimal.Decimal, isPaid bool, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET amount_received = $2, is_paid = $3, last_updated_at = $4
		WHERE invoice_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, invoiceID, amountReceived, isPaid, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update received amount for invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
	}
	return nil
}
