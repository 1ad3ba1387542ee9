package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for group wage payments.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SaveGroupPayment persists the funding ledger transaction, the payment
// audit row, flips the covered attendance records to paid and refreshes
// the funding account's balance, all in one database transaction. A
// failure at any step rolls every write back.
func (r *PgxPaymentRepository) SaveGroupPayment(ctx context.Context, payment domain.GroupPayment, txn domain.Transaction, attendanceIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (transaction_id, account_id, date, amount, transaction_type, description, project_id, journal_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`, txn.TransactionID, txn.AccountID, txn.Date, txn.Amount, txn.TransactionType, txn.Description, txn.ProjectID, txn.JournalID, txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert funding transaction %s: %w", txn.TransactionID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO group_payments (payment_id, group_id, amount, payment_date, transaction_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, payment.PaymentID, payment.GroupID, payment.Amount, payment.PaymentDate, payment.TransactionID, payment.CreatedAt, payment.CreatedBy, payment.LastUpdatedAt, payment.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert group payment %s: %w", payment.PaymentID, err)
	}

	if len(attendanceIDs) > 0 {
		_, err = tx.Exec(ctx, `
			UPDATE worker_attendances
			SET is_paid = TRUE, last_updated_at = $2, last_updated_by = $3
			WHERE attendance_id = ANY($1);
		`, attendanceIDs, payment.LastUpdatedAt, payment.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to mark attendance records paid: %w", err)
		}
	}

	if err := refreshAccountBalanceTx(ctx, tx, txn.AccountID, payment.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentRepository) ListGroupPayments(ctx context.Context, groupID string) ([]domain.GroupPayment, error) {
	query := `
		SELECT payment_id, group_id, amount, payment_date, transaction_id, created_at, created_by, last_updated_at, last_updated_by
		FROM group_payments
		WHERE group_id = $1
		ORDER BY payment_date DESC, created_at DESC;
	`
	rows, err := r.db(ctx).Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for group %s: %w", groupID, err)
	}
	defer rows.Close()

	return collectGroupPayments(rows)
}

func collectGroupPayments(rows pgx.Rows) ([]domain.GroupPayment, error) {
	payments := []domain.GroupPayment{}
	for rows.Next() {
		var p domain.GroupPayment
		err := rows.Scan(&p.PaymentID, &p.GroupID, &p.Amount, &p.PaymentDate, &p.TransactionID, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group payment row: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
