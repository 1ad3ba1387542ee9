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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, journal_date, description, voucher_type, project_id, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var j domain.Journal
	err := row.Scan(
		&j.JournalID,
		&j.JournalDate,
		&j.Description,
		&j.VoucherType,
		&j.ProjectID,
		&j.Amount,
		&j.CreatedAt,
		&j.CreatedBy,
		&j.LastUpdatedAt,
		&j.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// SaveJournal persists the journal, its entries and the materialised
// ledger transactions in one database transaction, then refreshes every
// touched account's cached balance before committing. All writes land
// together or not at all.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO journals (journal_id, journal_date, description, voucher_type, project_id, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		journal.JournalID,
		journal.JournalDate,
		journal.Description,
		journal.VoucherType,
		journal.ProjectID,
		journal.Amount,
		journal.CreatedAt,
		journal.CreatedBy,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	for _, e := range journal.Entries {
		batch.Queue(`
			INSERT INTO journal_entries (entry_id, journal_id, account_id, debit, credit)
			VALUES ($1, $2, $3, $4, $5);
		`, e.EntryID, e.JournalID, e.AccountID, e.Debit, e.Credit)
	}
	for _, t := range transactions {
		batch.Queue(`
			INSERT INTO transactions (transaction_id, account_id, date, amount, transaction_type, description, project_id, journal_id, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`, t.TransactionID, t.AccountID, t.Date, t.Amount, t.TransactionType, t.Description, t.ProjectID, t.JournalID, t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert journal rows for %s: %w", journal.JournalID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close journal insert batch: %w", err)
	}

	touched := map[string]struct{}{}
	for _, t := range transactions {
		touched[t.AccountID] = struct{}{}
	}
	for accountID := range touched {
		if err := refreshAccountBalanceTx(ctx, tx, accountID, journal.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// refreshAccountBalanceTx rebuilds one account's cached balance inside an
// open transaction, so the balance commits atomically with the ledger
// rows that changed it.
func refreshAccountBalanceTx(ctx context.Context, tx pgx.Tx, accountID string, updatedAt time.Time) error {
	var accountType domain.AccountType
	err := tx.QueryRow(ctx, `SELECT account_type FROM accounts WHERE account_id = $1;`, accountID).Scan(&accountType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
		}
		return fmt.Errorf("failed to load account %s for balance refresh: %w", accountID, err)
	}

	var debitTotal, creditTotal decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'DEBIT'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'CREDIT'), 0)
		FROM transactions
		WHERE account_id = $1;
	`, accountID).Scan(&debitTotal, &creditTotal)
	if err != nil {
		return fmt.Errorf("failed to sum transactions for account %s: %w", accountID, err)
	}

	balance := creditTotal.Sub(debitTotal)
	if accountType == domain.Asset || accountType == domain.Expense {
		balance = debitTotal.Sub(creditTotal)
	}

	_, err = tx.Exec(ctx, `
		UPDATE accounts SET balance = $2, last_updated_at = $3, last_updated_by = 'system' WHERE account_id = $1;
	`, accountID, balance, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to refresh balance for account %s: %w", accountID, err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`

	j, err := scanJournal(r.db(ctx).QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal %s not found", journalID))
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	return j, nil
}

func (r *PgxJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, journal_id, account_id, debit, credit
		FROM journal_entries
		WHERE journal_id = $1
		ORDER BY entry_id;
	`
	rows, err := r.db(ctx).Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(&e.EntryID, &e.JournalID, &e.AccountID, &e.Debit, &e.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals
		ORDER BY journal_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, *j)
	}
	return journals, rows.Err()
}
