package repositories

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// JournalReader defines read operations for journal (voucher) data.
type JournalReader interface {
	// FindJournalByID retrieves a journal header without its entries.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindEntriesByJournalID retrieves the entry lines of a journal.
	FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error)

	// ListJournals retrieves journal headers, newest first.
	ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveJournal persists a journal, its entries and the ledger
	// transactions materialised from those entries within one database
	// transaction, then refreshes the touched account balances.
	SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
