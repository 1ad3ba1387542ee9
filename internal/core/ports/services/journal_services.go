package services

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// JournalSvcFacade defines operations on multi-line vouchers.
type JournalSvcFacade interface {
	// CreateJournal validates and posts a balanced voucher, materialising
	// one ledger transaction per entry.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)
	// GetJournalByID retrieves a voucher with its entries.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	// ListJournals retrieves vouchers, newest first.
	ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, error)
	// ValidateEntries checks a set of lines without persisting anything.
	ValidateEntries(ctx context.Context, entries []dto.JournalEntryRequest) error
}
