package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
	"github.com/praveentp099/uforce-accounting/internal/utils/accounting"
)

type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new journal (voucher) service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal validates the voucher's entries, materialises one ledger
// transaction per entry and persists everything atomically. Validation
// failure blocks the save; nothing is written.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	journalID := uuid.NewString()

	entries := make([]domain.JournalEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.JournalEntry{
			EntryID:   uuid.NewString(),
			JournalID: journalID,
			AccountID: e.AccountID,
			Debit:     e.Debit,
			Credit:    e.Credit,
		}
	}

	amount, err := accounting.ValidateEntries(entries)
	if err != nil {
		logger.Warn("Journal rejected by validation", slog.String("error", err.Error()))
		return nil, err
	}

	// Every referenced account must exist before posting.
	for _, e := range entries {
		if _, err := s.accountRepo.FindAccountByID(ctx, e.AccountID); err != nil {
			return nil, err
		}
	}

	journal := domain.Journal{
		JournalID:   journalID,
		JournalDate: req.Date,
		Description: req.Description,
		VoucherType: req.VoucherType,
		ProjectID:   req.ProjectID,
		Amount:      amount,
		Entries:     entries,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	transactions := make([]domain.Transaction, len(entries))
	for i, e := range entries {
		txnType := domain.Debit
		txnAmount := e.Debit
		if e.Debit.IsZero() {
			txnType = domain.Credit
			txnAmount = e.Credit
		}
		jid := journalID
		transactions[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			AccountID:       e.AccountID,
			Date:            req.Date,
			Amount:          txnAmount,
			TransactionType: txnType,
			Description:     req.Description,
			ProjectID:       req.ProjectID,
			JournalID:       &jid,
			AuditFields:     journal.AuditFields,
		}
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, transactions); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, err
	}

	logger.Info("Journal created", slog.String("journal_id", journalID), slog.String("amount", amount.String()), slog.Int("entries", len(entries)))
	return &journal, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	entries, err := s.journalRepo.FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Entries = entries

	return journal, nil
}

func (s *journalService) ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.journalRepo.ListJournals(ctx, limit, offset)
}

// ValidateEntries checks voucher lines without persisting anything, so the
// client can verify a draft before posting.
func (s *journalService) ValidateEntries(ctx context.Context, reqEntries []dto.JournalEntryRequest) error {
	entries := make([]domain.JournalEntry, len(reqEntries))
	for i, e := range reqEntries {
		entries[i] = domain.JournalEntry{
			AccountID: e.AccountID,
			Debit:     e.Debit,
			Credit:    e.Credit,
		}
	}
	_, err := accounting.ValidateEntries(entries)
	return err
}
