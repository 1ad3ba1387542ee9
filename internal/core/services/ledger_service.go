package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

type ledgerService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	txManager       portsrepo.TransactionManager
	recalc          *Recalculator
}

// NewLedgerService creates a new ledger transaction service.
func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, recalc *Recalculator) portssvc.LedgerSvcFacade {
	return &ledgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		txManager:       txManager,
		recalc:          recalc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	// The account must exist before we hang a movement off it.
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       req.AccountID,
		Date:            req.Date,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		ProjectID:       req.ProjectID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The row and the balance recompute it triggers commit together.
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindTransaction, txn.AccountID)
	})
	if err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, err
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("account_id", txn.AccountID))
	return &txn, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.JournalID != nil {
		return nil, fmt.Errorf("%w: transactions posted from a voucher cannot be edited directly", apperrors.ErrValidation)
	}

	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.TransactionType != nil {
		txn.TransactionType = *req.TransactionType
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = updaterUserID

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindTransaction, txn.AccountID)
	})
	if err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	return txn, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.JournalID != nil {
		return fmt.Errorf("%w: transactions posted from a voucher cannot be deleted directly", apperrors.ErrValidation)
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindTransaction, txn.AccountID)
	})
	if err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID), slog.String("account_id", txn.AccountID))
	return nil
}

func (s *ledgerService) ListTransactionsByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.transactionRepo.ListTransactionsByAccount(ctx, accountID, limit, offset)
}

func (s *ledgerService) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.transactionRepo.ListRecentTransactions(ctx, limit)
}
