package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
	"github.com/praveentp099/uforce-accounting/internal/utils/accounting"
)

// systemActor marks writes performed by the system rather than a user,
// e.g. derived-field refreshes.
const systemActor = "system"

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     decimal.Zero,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, accountType)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	return account, nil
}

// RecomputeBalance rebuilds the cached balance from the account's
// transaction totals. The cached value is only trusted immediately after
// this runs; calling it twice without an intervening transaction change
// yields the same balance.
func (s *accountService) RecomputeBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	debitTotal, creditTotal, err := s.accountRepo.SumTransactionTotals(ctx, accountID)
	if err != nil {
		logger.Error("Failed to sum transaction totals", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	balance := accounting.BalanceFromTotals(account.AccountType, debitTotal, creditTotal)

	if err := s.accountRepo.UpdateAccountBalance(ctx, accountID, balance, systemActor, time.Now()); err != nil {
		logger.Error("Failed to persist recomputed balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	logger.Debug("Account balance recomputed", slog.String("account_id", accountID), slog.String("balance", balance.String()))
	return balance, nil
}
