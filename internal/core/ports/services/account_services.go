package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// AccountSvcFacade defines operations on chart-of-accounts entries.
type AccountSvcFacade interface {
	// CreateAccount opens a new account with a zero balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	// GetAccountByID retrieves an account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// ListAccounts retrieves accounts, optionally filtered by type.
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)
	// UpdateAccount applies the provided fields to an account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)
	// RecomputeBalance rebuilds the account's cached balance from its
	// transactions and persists the result.
	RecomputeBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}
