package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves accounts, optionally filtered by type.
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)

	// FindFundingAccount returns the account automated payments draw from:
	// the first active ASSET account, falling back to the first INCOME
	// account. Returns apperrors.ErrNotFound when neither exists.
	FindFundingAccount(ctx context.Context) (*domain.Account, error)

	// SumTransactionTotals returns the debit and credit totals over all
	// transactions referencing the account.
	SumTransactionTotals(ctx context.Context, accountID string) (debitTotal, creditTotal decimal.Decimal, err error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an account's mutable fields (not the balance).
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance writes a freshly recomputed balance to the account row.
	UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
