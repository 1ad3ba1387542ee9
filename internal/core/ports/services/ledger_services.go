package services

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// LedgerSvcFacade defines operations on individual ledger transactions.
// Every mutation refreshes the owning account's cached balance.
type LedgerSvcFacade interface {
	// CreateTransaction records a debit or credit against an account.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	// GetTransactionByID retrieves a transaction by its ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// UpdateTransaction edits a transaction's mutable fields.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error)
	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
	// ListTransactionsByAccount retrieves transactions for one account, newest first.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error)
	// ListRecentTransactions retrieves the most recent transactions across accounts.
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}
