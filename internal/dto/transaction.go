package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a ledger transaction.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	Date            time.Time              `json:"date" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	Description     string                 `json:"description" binding:"required"`
	ProjectID       *string                `json:"projectID"`
}

// UpdateTransactionRequest defines the data allowed for editing a transaction.
type UpdateTransactionRequest struct {
	Date            *time.Time              `json:"date"`
	Amount          *decimal.Decimal        `json:"amount"`
	TransactionType *domain.TransactionType `json:"transactionType" binding:"omitempty,oneof=DEBIT CREDIT"`
	Description     *string                 `json:"description"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	AccountID       string                 `json:"accountID"`
	Date            time.Time              `json:"date"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Description     string                 `json:"description"`
	ProjectID       *string                `json:"projectID"`
	JournalID       *string                `json:"journalID"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Date:            txn.Date,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		Description:     txn.Description,
		ProjectID:       txn.ProjectID,
		JournalID:       txn.JournalID,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
