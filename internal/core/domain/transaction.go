package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a single ledger movement against one account.
// Every create, update or delete of a transaction must be followed by a
// synchronous balance recompute on the referenced account.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	AccountID       string          `json:"accountID"`     // FK -> Account (Not Null)
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"` // positive value
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"`
	ProjectID       *string         `json:"projectID"` // Nullable FK -> Project
	JournalID       *string         `json:"journalID"` // Nullable FK -> Journal, set when posted from a voucher
	AuditFields
}
