package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset      AccountType = "ASSET"
	Liability  AccountType = "LIABILITY"
	Equity     AccountType = "EQUITY"
	Income     AccountType = "INCOME"
	Expense    AccountType = "EXPENSE"
	Receivable AccountType = "RECEIVABLE" // money owed to the company, e.g. unpaid invoices
)

// Account represents a financial account within the ledger.
// Balance is a cached aggregate: it is a pure function of the account's
// transactions and is only trusted immediately after a recompute.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"` // derived, never the source of truth
	IsActive    bool            `json:"isActive"`
	AuditFields
}
