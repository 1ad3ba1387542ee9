package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType categorises a journal by purpose.
type VoucherType string

const (
	VoucherJournal VoucherType = "JOURNAL"
	VoucherPayment VoucherType = "PAYMENT"
	VoucherReceipt VoucherType = "RECEIPT"
	VoucherContra  VoucherType = "CONTRA"
)

// Journal represents a single, balanced financial event composed of
// debit/credit entry lines. A journal is valid only if the sum of debits
// equals the sum of credits across its entries, and that sum is nonzero.
type Journal struct {
	JournalID   string          `json:"journalID"` // Primary Key (UUID)
	JournalDate time.Time       `json:"journalDate"`
	Description string          `json:"description"`
	VoucherType VoucherType     `json:"voucherType"`
	ProjectID   *string         `json:"projectID"` // Nullable FK -> Project
	Amount      decimal.Decimal `json:"amount"`    // total debit side of the balanced journal
	Entries     []JournalEntry  `json:"entries,omitempty"`
	AuditFields
}

// JournalEntry is one line of a journal, referencing one account with a
// debit xor credit amount: exactly one side is nonzero, never both.
type JournalEntry struct {
	EntryID   string          `json:"entryID"` // Primary Key (UUID)
	JournalID string          `json:"journalID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}
