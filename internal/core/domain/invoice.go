package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice bills a client for work done. AmountReceived is a cached
// aggregate over the invoice's payments; BalanceDue and IsPaid derive
// from it. Payments use a direct cumulative-sum model: any payment amount
// is accepted and reduces the balance due, with no allocation ordering.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	InvoiceNumber  string          `json:"invoiceNumber"`
	ProjectID      *string         `json:"projectID"` // Nullable FK -> Project
	ClientName     string          `json:"clientName"`
	Date           time.Time       `json:"date"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	AmountReceived decimal.Decimal `json:"amountReceived"` // derived
	IsPaid         bool            `json:"isPaid"`         // derived: balance due <= 0
	AuditFields
}

// BalanceDue is the outstanding amount on the invoice.
func (i Invoice) BalanceDue() decimal.Decimal {
	return i.TotalAmount.Sub(i.AmountReceived)
}

// InvoicePayment is an append-only payment against an invoice.
type InvoicePayment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (UUID)
	InvoiceID string          `json:"invoiceID"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
	AuditFields
}

// GroupPayment records one lump payment made to an outsourced group.
type GroupPayment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	GroupID       string          `json:"groupID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	TransactionID string          `json:"transactionID"` // ledger transaction funding this payment
	AuditFields
}
