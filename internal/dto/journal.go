package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// JournalEntryRequest is one debit-xor-credit line of a voucher.
type JournalEntryRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalRequest defines the data needed to post a voucher.
type CreateJournalRequest struct {
	Date        time.Time             `json:"date" binding:"required"`
	Description string                `json:"description" binding:"required"`
	VoucherType domain.VoucherType    `json:"voucherType" binding:"required,oneof=JOURNAL PAYMENT RECEIPT CONTRA"`
	ProjectID   *string               `json:"projectID"`
	Entries     []JournalEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// JournalEntryResponse is one persisted voucher line.
type JournalEntryResponse struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalResponse defines the data returned for a voucher.
type JournalResponse struct {
	JournalID   string                 `json:"journalID"`
	JournalDate time.Time              `json:"journalDate"`
	Description string                 `json:"description"`
	VoucherType domain.VoucherType     `json:"voucherType"`
	ProjectID   *string                `json:"projectID"`
	Amount      decimal.Decimal        `json:"amount"`
	Entries     []JournalEntryResponse `json:"entries,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	CreatedBy   string                 `json:"createdBy"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	entries := make([]JournalEntryResponse, len(j.Entries))
	for i, e := range j.Entries {
		entries[i] = JournalEntryResponse{
			EntryID:   e.EntryID,
			AccountID: e.AccountID,
			Debit:     e.Debit,
			Credit:    e.Credit,
		}
	}
	return JournalResponse{
		JournalID:   j.JournalID,
		JournalDate: j.JournalDate,
		Description: j.Description,
		VoucherType: j.VoucherType,
		ProjectID:   j.ProjectID,
		Amount:      j.Amount,
		Entries:     entries,
		CreatedAt:   j.CreatedAt,
		CreatedBy:   j.CreatedBy,
	}
}

// ToJournalResponses converts a slice of journals (entries not populated).
func ToJournalResponses(journals []domain.Journal) []JournalResponse {
	res := make([]JournalResponse, len(journals))
	for i := range journals {
		res[i] = ToJournalResponse(&journals[i])
	}
	return res
}
