package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// AllocateGroupPaymentRequest pays a lump sum to an outsourced group.
// The amount is spread over the group's unpaid attendance, oldest first.
type AllocateGroupPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
}

// GroupPaymentResult reports how an allocation landed.
type GroupPaymentResult struct {
	PaymentID          string          `json:"paymentID"`
	TransactionCreated string          `json:"transactionCreated"`
	RecordsMarkedPaid  int             `json:"recordsMarkedPaid"`
	AmountCovered      decimal.Decimal `json:"amountCovered"`
	Remainder          decimal.Decimal `json:"remainder"`
}

// GroupPaymentResponse defines the data returned for a stored group payment.
type GroupPaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	GroupID       string          `json:"groupID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	TransactionID string          `json:"transactionID"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToGroupPaymentResponse converts a domain.GroupPayment.
func ToGroupPaymentResponse(p *domain.GroupPayment) GroupPaymentResponse {
	return GroupPaymentResponse{
		PaymentID:     p.PaymentID,
		GroupID:       p.GroupID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

// ToGroupPaymentResponses converts a slice of group payments.
func ToGroupPaymentResponses(payments []domain.GroupPayment) []GroupPaymentResponse {
	res := make([]GroupPaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToGroupPaymentResponse(&payments[i])
	}
	return res
}

// GroupPayableResponse summarises what a group is currently owed.
type GroupPayableResponse struct {
	GroupID       string          `json:"groupID"`
	GroupName     string          `json:"groupName"`
	UnpaidRecords int             `json:"unpaidRecords"`
	TotalOwed     decimal.Decimal `json:"totalOwed"`
}
