package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to raise an invoice.
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	ProjectID     *string         `json:"projectID"`
	ClientName    string          `json:"clientName" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
}

// UpdateInvoiceRequest defines the data allowed for editing an invoice.
type UpdateInvoiceRequest struct {
	ClientName  *string          `json:"clientName"`
	Date        *time.Time       `json:"date"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string          `json:"invoiceID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	ProjectID      *string         `json:"projectID"`
	ClientName     string          `json:"clientName"`
	Date           time.Time       `json:"date"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	BalanceDue     decimal.Decimal `json:"balanceDue"`
	IsPaid         bool            `json:"isPaid"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		InvoiceNumber:  inv.InvoiceNumber,
		ProjectID:      inv.ProjectID,
		ClientName:     inv.ClientName,
		Date:           inv.Date,
		TotalAmount:    inv.TotalAmount,
		AmountReceived: inv.AmountReceived,
		BalanceDue:     inv.BalanceDue(),
		IsPaid:         inv.IsPaid,
		CreatedAt:      inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// RecordInvoicePaymentRequest records a client payment against an invoice.
type RecordInvoicePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
	Notes  string          `json:"notes"`
}

// InvoicePaymentResponse defines the data returned for an invoice payment.
type InvoicePaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	InvoiceID string          `json:"invoiceID"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToInvoicePaymentResponse converts a domain.InvoicePayment.
func ToInvoicePaymentResponse(p *domain.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID: p.PaymentID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Date:      p.Date,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// ToInvoicePaymentResponses converts a slice of invoice payments.
func ToInvoicePaymentResponses(payments []domain.InvoicePayment) []InvoicePaymentResponse {
	res := make([]InvoicePaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToInvoicePaymentResponse(&payments[i])
	}
	return res
}
