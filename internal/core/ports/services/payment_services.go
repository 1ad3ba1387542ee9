package services

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// PaymentSvcFacade defines lump-sum payments to outsourced groups.
type PaymentSvcFacade interface {
	// AllocateGroupPayment spends the amount on the group's unpaid
	// attendance, oldest first. Records are marked paid while the running
	// total stays within the amount; the first record that does not fit
	// absorbs any remainder. A ledger transaction against the funding
	// account is created in the same database transaction.
	AllocateGroupPayment(ctx context.Context, groupID string, req dto.AllocateGroupPaymentRequest, creatorUserID string) (*dto.GroupPaymentResult, error)
	// PayAllGroup settles every unpaid record of the group in full.
	PayAllGroup(ctx context.Context, groupID string, creatorUserID string) (*dto.GroupPaymentResult, error)
	// ListGroupPayments retrieves past payments to a group, newest first.
	ListGroupPayments(ctx context.Context, groupID string) ([]domain.GroupPayment, error)
	// ListPayables summarises the outstanding wages per group.
	ListPayables(ctx context.Context) ([]dto.GroupPayableResponse, error)
}
