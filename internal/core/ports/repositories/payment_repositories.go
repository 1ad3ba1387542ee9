package repositories

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// PaymentReader defines read operations for group wage payments.
type PaymentReader interface {
	// ListGroupPayments retrieves payments made to a group, newest first.
	ListGroupPayments(ctx context.Context, groupID string) ([]domain.GroupPayment, error)
}

// PaymentWriter defines write operations for group wage payments.
type PaymentWriter interface {
	// SaveGroupPayment persists the funding ledger transaction, the group
	// payment audit row, marks the covered attendance records paid and
	// refreshes the funding account's balance, all within one database
	// transaction. A failure at any step rolls the whole operation back.
	SaveGroupPayment(ctx context.Context, payment domain.GroupPayment, txn domain.Transaction, attendanceIDs []string) error
}

// PaymentRepositoryFacade combines all group payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
