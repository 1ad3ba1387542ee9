package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside one database transaction.
// Repository calls made with the ctx passed to fn join that transaction,
// so a mutation and the aggregate recomputes it triggers commit together
// or not at all.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
