package services

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

// EntityKind identifies the kind of record whose mutation drives a
// derived-aggregate recompute.
type EntityKind string

const (
	KindTransaction    EntityKind = "transaction"
	KindAttendance     EntityKind = "attendance"
	KindExpense        EntityKind = "expense"
	KindTask           EntityKind = "task"
	KindInvoicePayment EntityKind = "invoice_payment"
)

// RecalcFunc recomputes one derived aggregate on the parent identified by
// parentID, e.g. an account balance from an account ID.
type RecalcFunc func(ctx context.Context, parentID string) error

// Recalculator is an explicit dispatch table from entity mutations to
// aggregate recompute callbacks. The mutating service fires it
// synchronously after each create, update or delete, so the parent's
// cached aggregate is fresh before the operation returns. Bulk mutations
// bypass per-row firing; their callers invoke the recompute once at the
// end instead.
//
// Registration happens once at wiring time, before any requests are
// served, so Fire reads the table without locking.
type Recalculator struct {
	rules map[EntityKind][]RecalcFunc
}

// NewRecalculator creates an empty dispatch table.
func NewRecalculator() *Recalculator {
	return &Recalculator{rules: make(map[EntityKind][]RecalcFunc)}
}

// Register appends a recompute callback for the given entity kind.
func (r *Recalculator) Register(kind EntityKind, fn RecalcFunc) {
	r.rules[kind] = append(r.rules[kind], fn)
}

// Fire runs every callback registered for the kind against parentID, in
// registration order. The first failure stops the chain and propagates,
// leaving the caller's surrounding transaction to roll back.
func (r *Recalculator) Fire(ctx context.Context, kind EntityKind, parentID string) error {
	fns := r.rules[kind]
	if len(fns) == 0 {
		middleware.GetLoggerFromCtx(ctx).Warn("No recompute rule registered", "kind", string(kind))
		return nil
	}
	for _, fn := range fns {
		if err := fn(ctx, parentID); err != nil {
			return err
		}
	}
	return nil
}
