package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praveentp099/uforce-accounting/internal/core/services"
)

func TestRecalculator_FireRunsRegisteredCallbacks(t *testing.T) {
	r := services.NewRecalculator()

	var got []string
	r.Register(services.KindAttendance, func(ctx context.Context, parentID string) error {
		got = append(got, "cost:"+parentID)
		return nil
	})
	r.Register(services.KindAttendance, func(ctx context.Context, parentID string) error {
		got = append(got, "second:"+parentID)
		return nil
	})

	err := r.Fire(context.Background(), services.KindAttendance, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"cost:proj-1", "second:proj-1"}, got)
}

func TestRecalculator_FireWithoutRuleIsNoop(t *testing.T) {
	r := services.NewRecalculator()

	err := r.Fire(context.Background(), services.KindTask, "proj-1")
	assert.NoError(t, err)
}

func TestRecalculator_FireStopsOnFirstError(t *testing.T) {
	r := services.NewRecalculator()

	boom := errors.New("recompute failed")
	var secondRan bool
	r.Register(services.KindTransaction, func(ctx context.Context, parentID string) error {
		return boom
	})
	r.Register(services.KindTransaction, func(ctx context.Context, parentID string) error {
		secondRan = true
		return nil
	})

	err := r.Fire(context.Background(), services.KindTransaction, "acc-1")
	assert.ErrorIs(t, err, boom)
	assert.False(t, secondRan)
}

func TestRecalculator_KindsAreIndependent(t *testing.T) {
	r := services.NewRecalculator()

	var fired string
	r.Register(services.KindExpense, func(ctx context.Context, parentID string) error {
		fired = parentID
		return nil
	})

	require.NoError(t, r.Fire(context.Background(), services.KindInvoicePayment, "inv-1"))
	assert.Empty(t, fired)

	require.NoError(t, r.Fire(context.Background(), services.KindExpense, "proj-9"))
	assert.Equal(t, "proj-9", fired)
}
