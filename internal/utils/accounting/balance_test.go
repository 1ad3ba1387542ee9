package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/utils/accounting"
)

func TestBalanceFromTotals(t *testing.T) {
	debit := decimal.NewFromInt(500)
	credit := decimal.NewFromInt(200)

	tests := []struct {
		accountType domain.AccountType
		want        int64
	}{
		{domain.Asset, 300},
		{domain.Expense, 300},
		{domain.Liability, -300},
		{domain.Equity, -300},
		{domain.Income, -300},
		{domain.Receivable, -300},
	}
	for _, tc := range tests {
		t.Run(string(tc.accountType), func(t *testing.T) {
			got := accounting.BalanceFromTotals(tc.accountType, debit, credit)
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "got %s", got)
		})
	}
}

func entry(accountID string, debit, credit int64) domain.JournalEntry {
	return domain.JournalEntry{
		AccountID: accountID,
		Debit:     decimal.NewFromInt(debit),
		Credit:    decimal.NewFromInt(credit),
	}
}

func TestValidateEntriesBalanced(t *testing.T) {
	total, err := accounting.ValidateEntries([]domain.JournalEntry{
		entry("a", 100, 0),
		entry("b", 0, 100),
	})

	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(100)))
}

func TestValidateEntriesUnbalanced(t *testing.T) {
	_, err := accounting.ValidateEntries([]domain.JournalEntry{
		entry("a", 100, 0),
		entry("b", 0, 50),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEntriesZeroSum(t *testing.T) {
	_, err := accounting.ValidateEntries([]domain.JournalEntry{
		entry("a", 0, 0),
		entry("b", 0, 0),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEntryBothSidesSet(t *testing.T) {
	err := accounting.ValidateEntry(entry("a", 100, 100))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEntryNeitherSideSet(t *testing.T) {
	err := accounting.ValidateEntry(entry("a", 0, 0))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEntriesMultiLine(t *testing.T) {
	// A payment voucher splitting one credit across two debits.
	total, err := accounting.ValidateEntries([]domain.JournalEntry{
		entry("wages", 700, 0),
		entry("materials", 300, 0),
		entry("bank", 0, 1000),
	})

	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1000)))
}
