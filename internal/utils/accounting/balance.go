package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// BalanceFromTotals derives an account balance from its debit and credit
// totals. Asset and expense accounts grow with debits; liability, equity,
// income and receivable accounts grow with credits.
func BalanceFromTotals(accountType domain.AccountType, debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debitTotal.Sub(creditTotal)
	default:
		return creditTotal.Sub(debitTotal)
	}
}

/// ValidateEntry checks a single journal entry line: exactly one of debit
// and credit must be nonzero, and neither may be negative.
func ValidateEntry(e domain.JournalEntry) error {
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return fmt.Errorf("%w: entry for account %s has a negative amount", apperrors.ErrValidation, e.AccountID)
	}
	debitSet := !e.Debit.IsZero()
	creditSet := !e.Credit.IsZero()
	if debitSet && creditSet {
		return fmt.Errorf("%w: entry for account %s has both debit and credit set", apperrors.ErrValidation, e.AccountID)
	}
	if !debitSet && !creditSet {
		return fmt.Errorf("%w: entry for account %s has neither debit nor credit set", apperrors.ErrValidation, e.AccountID)
	}
	return nil
}

// ValidateEntries checks a journal's entry lines as a whole: every line
// passes ValidateEntry, the debit and credit sides balance, and the common
// sum is nonzero. It returns the balanced debit total on success.
func ValidateEntries(entries []domain.JournalEntry) (decimal.Decimal, error) {
	debitSum := decimal.Zero
	creditSum := decimal.Zero

	for _, e := range entries {
		if err := ValidateEntry(e); err != nil {
			return decimal.Zero, err
		}
		debitSum = debitSum.Add(e.Debit)
		creditSum = creditSum.Add(e.Credit)
	}

	if !debitSum.Equal(creditSum) {
		return decimal.Zero, fmt.Errorf("%w: journal does not balance, debits %s vs credits %s",
			apperrors.ErrValidation, debitSum.String(), creditSum.String())
	}
	if debitSum.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: journal sums to zero", apperrors.ErrValidation)
	}
	return debitSum, nil
}
