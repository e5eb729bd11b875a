package analysis

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Dragon-Slayer-Bild/transaction-analysis/date"
)

// spendingWindowDays is the trailing window of a category spending report.
const spendingWindowDays = 90

// CategorySpending is the summed ledger-currency spend of one category over
// the trailing report window.
type CategorySpending struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SpendingByCategory sums the operation amounts of the given category over the
// 90 days up to asOf, both ends inclusive. asOf must be an ISO date
// (YYYY-MM-DD); empty means today.
//
// The category match is exact and case-sensitive. Amounts are summed in the
// ledger currency with no conversion. The result holds at most one row and is
// empty when nothing matches. A malformed asOf, or any matching-period row
// whose operation date cannot be parsed, fails the whole call with an empty
// result.
func SpendingByCategory(transactions []Transaction, category string, asOf string) ([]CategorySpending, error) {
	to := date.Today()
	if asOf != "" {
		var err error
		to, err = date.Parse(asOf)
		if err != nil {
			Log().Error().Str("asOf", asOf).Err(err).Msg("spending report rejected")
			return nil, fmt.Errorf("%w: bad report date: %v", ErrInvalidInput, err)
		}
	}
	window := date.TrailingDays(to, spendingWindowDays)

	var total decimal.Decimal
	matched := false
	for _, t := range transactions {
		day, err := t.Day()
		if err != nil {
			// The source batch is expected to be uniformly formatted: one bad
			// date voids the report rather than silently under-counting.
			Log().Error().Str("date", t.Date).Err(err).Msg("spending report rejected")
			return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
		}
		if t.Category != category || !window.Contains(day) {
			continue
		}
		if t.Amount == nil {
			continue
		}
		total = total.Add(*t.Amount)
		matched = true
	}

	if !matched {
		return []CategorySpending{}, nil
	}
	Log().Info().Str("category", category).Stringer("from", window.From).Stringer("to", window.To).
		Msg("spending report built")
	return []CategorySpending{{Category: category, Total: total}}, nil
}
