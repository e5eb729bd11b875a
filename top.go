package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of entries a top-transactions report keeps when
// the caller does not ask for a specific count.
const DefaultTopN = 5

// RankedTransaction is one entry of the top-transactions report, with its
// amount normalized to the home currency.
type RankedTransaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// TopTransactions returns at most n transactions ranked by the absolute value
// of their operation amount, descending. Ties keep their original relative
// order.
//
// Records are normalized while walking the full sorted list: a record without
// a numeric payment amount or a payment currency is skipped, foreign amounts
// are converted to rubles (skipped when the lookup fails), and only then is
// the list cut to n. A skipped record never consumes one of the n slots.
func TopTransactions(transactions []Transaction, n int, conv Converter) []RankedTransaction {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]Transaction, len(transactions))
	copy(ranked, transactions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return sortAmount(ranked[i]).Cmp(sortAmount(ranked[j])) > 0
	})

	top := make([]RankedTransaction, 0, n)
	for _, t := range ranked {
		if len(top) == n {
			break
		}
		if t.PaymentAmount == nil {
			Log().Info().Str("date", t.Date).Msg("no numeric payment amount, transaction skipped")
			continue
		}
		if t.PaymentCurrency == "" {
			Log().Info().Str("date", t.Date).Msg("no payment currency, transaction skipped")
			continue
		}
		amount, err := toHome(conv, t.PaymentCurrency, *t.PaymentAmount)
		if err != nil {
			Log().Info().Str("date", t.Date).Str("currency", t.PaymentCurrency).
				Err(err).Msg("conversion failed, transaction skipped")
			continue
		}
		top = append(top, RankedTransaction{
			Date:        t.Date,
			Amount:      amount,
			Category:    t.Category,
			Description: t.Description,
		})
	}
	return top
}

// sortAmount is the ranking key: the absolute operation amount, zero when missing.
func sortAmount(t Transaction) decimal.Decimal {
	if t.Amount == nil {
		return decimal.Zero
	}
	return t.Amount.Abs()
}
