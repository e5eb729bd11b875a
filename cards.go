package analysis

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CardSummary aggregates the expenditure charged to one card. TotalSpent is a
// negative (or zero) ruble sum; Cashback is a flat 1% estimate of the absolute
// spend, independent of the cashback column in the source data.
type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   decimal.Decimal `json:"cashback"`
}

// CardSummaries groups expenditure by card, in the order cards are first seen.
//
// Only records with a usable card identifier and a strictly negative numeric
// operation amount count: positive amounts (refunds, income) are excluded, not
// negated. Foreign amounts are converted to rubles; a failed conversion skips
// the record so one dead lookup cannot poison a card's running sum.
func CardSummaries(transactions []Transaction, conv Converter) []CardSummary {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, t := range transactions {
		card, ok := t.LastDigits()
		if !ok {
			continue
		}
		if t.Amount == nil || !t.Amount.IsNegative() {
			continue
		}
		amount := *t.Amount
		if t.PaymentCurrency != HomeCurrency {
			Log().Debug().Str("card", card).Str("currency", t.PaymentCurrency).
				Msg("converting card expenditure to rubles")
			converted, err := conv.Convert(t.PaymentCurrency, amount.Abs())
			if err != nil {
				Log().Info().Str("card", card).Str("currency", t.PaymentCurrency).
					Err(err).Msg("conversion failed, record skipped")
				continue
			}
			amount = converted.Neg()
		}
		if _, seen := sums[card]; !seen {
			order = append(order, card)
		}
		sums[card] = sums[card].Add(amount)
	}

	summaries := make([]CardSummary, 0, len(order))
	for _, card := range order {
		total := sums[card].Round(2)
		summaries = append(summaries, CardSummary{
			LastDigits: card,
			TotalSpent: total,
			Cashback:   total.Div(hundred).Round(2).Abs(),
		})
	}
	return summaries
}
