package analysis

import (
	"encoding/json"
	"time"

	"github.com/Dragon-Slayer-Bild/transaction-analysis/date"
)

// Greeting returns the time-of-day greeting shown at the top of the dashboard.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 6:
		return "Доброй ночи!"
	case h < 12:
		return "Доброе утро!"
	case h < 18:
		return "Добрый день!"
	default:
		return "Добрый вечер!"
	}
}

// FilterMonthToDate keeps the transactions dated between the first day of the
// filter date's month and the filter date, both inclusive. The filter date is
// in the bank export format ("31.01.2023", a trailing time part is accepted).
//
// A malformed filter date voids the whole selection; a row with a malformed
// operation date is skipped.
func FilterMonthToDate(transactions []Transaction, filterDate string) []Transaction {
	to, err := date.ParseDay(filterDate)
	if err != nil {
		Log().Error().Str("filterDate", filterDate).Err(err).Msg("bad dashboard filter date")
		return nil
	}
	window := date.MonthToDate(to)

	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		day, err := date.ParseDay(t.Date)
		if err != nil {
			Log().Info().Str("date", t.Date).Msg("bad operation date, transaction skipped")
			continue
		}
		if window.Contains(day) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// CurrencyRate is one tracked currency's quote against the ruble.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is one tracked ticker's latest price.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// RateQuoter fetches ruble quotes for the given currency codes. Codes whose
// quote cannot be fetched are omitted, not errors.
type RateQuoter interface {
	QuotesRUB(currencies []string) []CurrencyRate
}

// StockQuoter fetches latest prices for the given tickers. Tickers whose
// price cannot be fetched are omitted, not errors.
type StockQuoter interface {
	Prices(tickers []string) []StockPrice
}

// Dashboard is the main page payload: a greeting, the card summaries and top
// transactions for the month-to-date window, and the quotes the user tracks.
type Dashboard struct {
	Greeting        string
	Cards           []CardSummary
	TopTransactions []RankedTransaction
	CurrencyRates   []CurrencyRate
	StockPrices     []StockPrice
}

// MarshalJSON keeps the payload's historical field order.
func (d Dashboard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("greeting", d.Greeting)
	w.Append("cards", d.Cards)
	w.Append("top_transactions", d.TopTransactions)
	w.Append("currency_rates", d.CurrencyRates)
	w.Append("stock_prices", d.StockPrices)
	return w.MarshalJSON()
}

var _ json.Marshaler = Dashboard{}

// BuildDashboard assembles the main page from the ledger and the user
// settings. filterDate selects the month-to-date window; now drives the
// greeting (nil means time.Now). Lookup failures degrade to partially filled
// sections, never to an error.
func BuildDashboard(transactions []Transaction, filterDate string, settings Settings,
	conv Converter, rates RateQuoter, stocks StockQuoter, now func() time.Time) Dashboard {

	if now == nil {
		now = time.Now
	}
	selected := FilterMonthToDate(transactions, filterDate)

	return Dashboard{
		Greeting:        Greeting(now()),
		Cards:           CardSummaries(selected, conv),
		TopTransactions: TopTransactions(selected, DefaultTopN, conv),
		CurrencyRates:   rates.QuotesRUB(settings.Currencies),
		StockPrices:     stocks.Prices(settings.Stocks),
	}
}
