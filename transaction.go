package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/Dragon-Slayer-Bild/transaction-analysis/date"
)

// HomeCurrency is the reporting currency; foreign amounts are normalized to it.
const HomeCurrency = "RUB"

func init() {
	// The bank export and the original reports carry amounts as plain JSON
	// numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one row of the bank operations export. The JSON field names
// are the export's own column headers, so a serialized record round-trips
// with the source data.
//
// Amount fields are pointers: a nil amount means the column was empty or not
// numeric, and the record is skipped by ranking and aggregation rather than
// failing the whole batch. Cashback columns are opaque and passed through
// unmodified.
type Transaction struct {
	Date            string           `json:"Дата операции"`
	Status          string           `json:"Статус"`
	Card            string           `json:"Номер карты"`
	Amount          *decimal.Decimal `json:"Сумма операции"`
	PaymentAmount   *decimal.Decimal `json:"Сумма платежа"`
	Cashback        string           `json:"Кэшбэк"`
	Bonuses         string           `json:"Бонусы (включая кэшбэк)"`
	Category        string           `json:"Категория"`
	PaymentCurrency string           `json:"Валюта платежа"`
	Description     string           `json:"Описание"`
}

// Day parses the operation timestamp and returns its day.
func (t Transaction) Day() (date.Date, error) {
	return date.ParseOperationTime(t.Date)
}

// LastDigits returns the card number with the masking prefix character
// stripped. It reports false for records without a usable card identifier:
// an empty or placeholder value, or one whose remainder is not all digits
// after unmasking.
func (t Transaction) LastDigits() (string, bool) {
	if len(t.Card) < 2 {
		return "", false
	}
	digits := t.Card[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return digits, true
}

// Converter converts an amount in a foreign currency into its home currency
// (RUB) value. Implementations report lookup failures as errors; callers skip
// the offending record and continue.
type Converter interface {
	Convert(currency string, amount decimal.Decimal) (decimal.Decimal, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(currency string, amount decimal.Decimal) (decimal.Decimal, error)

func (f ConverterFunc) Convert(currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	return f(currency, amount)
}

// toHome normalizes a signed amount in the given currency to the home
// currency: identity for RUB, otherwise the absolute value is converted and
// the original sign re-applied.
func toHome(conv Converter, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	if currency == HomeCurrency {
		return amount, nil
	}
	converted, err := conv.Convert(currency, amount.Abs())
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.IsNegative() {
		converted = converted.Neg()
	}
	return converted, nil
}
