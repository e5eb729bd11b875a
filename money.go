package analysis

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money couples an amount with its currency for display purposes. Reports
// keep raw decimals; Money only exists to format them in the terminal.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps an amount and a currency code.
func M(value decimal.Decimal, currency string) Money { return Money{value: value, cur: currency} }

// RUB wraps an amount in the home currency.
func RUB(value decimal.Decimal) Money { return M(value, HomeCurrency) }

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with its currency symbol and grouping, e.g.
// "-1 065.90 ₽".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// SignedString is like String but prefixes positive amounts with "+" and
// renders zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
