package analysis

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// amt returns a decimal amount by value, for fixture literals.
func amt(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// rubAt returns a converter that prices any foreign unit at the given ruble
// rate, multiplying by the amount.
func rubAt(rate string) ConverterFunc {
	r := decimal.RequireFromString(rate)
	return func(currency string, amount decimal.Decimal) (decimal.Decimal, error) {
		return amount.Mul(r), nil
	}
}

// noConversion returns a converter that fails every lookup.
func noConversion() ConverterFunc {
	return func(currency string, amount decimal.Decimal) (decimal.Decimal, error) {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %s", ErrLookupFailed, currency)
	}
}
