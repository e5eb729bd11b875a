package analysis

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	t.Run("rubles carry the ruble sign", func(t *testing.T) {
		got := RUB(decimal.RequireFromString("-1065.90")).String()
		if !strings.Contains(got, "₽") {
			t.Errorf("got %q, want the ruble grapheme", got)
		}
		if !strings.Contains(got, "-") {
			t.Errorf("got %q, want a negative amount", got)
		}
	})

	t.Run("signed string", func(t *testing.T) {
		if got := RUB(decimal.Zero).SignedString(); got != "-" {
			t.Errorf("got %q, want %q for zero", got, "-")
		}
		if got := RUB(decimal.RequireFromString("10")).SignedString(); !strings.HasPrefix(got, "+") {
			t.Errorf("got %q, want a + prefix for a positive amount", got)
		}
		if got := RUB(decimal.RequireFromString("-10")).SignedString(); strings.HasPrefix(got, "+") {
			t.Errorf("got %q, want no + prefix for a negative amount", got)
		}
	})
}
