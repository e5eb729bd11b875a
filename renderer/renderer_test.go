package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
)

func TestCards(t *testing.T) {
	t.Run("table rows", func(t *testing.T) {
		got := Cards([]analysis.CardSummary{
			{LastDigits: "7197", TotalSpent: decimal.RequireFromString("-18381.9"), Cashback: decimal.RequireFromString("183.82")},
		})
		if !strings.Contains(got, "| Карта |") {
			t.Errorf("got %q, want a table header", got)
		}
		if !strings.Contains(got, "*7197") {
			t.Errorf("got %q, want the card number", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := Cards(nil); got != "нет операций по картам\n" {
			t.Errorf("got %q", got)
		}
	})
}

func TestTopTransactions(t *testing.T) {
	got := TopTransactions([]analysis.RankedTransaction{
		{Date: "21.12.2021 12:00:00", Amount: decimal.RequireFromString("-1065.9"), Category: "Разное", Description: "Перевод"},
	})
	for _, want := range []string{"| Дата |", "21.12.2021 12:00:00", "Разное", "Перевод"} {
		if !strings.Contains(got, want) {
			t.Errorf("got %q, want it to contain %q", got, want)
		}
	}

	if got := TopTransactions(nil); got != "нет транзакций\n" {
		t.Errorf("got %q", got)
	}
}

func TestRatesAndStocks(t *testing.T) {
	rates := Rates([]analysis.CurrencyRate{{Currency: "USD", Rate: 85.2512}})
	if !strings.Contains(rates, "| USD | 85.2512 |") {
		t.Errorf("got %q, want the USD row", rates)
	}
	stocks := Stocks([]analysis.StockPrice{{Stock: "AAPL", Price: 156.3}})
	if !strings.Contains(stocks, "| AAPL | 156.30 |") {
		t.Errorf("got %q, want the AAPL row", stocks)
	}
}

func TestDashboard(t *testing.T) {
	got := Dashboard(analysis.Dashboard{Greeting: "Добрый день!"})
	for _, want := range []string{"# Добрый день!", "## Карты", "## Топ транзакций", "## Курсы валют", "## Акции"} {
		if !strings.Contains(got, want) {
			t.Errorf("got %q, want it to contain %q", got, want)
		}
	}
}

func TestTransactions(t *testing.T) {
	amount := decimal.RequireFromString("-160.89")
	got := Transactions([]analysis.Transaction{
		{Date: "31.12.2021 16:44:00", Status: "OK", Card: "*7197", Amount: &amount, Category: "Супермаркеты", Description: "Колхоз"},
	})
	if !strings.Contains(got, "Колхоз") {
		t.Errorf("got %q, want the description", got)
	}

	if got := Transactions(nil); got != "ничего не найдено\n" {
		t.Errorf("got %q", got)
	}
}
