// Package renderer renders report payloads to markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
)

// Dashboard renders the full main page payload.
func Dashboard(d analysis.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Greeting)
	fmt.Fprintf(&b, "## Карты\n\n%s\n", Cards(d.Cards))
	fmt.Fprintf(&b, "## Топ транзакций\n\n%s\n", TopTransactions(d.TopTransactions))
	fmt.Fprintf(&b, "## Курсы валют\n\n%s\n", Rates(d.CurrencyRates))
	fmt.Fprintf(&b, "## Акции\n\n%s", Stocks(d.StockPrices))
	return b.String()
}

// Cards renders the per-card expenditure summaries.
func Cards(cards []analysis.CardSummary) string {
	if len(cards) == 0 {
		return "нет операций по картам\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Карта | Потрачено | Кэшбэк |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, c := range cards {
		fmt.Fprintf(&b, "| *%s | %s | %s |\n",
			c.LastDigits,
			analysis.RUB(c.TotalSpent),
			analysis.RUB(c.Cashback),
		)
	}
	return b.String()
}

// TopTransactions renders the ranked transaction list.
func TopTransactions(top []analysis.RankedTransaction) string {
	if len(top) == 0 {
		return "нет транзакций\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Дата | Сумма | Категория | Описание |")
	fmt.Fprintln(&b, "|:---|---:|:---|:---|")
	for _, t := range top {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			t.Date, analysis.RUB(t.Amount).SignedString(), t.Category, t.Description)
	}
	return b.String()
}

// Rates renders the tracked currency quotes against the ruble.
func Rates(rates []analysis.CurrencyRate) string {
	if len(rates) == 0 {
		return "нет курсов\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Валюта | Курс |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, r := range rates {
		fmt.Fprintf(&b, "| %s | %.4f |\n", r.Currency, r.Rate)
	}
	return b.String()
}

// Stocks renders the tracked stock prices.
func Stocks(stocks []analysis.StockPrice) string {
	if len(stocks) == 0 {
		return "нет акций\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Акция | Цена |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, s := range stocks {
		fmt.Fprintf(&b, "| %s | %.2f |\n", s.Stock, s.Price)
	}
	return b.String()
}

// Spending renders a category spending report.
func Spending(rows []analysis.CategorySpending) string {
	if len(rows) == 0 {
		return "нет трат за период\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Категория | Сумма за 90 дней |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r.Category, analysis.RUB(r.Total))
	}
	return b.String()
}

// Transactions renders raw ledger records, e.g. search results.
func Transactions(transactions []analysis.Transaction) string {
	if len(transactions) == 0 {
		return "ничего не найдено\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Дата | Статус | Карта | Сумма | Категория | Описание |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|:---|")
	for _, t := range transactions {
		amount := "-"
		if t.Amount != nil {
			amount = analysis.RUB(*t.Amount).SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			t.Date, t.Status, t.Card, amount, t.Category, t.Description)
	}
	return b.String()
}
