package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Column headers of the bank operations export.
const (
	colDate            = "Дата операции"
	colStatus          = "Статус"
	colCard            = "Номер карты"
	colAmount          = "Сумма операции"
	colPaymentAmount   = "Сумма платежа"
	colCashback        = "Кэшбэк"
	colBonuses         = "Бонусы (включая кэшбэк)"
	colCategory        = "Категория"
	colPaymentCurrency = "Валюта платежа"
	colDescription     = "Описание"
)

// ReadLedger reads the bank operations export (semicolon-separated CSV with
// the bank's column headers) into an ordered list of transactions. An absent
// file is not an error: it yields an empty ledger.
func ReadLedger(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		Log().Warn().Str("path", path).Msg("operations file not found, using an empty ledger")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open operations file: %w", err)
	}
	defer f.Close()
	return readLedger(f)
}

func readLedger(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1 // the export occasionally pads rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read operations header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	if _, ok := index[colDate]; !ok {
		return nil, fmt.Errorf("%w: operations header has no %q column", ErrInvalidInput, colDate)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var transactions []Transaction
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return transactions, fmt.Errorf("cannot read operations row: %w", err)
		}
		transactions = append(transactions, Transaction{
			Date:            field(row, colDate),
			Status:          field(row, colStatus),
			Card:            field(row, colCard),
			Amount:          parseAmount(field(row, colAmount)),
			PaymentAmount:   parseAmount(field(row, colPaymentAmount)),
			Cashback:        field(row, colCashback),
			Bonuses:         field(row, colBonuses),
			Category:        field(row, colCategory),
			PaymentCurrency: field(row, colPaymentCurrency),
			Description:     field(row, colDescription),
		})
	}
	return transactions, nil
}

// parseAmount parses a decimal amount from the export, tolerating the comma
// decimal separator and grouping spaces. A missing or non-numeric value is
// nil, not an error: downstream operations skip such records.
func parseAmount(s string) *decimal.Decimal {
	if s == "" || s == "nan" {
		return nil
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
