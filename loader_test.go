package analysis

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = "\uFEFFДата операции;Статус;Номер карты;Сумма операции;Сумма платежа;Кэшбэк;Бонусы (включая кэшбэк);Категория;Валюта платежа;Описание\n" +
	"31.12.2021 16:44:00;OK;*7197;-160,89;-160,89;;3;Супермаркеты;RUB;Колхоз\n" +
	"05.01.2018 12:00:00;OK;nan;-25,00;-25,00;;1;Фастфуд;RUB;Mouse Tail\n" +
	"21.12.2021 12:00:00;OK;*7197;-1 065,90;-1065,90;;21;Разное;RUB;Перевод\n"

func TestReadLedger(t *testing.T) {
	t.Run("sample export", func(t *testing.T) {
		got, err := readLedger(strings.NewReader(sampleCSV))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d transactions, want 3", len(got))
		}
		first := got[0]
		if first.Date != "31.12.2021 16:44:00" {
			t.Errorf("got date %q, want %q", first.Date, "31.12.2021 16:44:00")
		}
		if first.Card != "*7197" {
			t.Errorf("got card %q, want %q", first.Card, "*7197")
		}
		if first.Amount == nil || !first.Amount.Equal(*amt("-160.89")) {
			t.Errorf("got amount %v, want -160.89", first.Amount)
		}
		if first.Description != "Колхоз" {
			t.Errorf("got description %q, want %q", first.Description, "Колхоз")
		}
		// grouping space in the amount column
		if got[2].Amount == nil || !got[2].Amount.Equal(*amt("-1065.90")) {
			t.Errorf("got amount %v, want -1065.90", got[2].Amount)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := readLedger(strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d transactions, want 0", len(got))
		}
	})

	t.Run("missing date column", func(t *testing.T) {
		_, err := readLedger(strings.NewReader("Статус;Сумма операции\nOK;-1,00\n"))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("got error %v, want ErrInvalidInput", err)
		}
	})

	t.Run("missing file is an empty ledger", func(t *testing.T) {
		got, err := ReadLedger("testdata/does-not-exist.csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means nil
	}{
		{"-160,89", "-160.89"},
		{"-1 065,90", "-1065.90"},
		{"1025.00", "1025.00"},
		{"nan", ""},
		{"", ""},
		{"сто", ""},
	}
	for _, tc := range tests {
		got := parseAmount(tc.in)
		if tc.want == "" {
			if got != nil {
				t.Errorf("parseAmount(%q) = %v, want nil", tc.in, got)
			}
			continue
		}
		if got == nil || !got.Equal(*amt(tc.want)) {
			t.Errorf("parseAmount(%q) = %v, want %s", tc.in, got, tc.want)
		}
	}
}
