package analysis

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "user_settings.json")
		content := `{"user_currencies": ["USD", "EUR"], "user_stocks": ["AAPL", "GOOGL"]}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Currencies) != 2 || got.Currencies[0] != "USD" {
			t.Errorf("got currencies %v, want [USD EUR]", got.Currencies)
		}
		if len(got.Stocks) != 2 || got.Stocks[1] != "GOOGL" {
			t.Errorf("got stocks %v, want [AAPL GOOGL]", got.Stocks)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected an error for a missing settings file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "user_settings.json")
		if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadSettings(path); err == nil {
			t.Error("expected an error for a malformed settings file")
		}
	})
}
