package analysis

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings names the currencies and stock tickers the user tracks on the
// dashboard. It is read from a small JSON file next to the operations export.
type Settings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// LoadSettings reads the user settings file.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("cannot read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("cannot parse settings %q: %w", path, err)
	}
	return s, nil
}
