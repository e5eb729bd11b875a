// Package cmd implements the CLI application over the transaction reports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/apilayer"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/finazon"
)

// Register the subcommands.
// A main package calls Register(), then Init() after flag parsing, then
// Execute() on the user-selected command.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&cardsCmd{}, "reports")
	c.Register(&topCmd{}, "reports")
	c.Register(&spendingCmd{}, "reports")
	c.Register(&searchCmd{}, "reports")

	c.Register(&ratesCmd{}, "quotes")
	c.Register(&stocksCmd{}, "quotes")

	c.Register(&assistCmd{}, "")
}

// As a CLI application it is short lived, so global flags are fine.

var operationsFile = flag.String("operations-file", "data/operations.csv", "Path to the bank operations export (semicolon-separated CSV)")
var settingsFile = flag.String("settings-file", "data/user_settings.json", "Path to the user settings file (tracked currencies and stocks)")
var resultsDir = flag.String("results-dir", "data", "Directory where report JSON files are written")
var logFile = flag.String("log-file", "", "Path to the diagnostic log file. Empty logs to stderr.")

const (
	currencyAPIKeyEnv = "API_KEY_FOR_CURRENCY_CONVERT"
	stocksAPIKeyEnv   = "API_KEY_FOR_STOCKS"
)

var currencyAPIKeyFlag = flag.String("currency-api-key", "", "apilayer.com API key for currency conversion.\n If missing it is read from the environment variable "+currencyAPIKeyEnv+".")
var stocksAPIKeyFlag = flag.String("stocks-api-key", "", "finazon.io API key for stock prices.\n If missing it is read from the environment variable "+stocksAPIKeyEnv+".")

// Init applies the global flags that configure the process. Call it once,
// after flag parsing and before executing a command.
func Init() error {
	return analysis.InitLogFile(*logFile)
}

func currencyAPIKey() string {
	if *currencyAPIKeyFlag == "" {
		*currencyAPIKeyFlag = os.Getenv(currencyAPIKeyEnv)
	}
	return *currencyAPIKeyFlag
}

func stocksAPIKey() string {
	if *stocksAPIKeyFlag == "" {
		*stocksAPIKeyFlag = os.Getenv(stocksAPIKeyEnv)
	}
	return *stocksAPIKeyFlag
}

// loadLedger reads the operations export named by the global flag.
func loadLedger() ([]analysis.Transaction, error) {
	return analysis.ReadLedger(*operationsFile)
}

// loadSettings reads the user settings named by the global flag.
func loadSettings() (analysis.Settings, error) {
	return analysis.LoadSettings(*settingsFile)
}

func newConverter() *apilayer.Client { return apilayer.New(currencyAPIKey()) }
func newStocks() *finazon.Client     { return finazon.New(stocksAPIKey()) }

// fail prints the error and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
