package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/date"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	filterDate string
	asJSON     bool
	outFile    string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the main page with cards, top transactions and quotes" }
func (*dashboardCmd) Usage() string {
	return `ta dashboard [-d <DD.MM.YYYY>] [-json] [-o <file>]

  Builds the main page payload for the month up to the given date: greeting,
  per-card spending, top transactions, tracked currency rates and stock prices.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filterDate, "d", time.Now().Format("02.01.2006"), "End of the month-to-date window, in the bank export format.")
	f.BoolVar(&c.asJSON, "json", false, "Print the raw JSON payload instead of markdown.")
	f.StringVar(&c.outFile, "o", "", "Also write the JSON payload to this file.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := date.ParseDay(c.filterDate); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	d, err := buildDashboard(c.filterDate)
	if err != nil {
		return fail(err)
	}

	payload, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return fail(err)
	}
	if c.outFile != "" {
		if err := os.WriteFile(c.outFile, payload, 0o644); err != nil {
			return fail(err)
		}
	}

	if c.asJSON {
		fmt.Println(string(payload))
	} else {
		printMarkdown(renderer.Dashboard(d))
	}
	return subcommands.ExitSuccess
}

// buildDashboard loads the ledger and settings and assembles the payload.
func buildDashboard(filterDate string) (analysis.Dashboard, error) {
	transactions, err := loadLedger()
	if err != nil {
		return analysis.Dashboard{}, err
	}
	settings, err := loadSettings()
	if err != nil {
		return analysis.Dashboard{}, err
	}
	converter := newConverter()
	return analysis.BuildDashboard(transactions, filterDate, settings, converter, converter, newStocks(), nil), nil
}
