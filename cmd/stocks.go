package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/Dragon-Slayer-Bild/transaction-analysis/renderer"
)

// stocksCmd holds the flags for the 'stocks' subcommand.
type stocksCmd struct {
	asJSON bool
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "display prices for the tracked stocks" }
func (*stocksCmd) Usage() string {
	return `ta stocks [-json]

  Fetches the current price for each ticker listed in the user settings
  file. Tickers that cannot be quoted are omitted.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the raw JSON result instead of markdown.")
}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		return fail(err)
	}

	prices := newStocks().Prices(settings.Stocks)

	if c.asJSON {
		payload, err := json.MarshalIndent(prices, "", "    ")
		if err != nil {
			return fail(err)
		}
		fmt.Println(string(payload))
	} else {
		printMarkdown(renderer.Stocks(prices))
	}
	return subcommands.ExitSuccess
}
