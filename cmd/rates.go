package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/Dragon-Slayer-Bild/transaction-analysis/renderer"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	asJSON bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display ruble rates for the tracked currencies" }
func (*ratesCmd) Usage() string {
	return `ta rates [-json]

  Fetches the current ruble rate for each currency listed in the user
  settings file. Currencies that cannot be quoted are omitted.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the raw JSON result instead of markdown.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		return fail(err)
	}

	rates := newConverter().QuotesRUB(settings.Currencies)

	if c.asJSON {
		payload, err := json.MarshalIndent(rates, "", "    ")
		if err != nil {
			return fail(err)
		}
		fmt.Println(string(payload))
	} else {
		printMarkdown(renderer.Rates(rates))
	}
	return subcommands.ExitSuccess
}
