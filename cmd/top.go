package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/renderer"
)

// topCmd holds the flags for the 'top' subcommand.
type topCmd struct {
	n      int
	asJSON bool
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "display the largest transactions, normalized to rubles" }
func (*topCmd) Usage() string {
	return `ta top [-n <count>] [-json]

  Ranks transactions by absolute amount and converts foreign amounts to
  rubles. Records without a numeric payment amount or a resolvable currency
  are skipped.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", analysis.DefaultTopN, "Number of transactions to keep.")
	f.BoolVar(&c.asJSON, "json", false, "Print the raw JSON result instead of markdown.")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	top := analysis.TopTransactions(transactions, c.n, newConverter())

	if c.asJSON {
		payload, err := json.MarshalIndent(top, "", "    ")
		if err != nil {
			return fail(err)
		}
		fmt.Println(string(payload))
	} else {
		printMarkdown(renderer.TopTransactions(top))
	}
	return subcommands.ExitSuccess
}
