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

// cardsCmd holds the flags for the 'cards' subcommand.
type cardsCmd struct {
	asJSON bool
}

func (*cardsCmd) Name() string     { return "cards" }
func (*cardsCmd) Synopsis() string { return "display expenditure and cashback per card" }
func (*cardsCmd) Usage() string {
	return `ta cards [-json]

  Groups expenditure by card over the whole ledger and derives a flat 1%
  cashback estimate per card.
`
}

func (c *cardsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the raw JSON result instead of markdown.")
}

func (c *cardsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	summaries := analysis.CardSummaries(transactions, newConverter())

	if c.asJSON {
		payload, err := json.MarshalIndent(summaries, "", "    ")
		if err != nil {
			return fail(err)
		}
		fmt.Println(string(payload))
	} else {
		printMarkdown(renderer.Cards(summaries))
	}
	return subcommands.ExitSuccess
}
