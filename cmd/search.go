package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/renderer"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	asJSON bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search transactions by description" }
func (*searchCmd) Usage() string {
	return `ta search [-json] <pattern>

  Finds the transactions whose description matches the pattern. The pattern
  is a case-insensitive regular expression; quote metacharacters for a
  literal match.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the matching records as JSON instead of markdown.")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search pattern is required")
		return subcommands.ExitUsageError
	}
	pattern := strings.Join(f.Args(), " ")

	transactions, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	matches, err := analysis.SearchByDescription(transactions, pattern)
	if err != nil {
		return fail(err)
	}

	if c.asJSON {
		payload, err := json.MarshalIndent(matches, "", "    ")
		if err != nil {
			return fail(err)
		}
		fmt.Println(string(payload))
	} else {
		printMarkdown(renderer.Transactions(matches))
	}
	return subcommands.ExitSuccess
}
