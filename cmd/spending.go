package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	analysis "github.com/Dragon-Slayer-Bild/transaction-analysis"
	"github.com/Dragon-Slayer-Bild/transaction-analysis/renderer"
)

// spendingCmd holds the flags for the 'spending' subcommand.
type spendingCmd struct {
	category string
	asOf     string
	fileName string
}

func (*spendingCmd) Name() string     { return "spending" }
func (*spendingCmd) Synopsis() string { return "display spending for one category over the last 90 days" }
func (*spendingCmd) Usage() string {
	return `ta spending -category <name> [-date <YYYY-MM-DD>] [-name <report file>]

  Sums the category's spending over the 90 days up to the given date (both
  ends inclusive; default today). The result is also written as a JSON report
  file, named explicitly or "spending_by_category_<timestamp>.json".
`
}

func (c *spendingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category to report on, matched exactly.")
	f.StringVar(&c.asOf, "date", "", "End of the 90-day window. Defaults to today.")
	f.StringVar(&c.fileName, "name", "", "Report file name without extension. Defaults to a timestamped name.")
}

func (c *spendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category is required")
		return subcommands.ExitUsageError
	}

	transactions, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	policy := analysis.Timestamped(nil)
	if c.fileName != "" {
		policy = analysis.FixedName(c.fileName)
	}
	rows, err := analysis.Reported(*resultsDir, "spending_by_category", policy,
		func() ([]analysis.CategorySpending, error) {
			return analysis.SpendingByCategory(transactions, c.category, c.asOf)
		})
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.Spending(rows))
	return subcommands.ExitSuccess
}
