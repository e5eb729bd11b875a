package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/Dragon-Slayer-Bild/transaction-analysis/agent"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	filterDate string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI analyst about your spending" }
func (*assistCmd) Usage() string {
	return `ta assist [-d <DD.MM.YYYY>] [initial question]

  Starts an interactive chat seeded with the current dashboard payload.
  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filterDate, "d", time.Now().Format("02.01.2006"), "End of the month-to-date window, in the bank export format.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := buildDashboard(c.filterDate)
	if err != nil {
		return fail(err)
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}
	analyst, err := agent.NewAnalyst(ctx, client, string(payload))
	if err != nil {
		return fail(err)
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := analyst.Run(ctx, os.Stdout, os.Stdin, prompts...); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
