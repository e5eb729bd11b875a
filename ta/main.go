// Command ta analyzes a bank operations export: per-card spending, top
// transactions, category reports, live currency and stock quotes, and an
// interactive AI analyst over the lot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/Dragon-Slayer-Bild/transaction-analysis/cmd"
)

func main() {
	// API keys usually live in a local .env file. A missing file is fine.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, "ta")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(int(commander.Execute(context.Background())))
}
