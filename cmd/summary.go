package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
	"github.com/TitouanLeBrun/wealthtracker-sub001/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio valuation and PnL" }
func (*summaryCmd) Usage() string {
	return `wt summary [-d <date>]

  Displays the portfolio valuation: per-asset positions, cost basis,
  unrealized and realized PnL, and the portfolio totals.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthtracker.Today().String(), "Date for the summary. Transactions after it are ignored.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := wealthtracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	metrics := wealthtracker.ComputePortfolioMetrics(ledger.AssetList(), ledger.TransactionsAsOf(on))

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(on, metrics)))

	return subcommands.ExitSuccess
}
