package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
	"github.com/TitouanLeBrun/wealthtracker-sub001/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	window string
	asJSON bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the wealth and objective chart series" }
func (*chartCmd) Usage() string {
	return `wt chart [-r <range>] [-json]

  Samples the reconstructed wealth and the objective projection over a
  display window (1m, 3m, 6m, ytd, 1y, 5y or all) and prints the series,
  as markdown tables or as JSON for an external plotting tool.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "r", "all", "Display window: 1m, 3m, 6m, ytd, 1y, 5y or all.")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw series as JSON instead of a report.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := wealthtracker.ParseChartRange(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	today := wealthtracker.Today()
	start := ledger.OldestTransactionDate()
	if start.IsZero() {
		start = today
	}

	series := wealthtracker.GenerateChartSeries(window, ledger.AssetList(), ledger.Transactions(), ledger.Objective(), start, today)

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(series); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding series: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ChartMarkdown(window, series, ledgerCurrency(ledger)))

	return subcommands.ExitSuccess
}
