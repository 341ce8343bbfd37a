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

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct {
	date string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display the portfolio allocation by category" }
func (*categoriesCmd) Usage() string {
	return `wt categories [-d <date>]

  Displays the current value of each category with its share of the
  portfolio, and each asset's share of its category.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthtracker.Today().String(), "Date for the allocation. Transactions after it are ignored.")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	values := wealthtracker.ComputeCategoryValues(ledger.CategoryList(), ledger.AssetList(), ledger.TransactionsAsOf(on))

	printMarkdown(renderer.RenderBreakdown(renderer.NewBreakdown(on, values)))

	return subcommands.ExitSuccess
}
