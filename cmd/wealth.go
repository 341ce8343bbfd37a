package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
	"github.com/google/subcommands"
)

// wealthCmd holds the flags for the 'wealth' subcommand.
type wealthCmd struct {
	date string
}

func (*wealthCmd) Name() string     { return "wealth" }
func (*wealthCmd) Synopsis() string { return "display the total wealth on a given date" }
func (*wealthCmd) Usage() string {
	return `wt wealth [-d <date>]

  Replays the ledger up to the given date and values the positions held
  on that day at current prices.
`
}

func (c *wealthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthtracker.Today().String(), "Date to reconstruct the wealth on.")
}

func (c *wealthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	wealth := wealthtracker.WealthAt(on, ledger.AssetList(), ledger.Transactions())
	fmt.Printf("Wealth on %s: %s\n", on, wealth)

	return subcommands.ExitSuccess
}
