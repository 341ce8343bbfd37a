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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	target float64
	years  float64
	rate   float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "solve the savings plan for the objective" }
func (*projectCmd) Usage() string {
	return `wt project [-target <amount>] [-years <n>] [-rate <pct>]

  Solves the monthly savings required to grow the current wealth into the
  objective. Flags override the objective stored in the ledger, so plans
  can be explored without editing it.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "target", 0, "Target amount. Overrides the ledger objective.")
	f.Float64Var(&c.years, "years", 0, "Horizon in years. Overrides the ledger objective.")
	f.Float64Var(&c.rate, "rate", 0, "Expected yearly rate in percent. Overrides the ledger objective.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	objective := ledger.Objective()
	if c.target > 0 {
		objective.TargetAmount = c.target
	}
	if c.years > 0 {
		objective.TargetYears = c.years
	}
	if c.rate > 0 {
		objective.InterestRate = wealthtracker.Percent(c.rate)
	}
	if err := objective.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: no usable objective: %v\n", err)
		return subcommands.ExitUsageError
	}

	wealth := wealthtracker.WealthAt(wealthtracker.Today(), ledger.AssetList(), ledger.Transactions())
	projection := wealthtracker.ProjectObjective(objective, wealth.AsFloat())

	printMarkdown(renderer.RenderPlan(renderer.NewPlan(projection, ledgerCurrency(ledger))))

	return subcommands.ExitSuccess
}
