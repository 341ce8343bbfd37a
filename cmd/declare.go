package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
	"github.com/google/subcommands"
)

// declareCmd holds the flags for the 'declare' subcommand.
type declareCmd struct {
	id       string
	ticker   string
	name     string
	category string
	price    float64
	currency string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare an asset or refresh its current price" }
func (*declareCmd) Usage() string {
	return `wt declare -id <id> -ticker <ticker> -price <price> [-name <name>] [-category <id>] [-currency <code>]

  Declares a tradable asset in the ledger. Re-declaring an existing asset
  is how its current price gets refreshed.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Unique asset identifier.")
	f.StringVar(&c.ticker, "ticker", "", "Display ticker of the asset.")
	f.StringVar(&c.name, "name", "", "Optional long name.")
	f.StringVar(&c.category, "category", "", "Category the asset belongs to.")
	f.Float64Var(&c.price, "price", 0, "Current market price per unit.")
	f.StringVar(&c.currency, "currency", "EUR", "Currency of the price.")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asset := wealthtracker.NewAsset(c.id, c.ticker, c.name, c.category, wealthtracker.M(c.price, c.currency))
	if err := asset.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// The new declaration must not introduce a second currency: the engine
	// aggregates across assets without conversion.
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger.Declare(asset)
	if _, err := ledger.Currency(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendRecord(asset)
}

// categoryCmd holds the flags for the 'category' subcommand.
type categoryCmd struct {
	id    string
	name  string
	color string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "declare an asset category" }
func (*categoryCmd) Usage() string {
	return `wt category -id <id> -name <name> [-color <hex>]

  Declares a category used to group assets in reports.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Unique category identifier.")
	f.StringVar(&c.name, "name", "", "Display name of the category.")
	f.StringVar(&c.color, "color", "", "Optional display color, carried through to charts.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category := wealthtracker.Category{ID: c.id, Name: c.name, Color: c.color}
	if err := category.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendRecord(category)
}

// objectiveCmd holds the flags for the 'objective' subcommand.
type objectiveCmd struct {
	target float64
	years  float64
	rate   float64
}

func (*objectiveCmd) Name() string     { return "objective" }
func (*objectiveCmd) Synopsis() string { return "set the savings objective" }
func (*objectiveCmd) Usage() string {
	return `wt objective -target <amount> -years <n> -rate <pct>

  Sets the savings objective: the amount to reach, the horizon, and the
  assumed yearly interest rate.
`
}

func (c *objectiveCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "target", 0, "Target amount to reach.")
	f.Float64Var(&c.years, "years", 0, "Horizon in years.")
	f.Float64Var(&c.rate, "rate", 0, "Assumed yearly interest rate in percent.")
}

func (c *objectiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	objective := wealthtracker.ObjectiveParams{
		TargetAmount: c.target,
		TargetYears:  c.years,
		InterestRate: wealthtracker.Percent(c.rate),
	}
	if err := objective.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendRecord(objective)
}
