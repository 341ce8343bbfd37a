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

// tradeCmd holds the flags shared by the 'buy' and 'sell' subcommands.
type tradeCmd struct {
	side     wealthtracker.Side
	date     string
	id       string
	asset    string
	quantity float64
	price    float64
	fee      float64
}

type buyCmd struct{ tradeCmd }
type sellCmd struct{ tradeCmd }

func newBuyCmd() *buyCmd   { return &buyCmd{tradeCmd{side: wealthtracker.Buy}} }
func newSellCmd() *sellCmd { return &sellCmd{tradeCmd{side: wealthtracker.Sell}} }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy transaction in the ledger" }
func (*buyCmd) Usage() string {
	return `wt buy -a <asset> -q <quantity> -p <price> [-f <fee>] [-d <date>]

  Validates and appends a buy transaction to the ledger file.
`
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell transaction in the ledger" }
func (*sellCmd) Usage() string {
	return `wt sell -a <asset> -q <quantity> -p <price> [-f <fee>] [-d <date>]

  Validates and appends a sell transaction to the ledger file. Selling
  more than the position held on that date is rejected.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthtracker.Today().String(), "Date of the transaction.")
	f.StringVar(&c.id, "id", "", "Optional identifier for the transaction.")
	f.StringVar(&c.asset, "a", "", "Asset identifier, as declared in the ledger.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity traded.")
	f.Float64Var(&c.price, "p", 0, "Price per unit.")
	f.Float64Var(&c.fee, "f", 0, "Transaction fee.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	currency := ledgerCurrency(ledger)
	tx := wealthtracker.Transaction{
		ID:       c.id,
		AssetID:  c.asset,
		Side:     c.side,
		Quantity: wealthtracker.Q(c.quantity),
		Price:    wealthtracker.M(c.price, currency),
		Fee:      wealthtracker.M(c.fee, currency),
		Date:     on,
	}

	if err := ledger.Validate(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendRecord(tx)
}

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	start string
	date  string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*txCmd) Usage() string {
	return `wt tx [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// If no date flags are provided, use the full range of the ledger.
	from, to := ledger.OldestTransactionDate(), ledger.NewestTransactionDate()
	if p.start != "" {
		if from, err = wealthtracker.ParseDate(p.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if p.date != "" {
		if to, err = wealthtracker.ParseDate(p.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	window := wealthtracker.NewRange(from, to)

	var transactions []wealthtracker.Transaction
	for _, tx := range ledger.Transactions() {
		if window.Contains(tx.When()) {
			transactions = append(transactions, tx)
		}
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))

	return subcommands.ExitSuccess
}
