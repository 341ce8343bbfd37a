// Package cmd implements the CLI application to manage a wealth ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&declareCmd{}, "ledger")
	c.Register(&categoryCmd{}, "ledger")
	c.Register(&objectiveCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(newBuyCmd(), "transactions")
	c.Register(newSellCmd(), "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")
	c.Register(&wealthCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "wealth.jsonl", "Path to the ledger file (JSONL format)")

// DecodeLedgerFile decodes the app ledger file. A missing file yields an
// empty ledger, so reports work before the first transaction.
func DecodeLedgerFile() (*wealthtracker.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, using an empty ledger instead", *ledgerFile)
		return wealthtracker.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := wealthtracker.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("decoding ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// EncodeLedgerFile writes the ledger back to the app ledger file in
// canonical form.
func EncodeLedgerFile(ledger *wealthtracker.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("creating ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	if err := wealthtracker.EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("writing ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// appendRecord appends a single record line to the app ledger file.
func appendRecord(record any) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := wealthtracker.EncodeRecord(f, record); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended record to %s\n", filename)
	return subcommands.ExitSuccess
}

// ledgerCurrency returns the reporting currency of the ledger: the single
// currency of the declared assets, or EUR for an empty ledger. Decoding
// already rejects mixed-currency files.
func ledgerCurrency(ledger *wealthtracker.Ledger) string {
	cur, err := ledger.Currency()
	if err != nil || cur == "" {
		return "EUR"
	}
	return cur
}
