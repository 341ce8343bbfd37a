package renderer

import (
	"fmt"
	"strings"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
)

// Transaction renders a single transaction to a one-line string.
func Transaction(tx wealthtracker.Transaction) string {
	switch tx.Side {
	case wealthtracker.Sell:
		return fmt.Sprintf("Sold %s of %s at %s (fee %s)", tx.Quantity, tx.AssetID, tx.Price, tx.Fee)
	default:
		return fmt.Sprintf("Bought %s of %s at %s (fee %s)", tx.Quantity, tx.AssetID, tx.Price, tx.Fee)
	}
}

// Transactions renders a transaction list to a markdown table.
func Transactions(txs []wealthtracker.Transaction) string {
	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	if len(txs) == 0 {
		b.WriteString("No transactions.\n")
		return b.String()
	}
	b.WriteString("| Date | Detail |\n")
	b.WriteString("|:---|:---|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s |\n", tx.Date, Transaction(tx))
	}
	return b.String()
}
