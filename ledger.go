package wealthtracker

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// NetQuantity reduces a transaction list to the net owned quantity of one
// asset: buys count positive, sells negative. The result is normalized so
// that a full round trip (buy q then sell q) nets to exactly zero. A ledger
// that goes negative is never rejected here; sell limits are enforced
// upstream, at append time.
func NetQuantity(assetID string, transactions []Transaction) Quantity {
	var net Quantity
	for _, tx := range transactions {
		if tx.AssetID != assetID {
			continue
		}
		net = net.Add(tx.Signed())
	}
	net = net.Normalize()
	if net.IsZero() {
		return Q(0)
	}
	return net
}

// FilterByDate returns the transactions dated on or before 'on', preserving
// order. The input slice is never mutated.
func FilterByDate(transactions []Transaction, on Date) []Transaction {
	kept := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !tx.Date.After(on) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// Ledger is the decoded form of a ledger file: declared assets and
// categories, an optional savings objective, and the chronological list of
// buy/sell transactions. It is the container the CLI feeds to the pure
// computation functions; the functions themselves take plain slices.
type Ledger struct {
	transactions []Transaction
	assets       map[string]Asset    // indexed by asset ID
	categories   map[string]Category // indexed by category ID
	objective    ObjectiveParams
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		assets:       make(map[string]Asset),
		categories:   make(map[string]Category),
	}
}

// Asset returns the asset declared with this ID, or nil if unknown.
func (l *Ledger) Asset(id string) *Asset {
	a, ok := l.assets[id]
	if !ok {
		return nil
	}
	return &a
}

// Category returns the category declared with this ID, or nil if unknown.
func (l *Ledger) Category(id string) *Category {
	c, ok := l.categories[id]
	if !ok {
		return nil
	}
	return &c
}

// Objective returns the savings objective, which is zero when none was set.
func (l *Ledger) Objective() ObjectiveParams { return l.objective }

// SetObjective declares or replaces the savings objective.
func (l *Ledger) SetObjective(o ObjectiveParams) { l.objective = o }

// Declare adds or replaces an asset declaration. Re-declaring an asset is
// how its current price gets refreshed.
func (l *Ledger) Declare(a Asset) { l.assets[a.ID] = a }

// DeclareCategory adds or replaces a category declaration.
func (l *Ledger) DeclareCategory(c Category) { l.categories[c.ID] = c }

// Append appends transactions to this ledger and maintains the
// chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, so
// transactions on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Transactions returns the chronological transaction list. The returned
// slice is shared: callers must not mutate it.
func (l *Ledger) Transactions() []Transaction { return l.transactions }

// TransactionsAsOf returns the transactions dated on or before 'on'.
func (l *Ledger) TransactionsAsOf(on Date) []Transaction {
	return FilterByDate(l.transactions, on)
}

// AssetTransactions returns an iterator over the transactions of a single
// asset, in chronological order.
func (l *Ledger) AssetTransactions(assetID string) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.AssetID != assetID {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// AllAssets iterates over assets declared in this ledger, in ID order.
func (l *Ledger) AllAssets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		ids := slices.Collect(maps.Keys(l.assets))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(l.assets[id]) {
				return
			}
		}
	}
}

// AllCategories iterates over categories declared in this ledger, in ID order.
func (l *Ledger) AllCategories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		ids := slices.Collect(maps.Keys(l.categories))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(l.categories[id]) {
				return
			}
		}
	}
}

// AssetList returns the declared assets as a slice, in ID order.
func (l *Ledger) AssetList() []Asset {
	return slices.Collect(l.AllAssets())
}

// CategoryList returns the declared categories as a slice, in ID order.
func (l *Ledger) CategoryList() []Category {
	return slices.Collect(l.AllCategories())
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date when the ledger has no transactions.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date when the ledger has no transactions.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// Currency returns the single currency shared by the declared assets, or
// an error when declarations mix currencies. There is no conversion layer,
// so aggregating across currencies would be meaningless. An empty ledger
// has no currency yet and returns "".
func (l *Ledger) Currency() (string, error) {
	var cur string
	for a := range l.AllAssets() {
		c := a.CurrentPrice.Currency()
		if c == "" {
			continue
		}
		if cur == "" {
			cur = c
			continue
		}
		if c != cur {
			return "", fmt.Errorf("assets declare mixed currencies %s and %s, a ledger holds a single currency", cur, c)
		}
	}
	return cur, nil
}

// Validate checks a transaction for correctness against the declared assets
// and the position on the transaction date. It returns an error detailing
// any validation failure.
func (l *Ledger) Validate(tx Transaction) error {
	if err := tx.Validate(l); err != nil {
		return fmt.Errorf("invalid %s transaction on %v: %w", tx.Side, tx.Date, err)
	}
	return nil
}
