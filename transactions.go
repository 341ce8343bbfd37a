package wealthtracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RecordType is a typed string identifying the kind of a ledger record.
type RecordType string

// Record types used in the ledger file.
const (
	RecAsset     RecordType = "asset"
	RecCategory  RecordType = "category"
	RecObjective RecordType = "objective"
	RecBuy       RecordType = "buy"
	RecSell      RecordType = "sell"
)

// Side is the direction of a transaction: buy or sell.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Sign returns +1 for a buy and -1 for a sell.
func (s Side) Sign() int {
	if s == Sell {
		return -1
	}
	return 1
}

// ParseSide parses a transaction side, case-insensitively.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction side %q", s)
	}
}

// Transaction is a single buy or sell row of the ledger. It is plain data:
// the engine computes over transactions but never creates or mutates them.
type Transaction struct {
	ID       string   // unique identifier, assigned by the caller
	AssetID  string   // the asset traded
	Side     Side     // buy or sell
	Quantity Quantity // number of units, positive
	Price    Money    // price per unit, positive
	Fee      Money    // transaction fee, non-negative
	Date     Date     // the day the trade took place
}

// NewBuy creates a new buy transaction.
func NewBuy(day Date, id, assetID string, quantity Quantity, price, fee Money) Transaction {
	return Transaction{ID: id, AssetID: assetID, Side: Buy, Quantity: quantity, Price: price, Fee: fee, Date: day}
}

// NewSell creates a new sell transaction.
func NewSell(day Date, id, assetID string, quantity Quantity, price, fee Money) Transaction {
	return Transaction{ID: id, AssetID: assetID, Side: Sell, Quantity: quantity, Price: price, Fee: fee, Date: day}
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.Date }

// Signed returns the quantity with the side's sign applied.
func (t Transaction) Signed() Quantity {
	if t.Side == Sell {
		return Q(0).Sub(t.Quantity)
	}
	return t.Quantity
}

// Gross returns quantity times price per unit, before fees.
func (t Transaction) Gross() Money { return t.Price.Mul(t.Quantity) }

// Cost returns the total cash cost of a buy: gross plus fee.
func (t Transaction) Cost() Money { return t.Gross().Add(t.Fee) }

// Proceeds returns the net cash received from a sell: gross minus fee.
func (t Transaction) Proceeds() Money { return t.Gross().Sub(t.Fee) }

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.AssetID == o.AssetID && t.Side == o.Side &&
		t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price) &&
		t.Fee.Equal(o.Fee) && t.Date == o.Date
}

// Validate checks the transaction fields against the ledger. It ensures the
// quantity and price are positive, the fee is non-negative, and the asset is
// declared. The engine itself trusts well-formed rows; this is the boundary
// where rows are made well-formed.
func (t Transaction) Validate(l *Ledger) error {
	if t.Side != Buy && t.Side != Sell {
		return fmt.Errorf("transaction side must be %q or %q, got %q", Buy, Sell, t.Side)
	}
	if t.AssetID == "" {
		return errors.New("transaction asset is missing")
	}
	if l.Asset(t.AssetID) == nil {
		return fmt.Errorf("asset %q not declared in ledger", t.AssetID)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("%s quantity must be positive, got %s", t.Side, t.Quantity)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("%s price must be positive, got %s", t.Side, t.Price)
	}
	if t.Fee.IsNegative() {
		return fmt.Errorf("%s fee cannot be negative, got %s", t.Side, t.Fee)
	}
	if t.Side == Sell {
		pos := NetQuantity(t.AssetID, l.TransactionsAsOf(t.Date))
		if pos.LessThan(t.Quantity) {
			return fmt.Errorf("on %s, cannot sell %s of %s, position is only %s", t.Date, t.Quantity, t.AssetID, pos)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Transaction, with a stable
// field order for canonical ledger files.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecordType(t.Side))
	w.Append("date", t.Date)
	w.Optional("id", t.ID)
	w.Append("asset", t.AssetID)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.value)
	if !t.Fee.IsZero() {
		w.Append("fee", t.Fee.value)
	}
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// txRow is a specialized struct for decoding transaction rows, where the
// monetary fields are bare decimals plus a shared currency.
type txRow struct {
	Record   RecordType      `json:"record"`
	Date     Date            `json:"date"`
	ID       string          `json:"id"`
	AssetID  string          `json:"asset"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Fee      decimal.Decimal `json:"fee"`
	Currency string          `json:"currency"`
}

// UnmarshalJSON implements json.Unmarshaler for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var row txRow
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	side, err := ParseSide(string(row.Record))
	if err != nil {
		return err
	}
	*t = Transaction{
		ID:       row.ID,
		AssetID:  row.AssetID,
		Side:     side,
		Quantity: row.Quantity,
		Price:    M(row.Price, row.Currency),
		Fee:      M(row.Fee, row.Currency),
		Date:     row.Date,
	}
	return nil
}

// Asset describes an instrument that can be traded: a ticker, a display
// name, the category it belongs to, and a single current market price.
// There is no historical price series.
type Asset struct {
	ID           string `json:"id"`
	Ticker       string `json:"ticker"`
	Name         string `json:"name,omitempty"`
	CategoryID   string `json:"category,omitempty"`
	CurrentPrice Money  `json:"-"`
}

// NewAsset creates a new asset declaration.
func NewAsset(id, ticker, name, categoryID string, currentPrice Money) Asset {
	return Asset{ID: id, Ticker: ticker, Name: name, CategoryID: categoryID, CurrentPrice: currentPrice}
}

// Validate checks the asset declaration fields.
func (a Asset) Validate() error {
	if a.ID == "" {
		return errors.New("asset id is missing")
	}
	if a.Ticker == "" {
		return errors.New("asset ticker is missing")
	}
	if a.CurrentPrice.IsNegative() {
		return fmt.Errorf("asset price cannot be negative, got %s", a.CurrentPrice)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Asset.
func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecAsset)
	w.Append("id", a.ID)
	w.Append("ticker", a.Ticker)
	w.Optional("name", a.Name)
	w.Optional("category", a.CategoryID)
	w.Append("price", a.CurrentPrice.value)
	w.Optional("currency", a.CurrentPrice.cur)
	return w.MarshalJSON()
}

// assetRow is a specialized struct for decoding asset rows.
type assetRow struct {
	ID       string          `json:"id"`
	Ticker   string          `json:"ticker"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// UnmarshalJSON implements json.Unmarshaler for Asset.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var row assetRow
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*a = Asset{
		ID:           row.ID,
		Ticker:       row.Ticker,
		Name:         row.Name,
		CategoryID:   row.Category,
		CurrentPrice: M(row.Price, row.Currency),
	}
	return nil
}

// Category groups assets for aggregate reporting. Color is a display hint
// for the caller, carried through untouched.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Validate checks the category declaration fields.
func (c Category) Validate() error {
	if c.ID == "" {
		return errors.New("category id is missing")
	}
	if c.Name == "" {
		return errors.New("category name is missing")
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Category.
func (c Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecCategory)
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Optional("color", c.Color)
	return w.MarshalJSON()
}

// ObjectiveParams describes a savings goal: reach TargetAmount in
// TargetYears, assuming an annual nominal interest rate (8 means 8%).
type ObjectiveParams struct {
	TargetAmount float64 `json:"target"`
	TargetYears  float64 `json:"years"`
	InterestRate Percent `json:"rate"`
}

// IsZero reports whether no objective has been set.
func (o ObjectiveParams) IsZero() bool { return o == ObjectiveParams{} }

// Validate checks the objective parameters.
func (o ObjectiveParams) Validate() error {
	if o.TargetAmount <= 0 {
		return fmt.Errorf("objective target must be positive, got %g", o.TargetAmount)
	}
	if o.TargetYears <= 0 {
		return fmt.Errorf("objective horizon must be positive, got %g years", o.TargetYears)
	}
	if o.InterestRate < 0 {
		return fmt.Errorf("objective rate cannot be negative, got %s", o.InterestRate)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for ObjectiveParams.
func (o ObjectiveParams) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecObjective)
	w.Append("target", o.TargetAmount)
	w.Append("years", o.TargetYears)
	w.Append("rate", float64(o.InterestRate))
	return w.MarshalJSON()
}

// ChartDataPoint is a single dated sample of a chart series.
type ChartDataPoint struct {
	Date  Date    `json:"date"`
	Value float64 `json:"value"`
}
