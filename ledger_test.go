package wealthtracker

import (
	"strings"
	"testing"
)

func TestNetQuantity(t *testing.T) {
	transactions := []Transaction{
		NewBuy(MustParseDate("2025-01-10"), "", "btc", Q(0.5), EUR(40000), EUR(50)),
		NewBuy(MustParseDate("2025-01-15"), "", "eth", Q(10), EUR(2500), EUR(10)),
		NewSell(MustParseDate("2025-02-01"), "", "btc", Q(0.2), EUR(42000), EUR(20)),
		NewBuy(MustParseDate("2025-02-10"), "", "btc", Q(0.1), EUR(43000), EUR(10)),
		NewSell(MustParseDate("2025-03-01"), "", "eth", Q(10), EUR(2900), EUR(10)),
	}

	testCases := []struct {
		name    string
		assetID string
		want    Quantity
	}{
		{"btc nets buys minus sells", "btc", Q(0.4)},
		{"eth full round trip is exactly zero", "eth", Q(0)},
		{"unknown asset is zero", "sol", Q(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NetQuantity(tc.assetID, transactions)
			if !got.Equal(tc.want) {
				t.Errorf("NetQuantity(%q) = %v, want %v", tc.assetID, got, tc.want)
			}
		})
	}
}

// Fractional residue from repeated decimal quantities must not leave a
// phantom position behind.
func TestNetQuantity_FractionalRoundTrip(t *testing.T) {
	var transactions []Transaction
	day := MustParseDate("2025-01-01")
	for i := 0; i < 10; i++ {
		transactions = append(transactions, NewBuy(day.Add(i), "", "btc", Q(0.1), EUR(40000), EUR(0)))
	}
	transactions = append(transactions, NewSell(day.Add(30), "", "btc", Q(1), EUR(45000), EUR(0)))

	got := NetQuantity("btc", transactions)
	if !got.IsZero() {
		t.Errorf("NetQuantity after ten 0.1 buys and one 1.0 sell = %v, want exactly zero", got)
	}
	if got.String() != "0" {
		t.Errorf("NetQuantity zero is not canonical: %q", got.String())
	}
}

func TestFilterByDate(t *testing.T) {
	tx1 := NewBuy(MustParseDate("2025-01-10"), "", "btc", Q(1), EUR(100), EUR(0))
	tx2 := NewBuy(MustParseDate("2025-02-10"), "", "btc", Q(1), EUR(100), EUR(0))
	tx3 := NewBuy(MustParseDate("2025-03-10"), "", "btc", Q(1), EUR(100), EUR(0))
	transactions := []Transaction{tx1, tx2, tx3}

	testCases := []struct {
		name string
		on   string
		want int
	}{
		{"before all", "2025-01-09", 0},
		{"on first", "2025-01-10", 1},
		{"between", "2025-02-28", 2},
		{"after all", "2025-12-31", 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByDate(transactions, MustParseDate(tc.on))
			if len(got) != tc.want {
				t.Errorf("FilterByDate(%s) kept %d transactions, want %d", tc.on, len(got), tc.want)
			}
		})
	}

	if len(transactions) != 3 {
		t.Errorf("FilterByDate mutated its input: %d transactions left", len(transactions))
	}
}

func TestLedger_AppendKeepsChronologicalOrder(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParseDate("2025-03-01"), "c", "btc", Q(1), EUR(100), EUR(0)),
		NewBuy(MustParseDate("2025-01-01"), "a", "btc", Q(1), EUR(100), EUR(0)),
		NewBuy(MustParseDate("2025-02-01"), "b", "btc", Q(1), EUR(100), EUR(0)),
	)

	var got []string
	for _, tx := range ledger.Transactions() {
		got = append(got, tx.ID)
	}
	want := "a,b,c"
	if strings.Join(got, ",") != want {
		t.Errorf("Transactions() order = %v, want %v", got, want)
	}

	if d := ledger.OldestTransactionDate(); d != MustParseDate("2025-01-01") {
		t.Errorf("OldestTransactionDate() = %v, want 2025-01-01", d)
	}
	if d := ledger.NewestTransactionDate(); d != MustParseDate("2025-03-01") {
		t.Errorf("NewestTransactionDate() = %v, want 2025-03-01", d)
	}
}

// The aggregated metrics assume one currency across all assets; the
// declaration boundary must reject a second one before the engine sees it.
func TestLedger_Currency(t *testing.T) {
	ledger := NewLedger()
	if cur, err := ledger.Currency(); err != nil || cur != "" {
		t.Errorf("empty ledger Currency() = %q, %v, want no currency yet", cur, err)
	}

	ledger.Declare(NewAsset("btc", "BTC", "Bitcoin", "crypto", EUR(50000)))
	ledger.Declare(NewAsset("eth", "ETH", "Ethereum", "crypto", EUR(3000)))
	if cur, err := ledger.Currency(); err != nil || cur != "EUR" {
		t.Errorf("Currency() = %q, %v, want EUR", cur, err)
	}

	ledger.Declare(NewAsset("aapl", "AAPL", "Apple", "stocks", USD(200)))
	if _, err := ledger.Currency(); err == nil || !strings.Contains(err.Error(), "mixed currencies") {
		t.Errorf("Currency() error = %v, want a mixed currencies rejection", err)
	}
}

func TestLedger_Validate(t *testing.T) {
	ledger := NewLedger()
	for _, a := range testAssets() {
		ledger.Declare(a)
	}
	ledger.Append(NewBuy(MustParseDate("2025-01-10"), "", "btc", Q(0.5), EUR(40000), EUR(50)))

	testCases := []struct {
		name    string
		tx      Transaction
		wantErr string // empty means valid
	}{
		{
			name: "valid buy",
			tx:   NewBuy(MustParseDate("2025-02-01"), "", "btc", Q(0.1), EUR(42000), EUR(10)),
		},
		{
			name: "valid sell within position",
			tx:   NewSell(MustParseDate("2025-02-01"), "", "btc", Q(0.5), EUR(42000), EUR(10)),
		},
		{
			name:    "sell more than owned",
			tx:      NewSell(MustParseDate("2025-02-01"), "", "btc", Q(0.6), EUR(42000), EUR(10)),
			wantErr: "position is only",
		},
		{
			name:    "sell before the position existed",
			tx:      NewSell(MustParseDate("2025-01-09"), "", "btc", Q(0.1), EUR(42000), EUR(10)),
			wantErr: "position is only",
		},
		{
			name:    "undeclared asset",
			tx:      NewBuy(MustParseDate("2025-02-01"), "", "sol", Q(1), EUR(100), EUR(0)),
			wantErr: "not declared",
		},
		{
			name:    "zero quantity",
			tx:      NewBuy(MustParseDate("2025-02-01"), "", "btc", Q(0), EUR(42000), EUR(0)),
			wantErr: "quantity must be positive",
		},
		{
			name:    "negative price",
			tx:      NewBuy(MustParseDate("2025-02-01"), "", "btc", Q(1), EUR(-1), EUR(0)),
			wantErr: "price must be positive",
		},
		{
			name:    "negative fee",
			tx:      NewBuy(MustParseDate("2025-02-01"), "", "btc", Q(1), EUR(42000), EUR(-1)),
			wantErr: "fee cannot be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ledger.Validate(tc.tx)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
