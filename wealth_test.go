package wealthtracker

import "testing"

func TestWealthAt(t *testing.T) {
	assets := testAssets()
	transactions := []Transaction{
		NewBuy(MustParseDate("2024-01-10"), "", "btc", Q(0.5), EUR(40000), EUR(0)),
		NewBuy(MustParseDate("2024-03-10"), "", "eth", Q(5), EUR(2000), EUR(0)),
		NewSell(MustParseDate("2024-06-10"), "", "btc", Q(0.5), EUR(45000), EUR(0)),
	}

	testCases := []struct {
		name string
		on   string
		want Money
	}{
		{"before any transaction", "2024-01-09", EUR(0)},
		{"after first buy", "2024-01-10", EUR(25000)},  // 0.5 btc at current 50000
		{"after second buy", "2024-03-10", EUR(40000)}, // + 5 eth at current 3000
		{"after the sell", "2024-06-10", EUR(15000)},   // btc gone, eth stays
		{"far future", "2030-01-01", EUR(15000)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := WealthAt(MustParseDate(tc.on), assets, transactions)
			if !got.Equal(tc.want) && !(got.IsZero() && tc.want.IsZero()) {
				t.Errorf("WealthAt(%s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}
}

// With a buy-only history, reconstructed wealth never decreases as the
// query date advances.
func TestWealthAt_NonDecreasingForBuyOnlyHistory(t *testing.T) {
	assets := testAssets()
	transactions := []Transaction{
		NewBuy(MustParseDate("2024-01-10"), "", "btc", Q(0.1), EUR(40000), EUR(0)),
		NewBuy(MustParseDate("2024-02-10"), "", "btc", Q(0.1), EUR(42000), EUR(0)),
		NewBuy(MustParseDate("2024-03-10"), "", "eth", Q(2), EUR(2000), EUR(0)),
		NewBuy(MustParseDate("2024-04-10"), "", "cw8", Q(4), EUR(480), EUR(0)),
	}

	prev := EUR(0)
	for on := MustParseDate("2024-01-01"); on.Before(MustParseDate("2024-05-01")); on = on.Add(7) {
		got := WealthAt(on, assets, transactions)
		if got.LessThan(prev) {
			t.Fatalf("WealthAt(%s) = %v, less than previous %v", on, got, prev)
		}
		prev = got
	}
}
