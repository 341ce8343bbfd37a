package wealthtracker

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// testAssets returns a small asset universe used across the engine tests.
func testAssets() []Asset {
	return []Asset{
		NewAsset("btc", "BTC", "Bitcoin", "crypto", EUR(50000)),
		NewAsset("eth", "ETH", "Ethereum", "crypto", EUR(3000)),
		NewAsset("cw8", "CW8", "MSCI World ETF", "etf", EUR(500)),
	}
}

// testCategories returns the categories matching testAssets.
func testCategories() []Category {
	return []Category{
		{ID: "crypto", Name: "Crypto", Color: "#f7931a"},
		{ID: "etf", Name: "ETF", Color: "#0066cc"},
	}
}
