package wealthtracker

// WealthAt reconstructs the total portfolio value on a given day: it
// replays the transactions dated on or before 'on', nets each asset's
// position, and values the positive positions at the asset's current
// price. There is no historical price series, so the reconstruction shows
// how the owned quantities grew, not how market prices moved.
func WealthAt(on Date, assets []Asset, transactions []Transaction) Money {
	past := FilterByDate(transactions, on)

	var wealth Money
	for _, asset := range assets {
		quantity := NetQuantity(asset.ID, past)
		if !quantity.IsPositive() {
			continue
		}
		wealth = wealth.Add(asset.CurrentPrice.Mul(quantity))
	}
	return wealth
}
