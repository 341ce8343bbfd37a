package wealthtracker

import "sort"

// AssetMetrics is the full valuation of a single asset derived from its
// transaction history and its current market price. It is computed, never
// stored.
type AssetMetrics struct {
	AssetID string
	Ticker  string

	TotalBought     Quantity // sum of buy quantities
	TotalSold       Quantity // sum of sell quantities
	CurrentQuantity Quantity // normalized net position, exactly zero below epsilon

	TotalInvested  Money // sum over buys of quantity*price + fee
	TotalRecovered Money // sum over sells of quantity*price - fee
	TotalFees      Money // all fees, buys and sells

	// AverageBuyPrice is the perpetual weighted-average cost per unit over
	// the full buy history, fees included. It is zero when there are no
	// buys. It is not a FIFO/LIFO lot method: it is recomputed from the
	// whole history on every call.
	AverageBuyPrice    Money
	InvestedInPosition Money // AverageBuyPrice * CurrentQuantity

	CurrentValue         Money // CurrentPrice * CurrentQuantity
	UnrealizedPnL        Money
	UnrealizedPnLPercent Percent

	// RealizedPnL values every past sale against the current average buy
	// price, applied uniformly. As new purchases move the average, the
	// realized figure for old sales moves with it; that is the perpetual-
	// average policy, not an accident.
	RealizedPnL Money

	TotalPnL        Money
	TotalPnLPercent Percent
}

// ComputeAssetMetrics derives the metrics of one asset from its transaction
// history. Transactions of other assets are ignored. All divisions are
// guarded: degenerate inputs (no buys, zero position) yield zero metrics,
// never NaN or infinity.
func ComputeAssetMetrics(asset Asset, transactions []Transaction) AssetMetrics {
	m := AssetMetrics{AssetID: asset.ID, Ticker: asset.Ticker}
	currency := asset.CurrentPrice.Currency()
	zero := M(0, currency)
	m.TotalInvested = zero
	m.TotalRecovered = zero
	m.TotalFees = zero

	for _, tx := range transactions {
		if tx.AssetID != asset.ID {
			continue
		}
		switch tx.Side {
		case Buy:
			m.TotalBought = m.TotalBought.Add(tx.Quantity)
			m.TotalInvested = m.TotalInvested.Add(tx.Cost())
		case Sell:
			m.TotalSold = m.TotalSold.Add(tx.Quantity)
			m.TotalRecovered = m.TotalRecovered.Add(tx.Proceeds())
		}
		m.TotalFees = m.TotalFees.Add(tx.Fee)
	}

	m.CurrentQuantity = m.TotalBought.Sub(m.TotalSold).Normalize()
	if m.CurrentQuantity.IsZero() {
		m.CurrentQuantity = Q(0)
	}

	// Average buy price over buys only, fees included. Money.Div returns
	// zero on an epsilon-zero denominator.
	m.AverageBuyPrice = m.TotalInvested.Div(m.TotalBought)
	m.InvestedInPosition = m.AverageBuyPrice.Mul(m.CurrentQuantity)
	m.CurrentValue = asset.CurrentPrice.Mul(m.CurrentQuantity)

	m.UnrealizedPnL = m.CurrentValue.Sub(m.InvestedInPosition)
	m.UnrealizedPnLPercent = m.UnrealizedPnL.PercentOf(m.InvestedInPosition)

	// Realized PnL: each sale's proceeds against the current average cost
	// of the quantity sold.
	m.RealizedPnL = zero
	for _, tx := range transactions {
		if tx.AssetID != asset.ID || tx.Side != Sell {
			continue
		}
		costOfSale := m.AverageBuyPrice.Mul(tx.Quantity)
		m.RealizedPnL = m.RealizedPnL.Add(tx.Proceeds().Sub(costOfSale))
	}

	m.TotalPnL = m.UnrealizedPnL.Add(m.RealizedPnL)
	m.TotalPnLPercent = m.TotalPnL.PercentOf(m.TotalInvested)

	return m
}

// HasActivity reports whether the asset belongs in a portfolio report: it
// holds a position or has sell history. Assets bought and never touched
// since stay; assets with no transactions at all are dropped.
func (m AssetMetrics) HasActivity() bool {
	return !m.CurrentQuantity.IsZero() || m.TotalSold.IsPositive()
}

// PortfolioMetrics aggregates the per-asset metrics linearly, and
// recomputes the ratio fields from the aggregated sums rather than
// averaging percentages.
type PortfolioMetrics struct {
	TotalValue          Money
	TotalInvested       Money
	TotalRecovered      Money
	NetInvested         Money // TotalInvested - TotalRecovered
	TotalFees           Money
	InvestedInPositions Money

	UnrealizedPnL        Money
	UnrealizedPnLPercent Percent
	RealizedPnL          Money
	TotalPnL             Money
	TotalPnLPercent      Percent

	// Assets holds the per-asset metrics of every asset with a non-zero
	// position or any sell history, sorted by current value, descending.
	Assets []AssetMetrics
}

// ComputePortfolioMetrics derives portfolio-wide metrics from all assets
// and the full transaction history. Assets without a current position and
// without sell history are excluded from the result.
func ComputePortfolioMetrics(assets []Asset, transactions []Transaction) PortfolioMetrics {
	var p PortfolioMetrics

	for _, asset := range assets {
		m := ComputeAssetMetrics(asset, transactions)
		if !m.HasActivity() {
			continue
		}
		p.Assets = append(p.Assets, m)

		p.TotalValue = p.TotalValue.Add(m.CurrentValue)
		p.TotalInvested = p.TotalInvested.Add(m.TotalInvested)
		p.TotalRecovered = p.TotalRecovered.Add(m.TotalRecovered)
		p.TotalFees = p.TotalFees.Add(m.TotalFees)
		p.InvestedInPositions = p.InvestedInPositions.Add(m.InvestedInPosition)
		p.UnrealizedPnL = p.UnrealizedPnL.Add(m.UnrealizedPnL)
		p.RealizedPnL = p.RealizedPnL.Add(m.RealizedPnL)
	}

	p.NetInvested = p.TotalInvested.Sub(p.TotalRecovered)
	p.TotalPnL = p.UnrealizedPnL.Add(p.RealizedPnL)
	p.UnrealizedPnLPercent = p.UnrealizedPnL.PercentOf(p.InvestedInPositions)
	p.TotalPnLPercent = p.TotalPnL.PercentOf(p.TotalInvested)

	sort.SliceStable(p.Assets, func(i, j int) bool {
		return p.Assets[j].CurrentValue.LessThan(p.Assets[i].CurrentValue)
	})

	return p
}
