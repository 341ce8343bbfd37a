package renderer

import (
	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
)

// Summary is the renderable form of the portfolio metrics.
type Summary struct {
	AsOf string `json:"asOf"`

	TotalValue     wealthtracker.Money `json:"totalValue"`
	NetInvested    wealthtracker.Money `json:"netInvested"`
	TotalInvested  wealthtracker.Money `json:"totalInvested"`
	TotalRecovered wealthtracker.Money `json:"totalRecovered"`
	TotalFees      wealthtracker.Money `json:"totalFees"`

	UnrealizedPnL        wealthtracker.Money   `json:"unrealizedPnl"`
	UnrealizedPnLPercent wealthtracker.Percent `json:"unrealizedPnlPercent"`
	RealizedPnL          wealthtracker.Money   `json:"realizedPnl"`
	TotalPnL             wealthtracker.Money   `json:"totalPnl"`
	TotalPnLPercent      wealthtracker.Percent `json:"totalPnlPercent"`

	Assets []AssetLine `json:"assets"`
}

// AssetLine holds the per-asset row of the summary table.
type AssetLine struct {
	Ticker          string                `json:"ticker"`
	Quantity        string                `json:"quantity"`
	AverageBuyPrice wealthtracker.Money   `json:"averageBuyPrice"`
	Invested        wealthtracker.Money   `json:"invested"`
	Value           wealthtracker.Money   `json:"value"`
	UnrealizedPnL   wealthtracker.Money   `json:"unrealizedPnl"`
	RealizedPnL     wealthtracker.Money   `json:"realizedPnl"`
	PnLPercent      wealthtracker.Percent `json:"pnlPercent"`
}

// NewSummary creates a renderable Summary from computed portfolio metrics.
func NewSummary(on wealthtracker.Date, p wealthtracker.PortfolioMetrics) *Summary {
	s := &Summary{
		AsOf:                 on.String(),
		TotalValue:           p.TotalValue,
		NetInvested:          p.NetInvested,
		TotalInvested:        p.TotalInvested,
		TotalRecovered:       p.TotalRecovered,
		TotalFees:            p.TotalFees,
		UnrealizedPnL:        p.UnrealizedPnL,
		UnrealizedPnLPercent: p.UnrealizedPnLPercent,
		RealizedPnL:          p.RealizedPnL,
		TotalPnL:             p.TotalPnL,
		TotalPnLPercent:      p.TotalPnLPercent,
	}
	for _, a := range p.Assets {
		s.Assets = append(s.Assets, AssetLine{
			Ticker:          a.Ticker,
			Quantity:        a.CurrentQuantity.String(),
			AverageBuyPrice: a.AverageBuyPrice,
			Invested:        a.InvestedInPosition,
			Value:           a.CurrentValue,
			UnrealizedPnL:   a.UnrealizedPnL,
			RealizedPnL:     a.RealizedPnL,
			PnLPercent:      a.TotalPnLPercent,
		})
	}
	return s
}
