package renderer

import (
	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
)

// Breakdown is the renderable form of the category aggregation.
type Breakdown struct {
	AsOf       string         `json:"asOf"`
	TotalValue string         `json:"totalValue"`
	Categories []CategoryLine `json:"categories"`
}

// CategoryLine holds one category row with its asset breakdown.
type CategoryLine struct {
	Name   string                `json:"name"`
	Value  wealthtracker.Money   `json:"value"`
	Share  wealthtracker.Percent `json:"share"`
	Assets []CategoryAssetLine   `json:"assets"`
}

// CategoryAssetLine holds one asset row within a category.
type CategoryAssetLine struct {
	Ticker string                `json:"ticker"`
	Value  wealthtracker.Money   `json:"value"`
	Share  wealthtracker.Percent `json:"share"`
}

// NewBreakdown creates a renderable Breakdown from computed category values.
func NewBreakdown(on wealthtracker.Date, values []wealthtracker.CategoryValue) *Breakdown {
	b := &Breakdown{AsOf: on.String()}

	var total wealthtracker.Money
	for _, cv := range values {
		total = total.Add(cv.Value)
		line := CategoryLine{Name: cv.Name, Value: cv.Value, Share: cv.Share}
		for _, a := range cv.Assets {
			line.Assets = append(line.Assets, CategoryAssetLine{
				Ticker: a.Ticker,
				Value:  a.Value,
				Share:  a.Share,
			})
		}
		b.Categories = append(b.Categories, line)
	}
	b.TotalValue = total.String()
	return b
}

// RenderBreakdown renders the Breakdown struct to a markdown string.
func RenderBreakdown(b *Breakdown) string {
	partials := map[string]string{
		"categories_title": "categories_title.md",
		"categories_table": "categories_table.md",
	}
	return renderTemplate("categories", "categories.md", partials, b)
}
