package wealthtracker

import "sort"

// CategoryAsset is one asset's contribution to its category: its current
// value and its share of the category total.
type CategoryAsset struct {
	AssetID string
	Ticker  string
	Value   Money
	Share   Percent // of the category's value
}

// CategoryValue is the aggregated current value of one category, with the
// per-asset breakdown.
type CategoryValue struct {
	CategoryID string
	Name       string
	Color      string
	Value      Money
	Share      Percent // of the portfolio's total value
	Assets     []CategoryAsset
}

// ComputeCategoryValues groups the current positions by category and
// values them at current prices. Assets with a zero position are skipped,
// and categories that end up empty are omitted entirely. Assets referring
// to an undeclared category are grouped under a synthetic "uncategorized"
// entry rather than dropped, so the category totals always sum to the
// portfolio total. Categories are sorted by value, descending; within a
// category, assets likewise.
func ComputeCategoryValues(categories []Category, assets []Asset, transactions []Transaction) []CategoryValue {
	declared := make(map[string]Category, len(categories))
	for _, c := range categories {
		declared[c.ID] = c
	}

	grouped := make(map[string]*CategoryValue)
	var total Money

	for _, asset := range assets {
		quantity := NetQuantity(asset.ID, transactions)
		if !quantity.IsPositive() {
			continue
		}
		value := asset.CurrentPrice.Mul(quantity)
		total = total.Add(value)

		id := asset.CategoryID
		cat, declaredOK := declared[id]
		if !declaredOK {
			id = "uncategorized"
			cat = Category{ID: id, Name: "Uncategorized"}
		}
		cv, ok := grouped[id]
		if !ok {
			cv = &CategoryValue{CategoryID: id, Name: cat.Name, Color: cat.Color}
			grouped[id] = cv
		}
		cv.Value = cv.Value.Add(value)
		cv.Assets = append(cv.Assets, CategoryAsset{
			AssetID: asset.ID,
			Ticker:  asset.Ticker,
			Value:   value,
		})
	}

	values := make([]CategoryValue, 0, len(grouped))
	for _, cv := range grouped {
		cv.Share = cv.Value.PercentOf(total)
		for i := range cv.Assets {
			cv.Assets[i].Share = cv.Assets[i].Value.PercentOf(cv.Value)
		}
		sort.SliceStable(cv.Assets, func(i, j int) bool {
			return cv.Assets[j].Value.LessThan(cv.Assets[i].Value)
		})
		values = append(values, *cv)
	}

	sort.SliceStable(values, func(i, j int) bool {
		if values[i].Value.Equal(values[j].Value) {
			return values[i].CategoryID < values[j].CategoryID
		}
		return values[j].Value.LessThan(values[i].Value)
	})

	return values
}
