package renderer

import (
	"fmt"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
)

// Plan is the renderable form of a solved savings objective.
type Plan struct {
	Target          string                `json:"target"`
	Years           string                `json:"years"`
	Rate            wealthtracker.Percent `json:"rate"`
	StartingWealth  string                `json:"startingWealth"`
	RequiredMonthly string                `json:"requiredMonthly"`
	ProjectedValue  string                `json:"projectedValue"`
	GrowthRate      wealthtracker.Percent `json:"growthRate"`
	Achieved        bool                  `json:"achieved"`
}

// NewPlan creates a renderable Plan from a solved objective projection.
// All amounts are in the ledger currency.
func NewPlan(p wealthtracker.ObjectiveProjection, currency string) *Plan {
	amount := func(v float64) string {
		return wealthtracker.M(v, currency).String()
	}
	return &Plan{
		Target:          amount(p.Objective.TargetAmount),
		Years:           fmt.Sprintf("%g", p.Objective.TargetYears),
		Rate:            p.Objective.InterestRate,
		StartingWealth:  amount(p.StartingWealth),
		RequiredMonthly: amount(p.RequiredMonthly),
		ProjectedValue:  amount(p.ProjectedValue),
		GrowthRate:      p.GrowthRate,
		Achieved:        p.Achieved,
	}
}

// RenderPlan renders the Plan struct to a markdown string.
func RenderPlan(p *Plan) string {
	partials := map[string]string{
		"projection_title": "projection_title.md",
		"projection_plan":  "projection_plan.md",
	}
	return renderTemplate("projection", "projection.md", partials, p)
}
