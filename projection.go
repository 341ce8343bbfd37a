package wealthtracker

import "math"

// The projection solver works on float64. Projections are estimates over
// years of compounding; decimal exactness buys nothing there, and math.Pow
// has no decimal counterpart.

// FutureValue returns the value of a principal 'pv' after 'years' of
// compounding at the annual 'rate', with a fixed 'pmt' contributed at the
// end of each month. The principal compounds annually, the contributions
// monthly at rate/12, the standard annuity convention.
func FutureValue(pv, pmt float64, rate Percent, years float64) float64 {
	if years <= 0 {
		return pv
	}
	r := float64(rate) / 100
	if r == 0 {
		return pv + pmt*12*years
	}
	principal := pv * math.Pow(1+r, years)
	monthly := r / 12
	annuity := pmt * (math.Pow(1+monthly, 12*years) - 1) / monthly
	return principal + annuity
}

// MonthlyPayment inverts FutureValue: the fixed monthly contribution that
// grows a principal 'pv' into 'target' over 'years' at the annual 'rate'.
// It returns 0 when the horizon is not positive or when the principal
// alone already overshoots the target.
func MonthlyPayment(pv, target float64, rate Percent, years float64) float64 {
	if years <= 0 {
		return 0
	}
	r := float64(rate) / 100
	if r == 0 {
		pmt := (target - pv) / (12 * years)
		return math.Max(pmt, 0)
	}
	remaining := target - pv*math.Pow(1+r, years)
	if remaining <= 0 {
		return 0
	}
	monthly := r / 12
	return remaining * monthly / (math.Pow(1+monthly, 12*years) - 1)
}

// CAGR returns the compound annual growth rate that turns 'begin' into
// 'end' over 'years', as a Percent. It returns 0 when 'begin' or 'years'
// is not positive: an annualized rate from nothing is meaningless.
func CAGR(begin, end float64, years float64) Percent {
	if begin <= 0 || years <= 0 {
		return 0
	}
	return Percent(100 * (math.Pow(end/begin, 1/years) - 1))
}

// ObjectiveProjection is the solved savings plan for an objective, given
// the wealth already accumulated.
type ObjectiveProjection struct {
	Objective       ObjectiveParams
	StartingWealth  float64
	RequiredMonthly float64 // fixed monthly contribution to reach the target
	ProjectedValue  float64 // end value with that contribution
	GrowthRate      Percent // CAGR from starting wealth to the target
	Achieved        bool    // compounding alone reaches the target, no contribution needed
}

// ProjectObjective solves the savings plan for the objective: the monthly
// contribution needed to grow the current wealth into the target amount
// over the objective horizon at the objective rate.
func ProjectObjective(o ObjectiveParams, currentWealth float64) ObjectiveProjection {
	pmt := MonthlyPayment(currentWealth, o.TargetAmount, o.InterestRate, o.TargetYears)
	return ObjectiveProjection{
		Objective:       o,
		StartingWealth:  currentWealth,
		RequiredMonthly: pmt,
		ProjectedValue:  FutureValue(currentWealth, pmt, o.InterestRate, o.TargetYears),
		GrowthRate:      CAGR(currentWealth, o.TargetAmount, o.TargetYears),
		Achieved:        o.TargetYears > 0 && FutureValue(currentWealth, 0, o.InterestRate, o.TargetYears) >= o.TargetAmount,
	}
}
