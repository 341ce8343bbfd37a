package wealthtracker

import (
	"fmt"
	"time"
)

// ChartRange is one of the display windows a chart can be drawn over.
type ChartRange int

const (
	Range1M ChartRange = iota
	Range3M
	Range6M
	RangeYTD
	Range1Y
	Range5Y
	RangeAll
)

func (r ChartRange) String() string {
	switch r {
	case Range1M:
		return "1m"
	case Range3M:
		return "3m"
	case Range6M:
		return "6m"
	case RangeYTD:
		return "ytd"
	case Range1Y:
		return "1y"
	case Range5Y:
		return "5y"
	case RangeAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseChartRange parses a chart range name as written on the command line.
func ParseChartRange(s string) (ChartRange, error) {
	switch s {
	case "1m":
		return Range1M, nil
	case "3m":
		return Range3M, nil
	case "6m":
		return Range6M, nil
	case "ytd":
		return RangeYTD, nil
	case "1y":
		return Range1Y, nil
	case "5y":
		return Range5Y, nil
	case "all", "":
		return RangeAll, nil
	}
	return RangeAll, fmt.Errorf("unknown chart range %q, want 1m, 3m, 6m, ytd, 1y, 5y or all", s)
}

// window returns the date range and sampling granularity of a chart range.
// Short windows look one period back and ahead of today at weekly samples;
// longer ones at monthly samples. The ytd window runs from January 1st to
// today. The 5y window looks five years back and ahead at yearly samples,
// and the all window spans from the plan start to the objective horizon
// (or today when it reaches further), also at yearly samples.
func (r ChartRange) window(today, start Date, o ObjectiveParams) (Range, Period) {
	switch r {
	case Range1M:
		return NewRange(today.AddMonth(-1), today.AddMonth(1)), Weekly
	case Range3M:
		return NewRange(today.AddMonth(-3), today.AddMonth(3)), Weekly
	case Range6M:
		return NewRange(today.AddMonth(-6), today.AddMonth(6)), Monthly
	case RangeYTD:
		return NewRange(NewDate(today.Year(), time.January, 1), today), Monthly
	case Range1Y:
		return NewRange(today.AddMonth(-12), today.AddMonth(12)), Monthly
	case Range5Y:
		return NewRange(today.AddMonth(-60), today.AddMonth(60)), Yearly
	default:
		horizon := start.AddMonth(int(o.TargetYears * 12))
		if horizon.Before(today) {
			horizon = today
		}
		return NewRange(start, horizon), Yearly
	}
}

// ChartSeries holds the four series of the wealth chart, sampled on the
// same calendar grid. Reality stops at today; the other three extend over
// the whole window.
type ChartSeries struct {
	Reality   []ChartDataPoint `json:"reality"`
	Objective []ChartDataPoint `json:"objective"`
	Capital   []ChartDataPoint `json:"capital"`
	Interest  []ChartDataPoint `json:"interest"`
}

// yearsSince converts the span from 'start' to 'on' into fractional years.
// Dates before the start count as zero elapsed time.
func yearsSince(start, on Date) float64 {
	days := DaysBetween(start, on)
	if days <= 0 {
		return 0
	}
	return float64(days) / 365.25
}

// GenerateChartSeries samples the four chart series over the requested
// window, anchored on 'today'. 'start' is the day the savings plan began,
// usually the oldest transaction date.
//
// The objective, capital and interest series are theoretical curves built
// from the solved monthly payment alone: objective compounds the payments
// at the objective rate, capital is the same payments without interest,
// and interest is their difference, floored at zero. Current wealth sets
// the payment but does not shift the curves.
func GenerateChartSeries(r ChartRange, assets []Asset, transactions []Transaction, o ObjectiveParams, start, today Date) ChartSeries {
	window, period := r.window(today, start, o)
	grid := SampleGrid(window, period, today)

	currentWealth := WealthAt(today, assets, transactions).AsFloat()
	pmt := MonthlyPayment(currentWealth, o.TargetAmount, o.InterestRate, o.TargetYears)

	var series ChartSeries
	var objective History[float64]
	var capital History[float64]

	for _, on := range grid {
		if !on.After(today) {
			series.Reality = append(series.Reality, ChartDataPoint{
				Date:  on,
				Value: WealthAt(on, assets, transactions).AsFloat(),
			})
		}
		if o.IsZero() {
			continue
		}

		years := yearsSince(start, on)
		obj := FutureValue(0, pmt, o.InterestRate, years)
		invested := pmt * years * 12
		objective.Append(on, obj)
		capital.Append(on, invested)
		series.Objective = append(series.Objective, ChartDataPoint{Date: on, Value: obj})
		series.Capital = append(series.Capital, ChartDataPoint{Date: on, Value: invested})
	}

	// Interest is derived by date-keyed lookup, not by index, so a missing
	// sample in either curve cannot misalign the subtraction.
	for on, obj := range objective.Values() {
		invested, ok := capital.Get(on)
		if !ok {
			continue
		}
		earned := obj - invested
		if earned < 0 {
			earned = 0
		}
		series.Interest = append(series.Interest, ChartDataPoint{Date: on, Value: earned})
	}

	return series
}

// ObjectiveProjectionSeries samples the projected growth of the current
// wealth under the objective plan: monthly compounding of the starting
// wealth plus the solved monthly payment, from 'start' to the objective
// horizon. It returns nil when no objective is set.
func ObjectiveProjectionSeries(currentWealth float64, o ObjectiveParams, start Date) []ChartDataPoint {
	if o.IsZero() || o.TargetYears <= 0 {
		return nil
	}
	pmt := MonthlyPayment(currentWealth, o.TargetAmount, o.InterestRate, o.TargetYears)

	months := int(o.TargetYears * 12)
	points := make([]ChartDataPoint, 0, months+1)
	for m := 0; m <= months; m++ {
		on := start.AddMonth(m)
		points = append(points, ChartDataPoint{
			Date:  on,
			Value: FutureValue(currentWealth, pmt, o.InterestRate, float64(m)/12),
		})
	}
	return points
}
