package renderer

import (
	"fmt"
	"strings"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
)

// ChartMarkdown renders the chart series as a markdown report: one table
// for the reconstructed wealth, one for the projection curves. A terminal
// has no plotting surface, so the series are tabulated, not drawn.
func ChartMarkdown(window wealthtracker.ChartRange, s wealthtracker.ChartSeries, currency string) string {
	r := &chartRenderer{Builder: &strings.Builder{}, currency: currency}

	r.Printf("# Wealth Chart (%s)\n\n", window)
	r.renderReality(s.Reality)
	r.renderProjection(s)

	return r.String()
}

// chartRenderer formats chart series into markdown tables.
type chartRenderer struct {
	*strings.Builder
	currency string
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *chartRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *chartRenderer) amount(v float64) string {
	return wealthtracker.M(v, r.currency).String()
}

func (r *chartRenderer) renderReality(points []wealthtracker.ChartDataPoint) {
	ConditionalBlock(r.Builder, func(w *strings.Builder) bool {
		fmt.Fprintf(w, "## Wealth\n\n")
		fmt.Fprintf(w, "| Date | Value |\n")
		fmt.Fprintf(w, "|:---|---:|\n")
		for _, p := range points {
			fmt.Fprintf(w, "| %s | %s |\n", p.Date, r.amount(p.Value))
		}
		fmt.Fprintf(w, "\n")
		return len(points) > 0
	})
}

func (r *chartRenderer) renderProjection(s wealthtracker.ChartSeries) {
	ConditionalBlock(r.Builder, func(w *strings.Builder) bool {
		fmt.Fprintf(w, "## Objective\n\n")
		fmt.Fprintf(w, "| Date | Objective | Capital | Interest |\n")
		fmt.Fprintf(w, "|:---|---:|---:|---:|\n")
		for i, p := range s.Objective {
			capital, interest := "", ""
			if i < len(s.Capital) {
				capital = r.amount(s.Capital[i].Value)
			}
			if i < len(s.Interest) {
				interest = r.amount(s.Interest[i].Value)
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", p.Date, r.amount(p.Value), capital, interest)
		}
		fmt.Fprintf(w, "\n")
		return len(s.Objective) > 0
	})
}
