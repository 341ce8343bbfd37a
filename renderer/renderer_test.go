package renderer

import (
	"strings"
	"testing"

	wealthtracker "github.com/TitouanLeBrun/wealthtracker-sub001"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func EUR(v float64) wealthtracker.Money { return wealthtracker.M(v, "EUR") }

// headings parses a rendered markdown string and returns its heading texts,
// in order. Rendering bugs that break the document structure (an unclosed
// table, a heading glued to a paragraph) surface here.
func headings(t *testing.T, source string) []string {
	t.Helper()
	content := []byte(source)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(content))
				}
			}
			found = append(found, b.String())
		}
		return ast.WalkContinue, nil
	})
	return found
}

func testMetrics() wealthtracker.PortfolioMetrics {
	assets := []wealthtracker.Asset{
		wealthtracker.NewAsset("btc", "BTC", "Bitcoin", "crypto", EUR(50000)),
	}
	transactions := []wealthtracker.Transaction{
		wealthtracker.NewBuy(wealthtracker.MustParseDate("2023-01-01"), "", "btc", wealthtracker.Q(0.5), EUR(40000), EUR(50)),
		wealthtracker.NewBuy(wealthtracker.MustParseDate("2023-06-01"), "", "btc", wealthtracker.Q(0.3), EUR(45000), EUR(30)),
	}
	return wealthtracker.ComputePortfolioMetrics(assets, transactions)
}

func TestRenderSummary(t *testing.T) {
	s := NewSummary(wealthtracker.MustParseDate("2025-06-15"), testMetrics())
	got := RenderSummary(s)

	if strings.Contains(got, "error") {
		t.Fatalf("RenderSummary() returned a template error:\n%s", got)
	}

	hs := headings(t, got)
	if len(hs) < 2 || !strings.Contains(hs[0], "Portfolio Summary on 2025-06-15") || hs[1] != "Assets" {
		t.Errorf("headings = %v, want the summary title then Assets", hs)
	}

	for _, want := range []string{"€40,000.00", "€33,580.00", "+€6,420.00", "| BTC |", "0.8"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSummary() output does not contain %q:\n%s", want, got)
		}
	}
}

func TestRenderSummary_EmptyPortfolio(t *testing.T) {
	s := NewSummary(wealthtracker.MustParseDate("2025-06-15"), wealthtracker.PortfolioMetrics{})
	got := RenderSummary(s)

	if strings.Contains(got, "error") {
		t.Fatalf("RenderSummary() returned a template error:\n%s", got)
	}
	// No asset section without assets.
	for _, h := range headings(t, got) {
		if h == "Assets" {
			t.Errorf("empty portfolio still renders an Assets section:\n%s", got)
		}
	}
}

func TestRenderBreakdown(t *testing.T) {
	values := []wealthtracker.CategoryValue{
		{
			CategoryID: "crypto", Name: "Crypto", Value: EUR(40000), Share: 80,
			Assets: []wealthtracker.CategoryAsset{
				{AssetID: "btc", Ticker: "BTC", Value: EUR(25000), Share: 62.5},
				{AssetID: "eth", Ticker: "ETH", Value: EUR(15000), Share: 37.5},
			},
		},
		{
			CategoryID: "etf", Name: "ETF", Value: EUR(10000), Share: 20,
			Assets: []wealthtracker.CategoryAsset{
				{AssetID: "cw8", Ticker: "CW8", Value: EUR(10000), Share: 100},
			},
		},
	}

	got := RenderBreakdown(NewBreakdown(wealthtracker.MustParseDate("2025-06-15"), values))

	if strings.Contains(got, "error") {
		t.Fatalf("RenderBreakdown() returned a template error:\n%s", got)
	}

	hs := headings(t, got)
	want := []string{"Allocation by Category on 2025-06-15", "Crypto: €40,000.00 (80.00%)", "ETF: €10,000.00 (20.00%)"}
	if len(hs) != len(want) {
		t.Fatalf("headings = %v, want %v", hs, want)
	}
	for i := range want {
		if hs[i] != want[i] {
			t.Errorf("headings[%d] = %q, want %q", i, hs[i], want[i])
		}
	}

	if !strings.Contains(got, "**€50,000.00**") {
		t.Errorf("total value missing from output:\n%s", got)
	}
	if !strings.Contains(got, "| ETH | €15,000.00 | 37.50% |") {
		t.Errorf("asset row missing from output:\n%s", got)
	}
}

func TestRenderPlan(t *testing.T) {
	o := wealthtracker.ObjectiveParams{TargetAmount: 100000, TargetYears: 10, InterestRate: 5}
	p := wealthtracker.ProjectObjective(o, 20000)

	got := RenderPlan(NewPlan(p, "EUR"))

	if strings.Contains(got, "error") {
		t.Fatalf("RenderPlan() returned a template error:\n%s", got)
	}
	for _, want := range []string{"**€100,000.00** in 10 years at 5.00% yearly", "€20,000.00", "Required Monthly Savings"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderPlan() output does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "no monthly contribution") {
		t.Errorf("underfunded plan claims to be achieved:\n%s", got)
	}

	rich := RenderPlan(NewPlan(wealthtracker.ProjectObjective(o, 90000), "EUR"))
	if !strings.Contains(rich, "no monthly contribution") {
		t.Errorf("overfunded plan does not say so:\n%s", rich)
	}
}

func TestChartMarkdown(t *testing.T) {
	day := wealthtracker.MustParseDate
	series := wealthtracker.ChartSeries{
		Reality: []wealthtracker.ChartDataPoint{
			{Date: day("2025-05-31"), Value: 1000},
			{Date: day("2025-06-15"), Value: 1500},
		},
		Objective: []wealthtracker.ChartDataPoint{
			{Date: day("2025-05-31"), Value: 1200},
			{Date: day("2025-06-30"), Value: 1400},
		},
		Capital: []wealthtracker.ChartDataPoint{
			{Date: day("2025-05-31"), Value: 1100},
			{Date: day("2025-06-30"), Value: 1200},
		},
		Interest: []wealthtracker.ChartDataPoint{
			{Date: day("2025-05-31"), Value: 100},
			{Date: day("2025-06-30"), Value: 200},
		},
	}

	got := ChartMarkdown(wealthtracker.Range1M, series, "EUR")

	hs := headings(t, got)
	want := []string{"Wealth Chart (1m)", "Wealth", "Objective"}
	if len(hs) != len(want) {
		t.Fatalf("headings = %v, want %v", hs, want)
	}
	if !strings.Contains(got, "| 2025-06-15 | €1,500.00 |") {
		t.Errorf("reality row missing:\n%s", got)
	}
	if !strings.Contains(got, "| 2025-06-30 | €1,400.00 | €1,200.00 | €200.00 |") {
		t.Errorf("projection row missing:\n%s", got)
	}

	// Empty series render no section at all.
	empty := ChartMarkdown(wealthtracker.Range1M, wealthtracker.ChartSeries{}, "EUR")
	if hs := headings(t, empty); len(hs) != 1 {
		t.Errorf("empty chart headings = %v, want only the title", hs)
	}
}
