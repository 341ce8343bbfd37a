package renderer

// RenderSummary renders the Summary struct to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title":  "summary_title.md",
		"summary_totals": "summary_totals.md",
		"summary_assets": "summary_assets.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
