package wealthtracker

// Calendar sampling utilities. Charts never sample on arbitrary dates:
// samples sit on period boundaries, except the in-progress period which is
// sampled on 'today'. Month-end and current-period truncation live here so
// they can be tested on their own.

// SampleGrid returns the sample dates covering the range at the given
// granularity. Each sample is the end of its period, clamped to the range.
// The period containing 'today' is sampled on 'today' itself, so the last
// real sample is never a date that has not happened yet.
func SampleGrid(r Range, period Period, today Date) []Date {
	var grid []Date
	for on := r.From; !on.After(r.To); {
		end := on.EndOf(period)
		sample := end
		if !today.Before(on) && today.Before(end) {
			// in-progress period
			sample = today
		}
		if sample.After(r.To) {
			sample = r.To
		}
		if n := len(grid); n == 0 || grid[n-1].Before(sample) {
			grid = append(grid, sample)
		}
		on = end.Add(1)
	}
	return grid
}
