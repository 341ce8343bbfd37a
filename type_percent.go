package wealthtracker

import "fmt"

// Percent is a percentage expressed as a plain number (8 means 8%).
type Percent float64

// Equal compares two percents with a fixed precision, since they usually
// come out of float arithmetic.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
