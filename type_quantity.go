package wealthtracker

import "github.com/shopspring/decimal"

// quantityPlaces is the number of decimal places a quantity is reported
// with. Magnitudes below 1e-8 are treated as exactly zero, absorbing any
// residue left by fractional share arithmetic.
const quantityPlaces = 8

// epsilon is the zero threshold for quantities: 1e-8.
var epsilon = decimal.New(1, -quantityPlaces)

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of shares or units of an asset. It wraps an
// arbitrary-precision decimal so that repeated addition and subtraction of
// fractional quantities stays exact.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from any numeric value.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// Normalize rounds the quantity to 8 decimal places. It is idempotent:
// Normalize(Normalize(q)) == Normalize(q).
func (q Quantity) Normalize() Quantity {
	return Quantity{value: q.value.Round(quantityPlaces)}
}

// IsZero reports whether the quantity is below the 1e-8 zero threshold in
// magnitude.
func (q Quantity) IsZero() bool { return q.value.Abs().LessThan(epsilon) }

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() && !q.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() && !q.IsZero() }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity     { return Quantity{value: q.value.Mul(p.value)} }

// Div returns q/p, or zero when p is epsilon-zero. The engine never
// produces a non-finite ratio.
func (q Quantity) Div(p Quantity) Quantity {
	if p.IsZero() {
		return Quantity{}
	}
	return Quantity{value: q.value.Div(p.value)}
}

// AsFloat returns the nearest float64 representation, for display and for
// the float-based projection solver.
func (q Quantity) AsFloat() float64 { return q.value.InexactFloat64() }

func (q Quantity) String() string { return q.value.String() }

// MarshalJSON implements json.Marshaler for Quantity.
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }

// UnmarshalJSON implements json.Unmarshaler for Quantity.
func (q *Quantity) UnmarshalJSON(data []byte) error { return q.value.UnmarshalJSON(data) }
