// Package numeric holds the small floating-point helpers shared by the
// resolver, the distribution algorithm and the store.
//
// Sizes are percentages of a fixed budget and are recomputed on every
// pointer-move event, so every committed value is rounded to [Precision]
// decimal digits and comparisons go through [IsZero] and [Equal] instead of
// ==.
package numeric

import "math"

const (
	// Precision is the number of decimal digits kept on committed sizes.
	Precision = 4

	// Epsilon is the threshold under which a budget is considered spent.
	Epsilon = 1e-6

	// Tolerance is used for aggregate checks such as "sizes sum to the
	// total", where each term may carry up to half a unit of rounding.
	Tolerance = 1e-3
)

var scale = math.Pow10(Precision)

// RoundTo rounds v to the given number of decimal digits, half away from zero.
func RoundTo(v float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

// Round rounds v to [Precision] digits.
func Round(v float64) float64 {
	return math.Round(v*scale) / scale
}

// RoundAll rounds every element of vs in place and returns vs.
func RoundAll(vs []float64) []float64 {
	for i, v := range vs {
		vs[i] = Round(v)
	}
	return vs
}

// Clamp limits v to [lo, hi]. When lo > hi the lower bound wins, matching a
// min-then-max evaluation order.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// IsZero reports whether |v| is below [Epsilon].
func IsZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Equal reports whether a and b differ by less than tol.
func Equal(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// Sum adds up vs.
func Sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}
	return total
}
