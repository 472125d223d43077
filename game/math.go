package game

import "math"

// Round rounds val to the given decimal precision.
func Round(val float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Round(val*p) / p
}

// ApproxEq reports whether a and b are within 1e-5 of each other, the
// tolerance the reference client's own movement reconciliation uses.
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-5
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
