// Package rounding rounds computed dimensions to practical construction
// increments.
package rounding

import "math"

// Construction increments (mm)
const (
	HeightIncrement  = 50.0
	WidthIncrement   = 25.0
	SpacingIncrement = 25.0
)

// eps absorbs floating point noise such as 349.99999999999994 / 50.
const eps = 1e-9

// Advance rounds x up to the next multiple of inc, always adding at least one
// increment: 312.5 → 350 and also 300 → 350 for inc = 50.
func Advance(x, inc float64) float64 {
	return math.Floor(x/inc+eps+1) * inc
}

// Ceil rounds x up to the nearest multiple of inc. Exact multiples are kept.
func Ceil(x, inc float64) float64 {
	return math.Ceil(x/inc-eps) * inc
}

// Floor rounds x down to the nearest multiple of inc.
func Floor(x, inc float64) float64 {
	return math.Floor(x/inc+eps) * inc
}

// AtLeast returns x, or min when x is below it.
func AtLeast(x, min float64) float64 {
	if x < min {
		return min
	}
	return x
}

// Clamp limits x to [lo, hi]. When lo > hi, hi wins.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x
}

// CeilCount returns the smallest whole count of units of size unit covering
// total, never less than min.
func CeilCount(total, unit float64, min int) int {
	if unit <= 0 || total <= 0 {
		return min
	}
	n := int(math.Ceil(total/unit - eps))
	if n < min {
		return min
	}
	return n
}
