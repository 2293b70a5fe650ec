package utils

import (
	"cmp"
	"math"
	"math/rand/v2"
)

// RandomInt draws uniformly from [lo, hi]. If hi <= lo it returns lo.
func RandomInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1) //nolint:gosec // exploration rolls, not secrets
}

// Clamp bounds v to [lo, hi]. An inverted range collapses to lo.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
