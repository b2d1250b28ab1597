package utils

import (
	"math"
	"math/rand"
)

// RandomIntInRange returns a random integer between min and max (inclusive)
// drawn from r.
func RandomIntInRange(r *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return r.Intn(max-min+1) + min
}

// SaturatingBoost maps x >= 0 onto [0, 1) with diminishing returns.
// It rises steeply near zero and approaches 1 as x grows.
func SaturatingBoost(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 - math.Exp(-x)
}

// Overlap returns the length of the intersection of [a0, a1] and [b0, b1].
func Overlap(a0, a1, b0, b1 float64) float64 {
	lo := math.Max(a0, b0)
	hi := math.Min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
