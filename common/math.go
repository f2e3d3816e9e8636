package common

import "math"

// Default logical resolution. The arena size comes from tuning; front-ends
// lay out their windows against these.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Finite maps NaN and ±Inf to 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFinite sanitizes an externally supplied value into [lo, hi].
func ClampFinite(v, lo, hi float64) float64 {
	return Clamp(Finite(v), lo, hi)
}
