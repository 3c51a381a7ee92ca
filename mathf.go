package gmath

import "math"

// ZeroTolerance is the magnitude below which a float32 value is treated as
// zero by IsZero and the vector Normalize methods.
const ZeroTolerance = 1e-6

// The library stores float32 but evaluates transcendental functions in
// float64 and rounds once, which keeps results stable across platforms.

func sqrtf(x float32) float32 { return float32(math.Sqrt(float64(x))) }
func sinf(x float32) float32  { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32  { return float32(math.Cos(float64(x))) }
func tanf(x float32) float32  { return float32(math.Tan(float64(x))) }
func asinf(x float32) float32 { return float32(math.Asin(float64(x))) }

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// IsZero reports whether |x| is below ZeroTolerance.
func IsZero(x float32) bool {
	return absf(x) < ZeroTolerance
}

// NearEqual reports whether a and b differ by at most epsilon.
func NearEqual(a, b, epsilon float32) bool {
	return absf(a-b) <= epsilon
}
