package mathkernel

import "math"

// Sinc returns sin(x)/x, continuous at 0 with Sinc(0) == 1.
//
// This is the unnormalized sinc: the argument carries no factor of pi.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// Erf returns the error function.
//
// Delegates to the standard library: the original source computes
// Erf(x) as 1 - Erfc(x), itself a thin call into libm, so delegating here
// mirrors the original's own choice rather than replacing it.
func Erf(x float64) float64 {
	return math.Erf(x)
}

// Erfc returns the complementary error function, 1 - Erf(x).
func Erfc(x float64) float64 {
	return math.Erfc(x)
}
