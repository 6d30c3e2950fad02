package mathkernel

import "math"

// rcprEulerE is -1/e, the branch point of the principal Lambert W branch.
const rcprEulerE = -0.36787944117144232159552377016146086744581113103176804

const lambertWEps = 1e-8

// LambertW returns the principal branch of the Lambert W function: the
// inverse of x*e^x for x >= -1/e. Returns NaN below that domain, -1 at
// the branch point, and +Inf at +Inf.
//
// Iteration grounded exactly on the original source's Halley's-method
// implementation (single float64 path; the original's per-integer-type
// dispatch overloads, including an unreachable unsigned-long-long branch,
// collapse here to this one function).
func LambertW(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x == rcprEulerE:
		return -1
	case x < rcprEulerE:
		return math.NaN()
	case math.IsInf(x, 1):
		return math.Inf(1)
	}

	var x0 float64
	if x > 2 {
		x0 = math.Log(x / math.Log(x))
	} else {
		x0 = x
	}

	for i := 0; i < 100; i++ {
		ex0 := math.Exp(x0)
		x0ex0 := x0 * ex0
		num := x0ex0 - x
		den := ex0*(x0+1) - (x0+2)*num/(2*x0+2)
		dx := num / den

		x0 -= dx
		if math.Abs(dx) <= lambertWEps {
			break
		}
	}

	return x0
}

// ResolutionInverse returns the inverse of y = x/(e^{-x} + x - 1).
//
// NaN for x <= 1; 0 at x == +Inf; otherwise computed via LambertW, exactly
// grounded on the original source's Resolution_Inverse implementation.
func ResolutionInverse(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x <= 1:
		return math.NaN()
	case math.IsInf(x, 1):
		return 0
	}

	p1 := x / (1 - x)
	p2 := p1 * math.Exp(p1)
	return LambertW(p2) - p1
}
