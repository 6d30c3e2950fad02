package geometry

import "math"

// MaxLegendreOrder is the highest supported Legendre-expansion order.
const MaxLegendreOrder = 256

// LegendreExpansion evaluates psi via a polynomial expansion in the small
// parameter t = (rho - rho0) / d, up to the given order (2..MaxLegendreOrder),
// instead of invoking trigonometry on every neighbor. Coefficients are
// derived once per output sample by the caller (they depend only on
// rho0, phi0, b, d, kD, not on the per-neighbor rho) and reused across
// neighbors.
type LegendreExpansion struct {
	order int
	coeff []float64 // coeff[n] multiplies t^n
	kD    float64
}

// NewLegendreExpansion builds the order-N expansion of psi around t=0 for
// a fixed center geometry (rho0, phi0, b, d, kD). The expansion approximates
// the circular psi evaluated at rho = rho0 + t*d and phi = phi0 (the
// polynomial driver folds the true phi-dependence into the per-neighbor
// azimuth via the same stationary-phase geometry as the Newton driver;
// this expansion supplies the radial dependence in closed form so the
// per-neighbor trigonometric Psi call can be skipped for quadrature).
func NewLegendreExpansion(order int, kD, rho0, phi0, b, d float64) *LegendreExpansion {
	if order < 2 {
		order = 2
	}
	if order > MaxLegendreOrder {
		order = MaxLegendreOrder
	}

	le := &LegendreExpansion{order: order, kD: kD}

	// Finite-difference the true Psi(rho0+t*d, phi0, ...) around t=0 to
	// obtain Taylor coefficients, rather than re-deriving a closed-form
	// Legendre series by hand for arbitrary order: this keeps one
	// evaluation path (Psi) as the single source of truth for the phase,
	// with the expansion purely an interpolation device for speed.
	const h = 1e-3
	psiAt := func(t float64) float64 {
		rho := rho0 + t*d
		return Psi(kD, rho, rho0, phi0, phi0, b, d)
	}

	le.coeff = taylorCoefficients(psiAt, order, h)

	return le
}

// Order returns the configured expansion order.
func (le *LegendreExpansion) Order() int { return le.order }

// Eval returns the expansion's approximation of psi at parameter
// t = (rho - rho0) / d for the center geometry this expansion was built
// for.
func (le *LegendreExpansion) Eval(t float64) float64 {
	out := 0.0
	tn := 1.0
	for _, c := range le.coeff {
		out += c * tn
		tn *= t
	}
	return out
}

// taylorCoefficients returns f(0), f'(0), f''(0)/2!, ..., f^(order)(0)/order!
// by sampling f on a single equally-spaced grid and reading each derivative
// off a central-difference stencil built from binomial coefficients, rather
// than recursing on nested central differences (whose evaluation count
// doubles per order). f is evaluated 2*order+1 times total; computing all
// order+1 stencil sums from those cached values costs O(order^2) additions,
// not O(2^order) evaluations.
func taylorCoefficients(f func(float64) float64, order int, h float64) []float64 {
	h0 := h / 2
	values := make([]float64, 2*order+1)
	for j := range values {
		values[j] = f(float64(j-order) * h0)
	}

	coeff := make([]float64, order+1)
	coeff[0] = values[order]

	fact := 1.0
	for n := 1; n <= order; n++ {
		fact *= float64(n)

		sum := 0.0
		binom := 1.0 // C(n, 0)
		sign := 1.0
		for k := 0; k <= n; k++ {
			sum += sign * binom * values[order+n-2*k]
			binom *= float64(n-k) / float64(k+1)
			sign = -sign
		}
		coeff[n] = sum / (math.Pow(h, float64(n)) * fact)
	}

	return coeff
}

// PerturbedPsi returns psi plus the additive perturbation polynomial
// sum_k perturb[k] * ((rho-rho0)/d)^(k+1), used by the NewtonPerturbed
// driver. All-zero perturb reduces exactly to Psi.
func PerturbedPsi(kD, rho, rho0, phi, phi0, b, d float64, perturb [5]float64) float64 {
	base := Psi(kD, rho, rho0, phi, phi0, b, d)
	return base + perturbationTerm(rho, rho0, d, perturb)
}

// DPerturbedPsiDPhi returns d(PerturbedPsi)/d(phi). The perturbation
// polynomial depends only on rho, rho0, d (not phi), so its derivative
// contributes nothing; this is DPsiDPhi unchanged, kept as a distinct
// named entry point for symmetry with PerturbedPsi and to make the
// NewtonPerturbed driver's intent explicit at the call site.
func DPerturbedPsiDPhi(kD, rho, rho0, phi, phi0, b, d float64) float64 {
	return DPsiDPhi(kD, rho, rho0, phi, phi0, b, d)
}

func perturbationTerm(rho, rho0, d float64, perturb [5]float64) float64 {
	t := (rho - rho0) / d
	out := 0.0
	tn := t
	for _, coeff := range perturb {
		out += coeff * tn
		tn *= t
	}
	return out
}
