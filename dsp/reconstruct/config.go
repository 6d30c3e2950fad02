package reconstruct

import "github.com/2lambda123/rss-ringoccs/dsp/window"

// Algorithm selects the reconstruction driver.
type Algorithm int

const (
	// AlgorithmNewton solves the stationary-phase azimuth per neighbor
	// using the circular geometry.
	AlgorithmNewton Algorithm = iota
	// AlgorithmNewtonPerturbed is Newton with an additive polynomial
	// perturbation on psi.
	AlgorithmNewtonPerturbed
	// AlgorithmNewtonElliptical is Newton using the elliptical-orbit
	// geometry in place of the circular one.
	AlgorithmNewtonElliptical
	// AlgorithmFresnel uses the closed-form quadratic approximation of
	// psi; needs no stationary-phase solve.
	AlgorithmFresnel
	// AlgorithmLegendre evaluates psi via a precomputed polynomial
	// expansion of configurable order (ReconstructionConfig.LegendreOrder).
	AlgorithmLegendre
	// AlgorithmSimpleFFT performs the reconstruction as a single
	// convolution via forward/inverse FFT.
	AlgorithmSimpleFFT
)

// String renders the algorithm name for logging.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNewton:
		return "Newton"
	case AlgorithmNewtonPerturbed:
		return "NewtonPerturbed"
	case AlgorithmNewtonElliptical:
		return "NewtonElliptical"
	case AlgorithmFresnel:
		return "Fresnel"
	case AlgorithmLegendre:
		return "Legendre"
	case AlgorithmSimpleFFT:
		return "SimpleFFT"
	default:
		return "Unknown"
	}
}

// ReconstructionConfig is the core's immutable per-call configuration,
// built via functional options.
type ReconstructionConfig struct {
	Res           float64
	WindowFamily  window.Type
	WindowAlpha   float64
	Algorithm     Algorithm
	LegendreOrder int

	UseNorm bool
	UseFwd  bool

	BFac  bool
	Sigma float64

	Perturb    [5]float64
	Ecc, Peri  float64
	Interp     int
	RangeLo    float64
	RangeHi    float64
	HasRange   bool
	MaxWorkers int
}

// ConfigOption configures a ReconstructionConfig.
type ConfigOption func(*ReconstructionConfig)

// NewConfig builds a ReconstructionConfig from options, applying the
// source's customary defaults: Newton algorithm, KB25 window, no range
// restriction (use the full input), no bounded worker pool
// (runtime.GOMAXPROCS(0) at call time).
func NewConfig(opts ...ConfigOption) ReconstructionConfig {
	cfg := ReconstructionConfig{
		WindowFamily:  window.KB25,
		WindowAlpha:   2.0,
		Algorithm:     AlgorithmNewton,
		LegendreOrder: 2,
		Interp:        0,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithResolution sets the target resolution in km.
func WithResolution(res float64) ConfigOption {
	return func(c *ReconstructionConfig) { c.Res = res }
}

// WithWindowFamily sets the window family and, for the arbitrary-alpha
// families, its alpha.
func WithWindowFamily(family window.Type, alpha float64) ConfigOption {
	return func(c *ReconstructionConfig) {
		c.WindowFamily = family
		if alpha > 0 {
			c.WindowAlpha = alpha
		}
	}
}

// WithAlgorithm sets the reconstruction driver directly.
func WithAlgorithm(a Algorithm) ConfigOption {
	return func(c *ReconstructionConfig) { c.Algorithm = a }
}

// WithLegendreOrder sets the Legendre-expansion order, used iff
// Algorithm is AlgorithmLegendre.
func WithLegendreOrder(order int) ConfigOption {
	return func(c *ReconstructionConfig) { c.LegendreOrder = order }
}

// WithUseNorm enables window-area self-normalization of the output.
func WithUseNorm(useNorm bool) ConfigOption {
	return func(c *ReconstructionConfig) { c.UseNorm = useNorm }
}

// WithUseFwd selects the forward (re-diffraction) transform in place of
// the reverse (reconstruction) transform.
func WithUseFwd(useFwd bool) ConfigOption {
	return func(c *ReconstructionConfig) { c.UseFwd = useFwd }
}

// WithBFac enables Allen's b-factor correction in width allocation, with
// the given Allen deviation sigma.
func WithBFac(sigma float64) ConfigOption {
	return func(c *ReconstructionConfig) {
		c.BFac = true
		c.Sigma = sigma
	}
}

// WithPerturb sets the additive polynomial coefficients on psi's
// expansion, selecting AlgorithmNewtonPerturbed when any is nonzero and
// the caller has not explicitly overridden Algorithm afterward.
func WithPerturb(perturb [5]float64) ConfigOption {
	return func(c *ReconstructionConfig) {
		c.Perturb = perturb
		for _, p := range perturb {
			if p != 0 {
				c.Algorithm = AlgorithmNewtonPerturbed
				break
			}
		}
	}
}

// WithEllipse sets the orbital-ellipse parameters, selecting
// AlgorithmNewtonElliptical when either is nonzero and the caller has
// not explicitly overridden Algorithm afterward.
func WithEllipse(ecc, peri float64) ConfigOption {
	return func(c *ReconstructionConfig) {
		c.Ecc = ecc
		c.Peri = peri
		if ecc != 0 || peri != 0 {
			c.Algorithm = AlgorithmNewtonElliptical
		}
	}
}

// WithInterp sets the window-width interpolation order (0, 2, 3, or 4).
func WithInterp(order int) ConfigOption {
	return func(c *ReconstructionConfig) { c.Interp = order }
}

// WithRange restricts reconstruction to the inclusive ring-radius window
// [lo, hi]; without this option the whole input is used.
func WithRange(lo, hi float64) ConfigOption {
	return func(c *ReconstructionConfig) {
		c.RangeLo, c.RangeHi = lo, hi
		c.HasRange = true
	}
}

// WithMaxWorkers bounds the per-output worker pool; 0 (the default)
// means runtime.GOMAXPROCS(0).
func WithMaxWorkers(n int) ConfigOption {
	return func(c *ReconstructionConfig) { c.MaxWorkers = n }
}
