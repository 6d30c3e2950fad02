// Package window provides the smoothing-kernel family used by the
// window-width planner and the reconstruction drivers: rectangular,
// squared-cosine, and Kaiser-Bessel (fixed and arbitrary alpha) windows
// and their "modified" variants, each a continuous real function of an
// offset x on support |x| <= W/2.
package window

import (
	"math"

	"github.com/2lambda123/rss-ringoccs/dsp/mathkernel"
)

// Type identifies a window family.
type Type int

const (
	// Rect is 1 on |x|<W/2, 0 outside.
	Rect Type = iota
	// Coss is the squared-cosine window, cos^2(pi*x/W) on |x|<=W/2.
	Coss
	// KB20 is Kaiser-Bessel with alpha=2.0.
	KB20
	// KB25 is Kaiser-Bessel with alpha=2.5.
	KB25
	// KB35 is Kaiser-Bessel with alpha=3.5.
	KB35
	// KBMD20 is the modified Kaiser-Bessel with alpha=2.0.
	KBMD20
	// KBMD25 is the modified Kaiser-Bessel with alpha=2.5.
	KBMD25
	// KBMD35 is the modified Kaiser-Bessel with alpha=3.5.
	KBMD35
	// KBAlpha is Kaiser-Bessel with a caller-supplied alpha (WithAlpha).
	KBAlpha
	// KBMDAlpha is the modified Kaiser-Bessel with a caller-supplied alpha.
	KBMDAlpha
)

// String renders the window family name for logging.
func (t Type) String() string {
	switch t {
	case Rect:
		return "Rect"
	case Coss:
		return "Coss"
	case KB20:
		return "KB20"
	case KB25:
		return "KB25"
	case KB35:
		return "KB35"
	case KBMD20:
		return "KBMD20"
	case KBMD25:
		return "KBMD25"
	case KBMD35:
		return "KBMD35"
	case KBAlpha:
		return "KBAlpha"
	case KBMDAlpha:
		return "KBMDAlpha"
	default:
		return "Unknown"
	}
}

// fixedAlpha returns the alpha baked into a fixed-alpha window type, and
// whether t is a fixed-alpha Kaiser-Bessel type at all.
func fixedAlpha(t Type) (float64, bool) {
	switch t {
	case KB20, KBMD20:
		return 2.0, true
	case KB25, KBMD25:
		return 2.5, true
	case KB35, KBMD35:
		return 3.5, true
	default:
		return 0, false
	}
}

// Option configures window evaluation.
type Option func(*config)

type config struct {
	alpha float64
}

func defaultConfig() config {
	return config{alpha: 2.0}
}

// WithAlpha sets the Kaiser-Bessel alpha parameter, used by KBAlpha and
// KBMDAlpha (ignored by fixed-alpha and non-Kaiser-Bessel types). Eval and
// Generate tolerate a non-positive alpha (evaluating it as given); use
// GenerateChecked to reject one instead.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		c.alpha = alpha
	}
}

func resolveConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Eval returns w(x, width) for the given window family, zero for
// |x| > width/2.
func Eval(t Type, x, width float64, opts ...Option) float64 {
	return evalWithConfig(t, x, width, resolveConfig(opts...))
}

// Generate evaluates w(x, width) at each offset in xs, returning a
// coefficient slice of the same length.
func Generate(t Type, xs []float64, width float64, opts ...Option) []float64 {
	out := make([]float64, len(xs))
	cfg := resolveConfig(opts...)
	for i, x := range xs {
		out[i] = evalWithConfig(t, x, width, cfg)
	}
	return out
}

// GenerateChecked behaves like Generate but validates width and, for the
// arbitrary-alpha families, the configured alpha, before evaluating.
// Eval/Generate stay silent (returning 0) so that
// downstream consumers that already validated upstream aren't forced to
// thread an error through every sample.
func GenerateChecked(t Type, xs []float64, width float64, opts ...Option) ([]float64, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	cfg := resolveConfig(opts...)
	if t == KBAlpha || t == KBMDAlpha {
		if err := validateAlpha(cfg.alpha); err != nil {
			return nil, err
		}
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = evalWithConfig(t, x, width, cfg)
	}
	return out, nil
}

func evalWithConfig(t Type, x, width float64, cfg config) float64 {
	if width <= 0 {
		return 0
	}
	if math.Abs(x) > width/2 {
		return 0
	}

	switch t {
	case Rect:
		return 1
	case Coss:
		return cossAt(x, width)
	case KB20, KB25, KB35:
		alpha, _ := fixedAlpha(t)
		return kaiserBesselAt(x, width, alpha)
	case KBMD20, KBMD25, KBMD35:
		alpha, _ := fixedAlpha(t)
		return modifiedKaiserBesselAt(x, width, alpha)
	case KBAlpha:
		return kaiserBesselAt(x, width, cfg.alpha)
	case KBMDAlpha:
		return modifiedKaiserBesselAt(x, width, cfg.alpha)
	default:
		return 0
	}
}

func cossAt(x, width float64) float64 {
	c := math.Cos(math.Pi * x / width)
	return c * c
}

// kaiserBesselAt evaluates I0(alpha*pi*sqrt(1-(2x/W)^2)) / I0(alpha*pi).
func kaiserBesselAt(x, width, alpha float64) float64 {
	if alpha == 0 {
		return 1 // step function, already gated to |x|<=W/2 by the caller
	}

	r := 2 * x / width
	arg := math.Sqrt(math.Max(0, 1-r*r))
	return mathkernel.I0(alpha*math.Pi*arg) / mathkernel.I0(alpha*math.Pi)
}

// modifiedKaiserBesselAt evaluates (I0(...)-1) / (I0(alpha*pi)-1).
func modifiedKaiserBesselAt(x, width, alpha float64) float64 {
	if alpha == 0 {
		return 1
	}

	r := 2 * x / width
	arg := math.Sqrt(math.Max(0, 1-r*r))
	num := mathkernel.I0(alpha*math.Pi*arg) - 1
	den := mathkernel.I0(alpha*math.Pi) - 1
	return num / den
}
