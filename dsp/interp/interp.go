package interp

// LagrangeInterpolator provides configurable fixed-order interpolation
// over a small stencil of samples, used by the window-width planner to
// evaluate width between precomputed pivots.
type LagrangeInterpolator struct {
	order int
}

// NewLagrangeInterpolator creates an interpolator.
// order: 0 = nearest pivot (no interpolation), 2 = quadratic, 3 = cubic
// (Hermite-style 4-point), 4 = quartic 5-point. Any other value panics,
// since order validity is a planner-construction-time invariant, not a
// per-call one (callers validate against {0,2,3,4} before reaching here).
func NewLagrangeInterpolator(order int) *LagrangeInterpolator {
	switch order {
	case 0, 2, 3, 4:
	default:
		panic("interp: unsupported order")
	}
	return &LagrangeInterpolator{order: order}
}

// Order returns the configured interpolation order.
func (l *LagrangeInterpolator) Order() int {
	return l.order
}

// Interpolate interpolates around frac in [0,1] between samples[center]
// and samples[center+1], where center is chosen so the stencil required
// by the configured order is centered as closely as possible.
//
// Required stencil length: order 0 needs 1 sample, order 2 needs 3,
// order 3 needs 4, order 4 needs 5. If samples is shorter than required,
// Interpolate falls back to the next cheaper order it can support.
func (l *LagrangeInterpolator) Interpolate(samples []float64, frac float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	switch l.order {
	case 0:
		return nearest(samples, frac)
	case 2:
		if len(samples) < 3 {
			return linear(samples, frac)
		}
		return quadratic3(samples[0], samples[1], samples[2], frac)
	case 3:
		if len(samples) < 4 {
			return linear(samples, frac)
		}
		return Hermite4(frac, samples[0], samples[1], samples[2], samples[3])
	case 4:
		if len(samples) < 5 {
			if len(samples) >= 4 {
				return Hermite4(frac, samples[0], samples[1], samples[2], samples[3])
			}
			return linear(samples, frac)
		}
		return quartic5(samples[0], samples[1], samples[2], samples[3], samples[4], frac)
	default:
		return linear(samples, frac)
	}
}

func nearest(samples []float64, frac float64) float64 {
	if frac < 0.5 || len(samples) == 1 {
		return samples[0]
	}
	return samples[min(1, len(samples)-1)]
}

func linear(samples []float64, frac float64) float64 {
	if len(samples) < 2 {
		return samples[0]
	}
	return samples[0] + frac*(samples[1]-samples[0])
}

// quadratic3 fits a parabola through three equally spaced points
// (x0, x1, x2) and evaluates at t in [0,1] between x0 and x1.
func quadratic3(x0, x1, x2, t float64) float64 {
	// Lagrange basis on nodes {-1, 0, 1} mapped to samples {x0, x1, x2},
	// evaluated at u = t - 1 relative to the center node x1, then shifted
	// so t=0 -> x0, t=1 -> x1.
	u := t - 1
	l0 := 0.5 * u * (u - 1)
	l1 := (u + 1) * (1 - u)
	l2 := 0.5 * u * (u + 1)
	return l0*x0 + l1*x1 + l2*x2
}

// quartic5 fits a quartic through five equally spaced points and
// evaluates at t in [0,1] between x1 and x2 (the central interval),
// matching Hermite4's convention of interpolating the middle segment.
func quartic5(xm1, x0, x1, x2, x3, t float64) float64 {
	// Nodes at {-2,-1,0,1,2} for {xm1,x0,x1,x2,x3}; evaluate at u = t
	// relative to x1 so t=0 -> x1, t=1 -> x2, matching Hermite4's segment.
	u := t
	l := func(xi float64, nodes [5]float64, skip int) float64 {
		num := 1.0
		den := 1.0
		for i, n := range nodes {
			if i == skip {
				continue
			}
			num *= u - n
			den *= xi - n
		}
		return num / den
	}
	nodes := [5]float64{-2, -1, 0, 1, 2}
	vals := [5]float64{xm1, x0, x1, x2, x3}
	out := 0.0
	for i := range vals {
		out += vals[i] * l(nodes[i], nodes, i)
	}
	return out
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
