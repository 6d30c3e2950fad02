package planner

import (
	"fmt"
	"math"

	"github.com/2lambda123/rss-ringoccs/dsp/interp"
	"github.com/2lambda123/rss-ringoccs/dsp/mathkernel"
	"github.com/2lambda123/rss-ringoccs/dsp/window"
)

// equivalentWidthSampleDx is the sampling step used to numerically
// integrate a window family's normalized equivalent width. The result is
// scale-invariant (w(x, W) depends only on x/W), so it is computed once
// over a unit-width reference support rather than per output sample.
const equivalentWidthSampleDx = 1e-4

// EquivalentWidth returns a window family's normalized equivalent width
// eta, used to translate a requested resolution into a physical window
// width (step 1 of the width-planning algorithm).
func EquivalentWidth(family window.Type, opts ...window.Option) (float64, error) {
	xs := window.SampleOffsets(1, equivalentWidthSampleDx)
	w := window.Generate(family, xs, 1, opts...)
	return window.NormalizedEquivalentWidth(w, equivalentWidthSampleDx)
}

// Result holds the per-output window width (km) and point count produced
// by Plan, index-aligned with the Fresnel-scale input.
type Result struct {
	WKm  []float64
	NPts []int
}

// Params collects the planner's tunable inputs beyond the per-sample
// Fresnel scale itself.
type Params struct {
	Res         float64
	DeltaRho    float64
	Family      window.Type
	WindowOpts  []window.Option
	BFac        bool
	Sigma       float64
	AngularFreq float64 // 2*pi*FSkyHz; required iff BFac
	InterpOrder int      // 0 = exact recompute at every sample
}

// Plan computes w_km[i] and n_pts[i] for every i in fKm, per the
// five-step width-planning algorithm: normalized equivalent width,
// resolution-to-width conversion (optionally Allen-b-factor-corrected),
// odd point-count rounding, and rejection of any window with more points
// than fKm has samples. Plan is not told which samples are outputs, so it
// does not reject a window centered near either end of fKm that runs past
// that end; dsp/reconstruct.Run checks that for its resolved output range.
func Plan(fKm []float64, p Params) (Result, error) {
	n := len(fKm)
	if n == 0 {
		return Result{}, ErrEmptyInput
	}
	if p.Res <= 2*p.DeltaRho {
		return Result{}, ErrResolutionTooFine
	}
	if p.BFac && !(p.AngularFreq > 0) {
		return Result{}, ErrMissingAngularFrequency
	}

	eta, err := EquivalentWidth(p.Family, p.WindowOpts...)
	if err != nil {
		return Result{}, err
	}

	var wKm []float64
	if p.InterpOrder <= 0 {
		wKm, err = exactWidths(fKm, p, eta)
	} else {
		wKm, err = pivotWidths(fKm, p, eta)
	}
	if err != nil {
		return Result{}, err
	}

	nPts := make([]int, n)
	for i, w := range wKm {
		np := widthToPointCount(w, p.DeltaRho)
		nPts[i] = np
		if np > n {
			return Result{}, fmt.Errorf("%w: index %d (n_pts=%d, n=%d)", ErrInfeasibleWidth, i, np, n)
		}
	}

	return Result{WKm: wKm, NPts: nPts}, nil
}

func exactWidths(fKm []float64, p Params, eta float64) ([]float64, error) {
	out := make([]float64, len(fKm))
	for i, f := range fKm {
		w, err := widthAt(f, p, eta)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// widthAt computes the planned width for a single Fresnel scale value,
// per steps 2-3 of the algorithm, clamped unconditionally to the
// w >= 2*deltaRho floor.
func widthAt(f float64, p Params, eta float64) (float64, error) {
	if !(f > 0) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrNonFiniteFresnelScale
	}

	w := 2 * f * f * eta / p.Res
	if p.BFac {
		b := (p.AngularFreq * p.Sigma) * (p.AngularFreq * p.Sigma) / (2 * f * f)
		allen, err := allenWidth(p.Res, f, b)
		if err != nil {
			return 0, err
		}
		w = allen
	}

	if w < 2*p.DeltaRho {
		w = 2 * p.DeltaRho
	}
	return w, nil
}

// allenWidth solves res = F*sqrt(resolution_inverse(b*w/F^2)) for w by
// bisection on u = b*w/F^2, since mathkernel.ResolutionInverse is the
// (Lambert-W-backed) function supplied by the math kernel but its own
// analytic inverse is not; ResolutionInverse is monotone decreasing on
// its domain (u > 1), so bisection against the target value
// (res/F)^2 converges reliably without re-deriving a closed form.
func allenWidth(res, f, b float64) (float64, error) {
	target := (res / f) * (res / f)

	lo, hi := 1.0+1e-9, 2.0
	const maxExpand = 200
	expanded := false
	for i := 0; i < maxExpand; i++ {
		v := mathkernel.ResolutionInverse(hi)
		if math.IsNaN(v) {
			hi = 1 + (hi-1)/2
			continue
		}
		if v <= target {
			expanded = true
			break
		}
		lo = hi
		hi *= 2
	}
	if !expanded {
		return 0, ErrAllenWidthDiverged
	}

	const maxBisect = 200
	for i := 0; i < maxBisect; i++ {
		mid := 0.5 * (lo + hi)
		v := mathkernel.ResolutionInverse(mid)
		if math.IsNaN(v) {
			lo = mid
			continue
		}
		if v > target {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= 1e-12*hi {
			break
		}
	}

	u := 0.5 * (lo + hi)
	return u * f * f / b, nil
}

// widthToPointCount rounds a window width to the nearest odd point count
// centered on the output index: n_pts = round(w/(2*deltaRho))*2 + 1.
func widthToPointCount(w, deltaRho float64) int {
	half := math.Round(w / (2 * deltaRho))
	return int(half)*2 + 1
}

// defaultPivotStride bounds how many exact width evaluations the
// interpolated path performs; the planner evaluates exactly at every
// stride-th sample and interpolates the rest.
const defaultPivotStride = 16

// pivotWidths evaluates widthAt exactly at evenly spaced pivots and
// interpolates between them with the configured Lagrange order, trading
// exactness for fewer calls to widthAt (and, under bfac, fewer allenWidth
// bisections). Segments whose stencil would reach past either end of the
// pivots, or would include the unevenly spaced last pivot, are computed
// exactly instead.
func pivotWidths(fKm []float64, p Params, eta float64) ([]float64, error) {
	n := len(fKm)
	interpolator := interp.NewLagrangeInterpolator(p.InterpOrder)

	stride := defaultPivotStride
	if stride > n-1 {
		stride = n - 1
	}
	if stride < 1 {
		stride = 1
	}

	var pivotIdx []int
	for i := 0; i < n; i += stride {
		pivotIdx = append(pivotIdx, i)
	}
	if pivotIdx[len(pivotIdx)-1] != n-1 {
		pivotIdx = append(pivotIdx, n-1)
	}

	pivotW := make([]float64, len(pivotIdx))
	for k, idx := range pivotIdx {
		w, err := widthAt(fKm[idx], p, eta)
		if err != nil {
			return nil, err
		}
		pivotW[k] = w
	}

	back, fwd := 0, 1
	switch interpolator.Order() {
	case 2:
		fwd = 2
	case 3:
		back, fwd = 1, 2
	case 4:
		back, fwd = 2, 2
	}

	wKm := make([]float64, n)
	for k := 0; k < len(pivotIdx)-1; k++ {
		lo, hi := pivotIdx[k], pivotIdx[k+1]
		span := hi - lo
		if k-back < 0 || k+fwd > len(pivotIdx)-1 || pivotIdx[k+fwd]-pivotIdx[k-back] != (back+fwd)*stride {
			for i := lo; i < hi; i++ {
				w, err := widthAt(fKm[i], p, eta)
				if err != nil {
					return nil, err
				}
				wKm[i] = w
			}
			continue
		}
		stencil := segmentStencil(pivotW, k, interpolator.Order())
		for i := lo; i < hi; i++ {
			frac := float64(i-lo) / float64(span)
			wKm[i] = interpolator.Interpolate(stencil, frac)
		}
	}
	wKm[n-1] = pivotW[len(pivotW)-1]
	return wKm, nil
}

// segmentStencil builds the pivot-value window required to interpolate
// the segment between pivot k and pivot k+1 at the given order, clamping
// at the ends of pivotW by repeating the boundary value.
func segmentStencil(pivotW []float64, k, order int) []float64 {
	at := func(idx int) float64 {
		if idx < 0 {
			idx = 0
		}
		if idx >= len(pivotW) {
			idx = len(pivotW) - 1
		}
		return pivotW[idx]
	}

	switch order {
	case 2:
		// quadratic3(x0,x1,x2) interpolates the x0->x1 segment.
		return []float64{at(k), at(k + 1), at(k + 2)}
	case 3:
		// Hermite4(xm1,x0,x1,x2) interpolates the x0->x1 segment.
		return []float64{at(k - 1), at(k), at(k + 1), at(k + 2)}
	case 4:
		// quartic5(xm1,x0,x1,x2,x3) interpolates the x1->x2 segment.
		return []float64{at(k - 2), at(k - 1), at(k), at(k + 1), at(k + 2)}
	default:
		return []float64{at(k), at(k + 1)}
	}
}
