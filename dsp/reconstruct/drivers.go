package reconstruct

import (
	"math"

	"github.com/2lambda123/rss-ringoccs/dsp/geometry"
	"github.com/2lambda123/rss-ringoccs/dsp/stationary"
	"github.com/2lambda123/rss-ringoccs/dsp/window"
)

// driverContext bundles the read-only state a single-output-sample
// driver call needs: the input, the config, and this call's window plan.
type driverContext struct {
	in     *DiffractedInput
	cfg    *ReconstructionConfig
	wKm    []float64
	nPts   []int
	solver *stationary.Solver
}

// neighborRange returns the inclusive-exclusive neighbor index range
// [lo, hi) for output index i, given its planned point count.
func neighborRange(i, nPts, n int) (lo, hi int) {
	half := nPts / 2
	lo = i - half
	hi = i + half + 1
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// neighborWeights evaluates the configured window family at each
// neighbor offset x[j] = rho[j] - rho[i] for the given width.
func neighborWeights(dc *driverContext, i, lo, hi int) []float64 {
	n := hi - lo
	xs := make([]float64, n)
	for idx, j := 0, lo; j < hi; idx, j = idx+1, j+1 {
		xs[idx] = dc.in.RhoKm[j] - dc.in.RhoKm[i]
	}
	opts := windowOptsFor(dc.cfg)
	return window.Generate(dc.cfg.WindowFamily, xs, dc.wKm[i], opts...)
}

func windowOptsFor(cfg *ReconstructionConfig) []window.Option {
	if cfg.WindowFamily == window.KBAlpha || cfg.WindowFamily == window.KBMDAlpha {
		return []window.Option{window.WithAlpha(cfg.WindowAlpha)}
	}
	return nil
}

// transformDir returns the sign convention for exp(-i*dir*psi): +1 for
// the reverse (reconstruction) transform, -1 for the forward
// (re-diffraction) transform.
func transformDir(cfg *ReconstructionConfig) float64 {
	if cfg.UseFwd {
		return -1
	}
	return 1
}

// combineOutput applies the closed-form outer prefactor (0.5-0.5i), the
// plain Δρ/F[i] scale and, when UseNorm is set, the self-normalizing
// √2·F[i]/|Δρ·kernelSum| factor on top of it (zero output when kernelSum
// is zero).
func combineOutput(rawSum, kernelSum complex128, deltaRho, f float64, useNorm bool) complex128 {
	prefactor := complex(0.5, -0.5)

	scale := deltaRho / f
	if useNorm {
		if normScale, err := window.WindowNormalization(kernelSum, deltaRho, f); err == nil {
			scale *= normScale
		} else {
			scale = 0
		}
	}

	return prefactor * rawSum * complex(scale, 0)
}

// fresnelSample evaluates the closed-form quadratic-approximation driver
// for output index i: psi_j = (pi/2)*(x[j]/F[i])^2, no stationary-phase
// solve needed.
func fresnelSample(dc *driverContext, i int) complex128 {
	lo, hi := neighborRange(i, dc.nPts[i], dc.in.Len())
	w := neighborWeights(dc, i, lo, hi)

	f := dc.in.FKm[i]
	psi := make([]float64, hi-lo)
	for idx, j := 0, lo; j < hi; idx, j = idx+1, j+1 {
		x := dc.in.RhoKm[j] - dc.in.RhoKm[i]
		r := x / f
		psi[idx] = (math.Pi / 2) * r * r
	}

	rawSum, kernelSum := weightedKernelSum(w, psi, dc.in.TIn[lo:hi], transformDir(dc.cfg))
	return combineOutput(rawSum, kernelSum, dc.in.DeltaRho(), f, dc.cfg.UseNorm)
}

// legendreSample evaluates psi via a precomputed Legendre expansion
// around the center geometry, shared across all neighbors of output i.
func legendreSample(dc *driverContext, i int) complex128 {
	lo, hi := neighborRange(i, dc.nPts[i], dc.in.Len())
	w := neighborWeights(dc, i, lo, hi)

	kD, rho0, phi0, b, d := dc.in.Kd[i], dc.in.RhoKm[i], dc.in.PhiRad[i], dc.in.BRad[i], dc.in.DKm[i]
	expansion := geometry.NewLegendreExpansion(dc.cfg.LegendreOrder, kD, rho0, phi0, b, d)

	psi := make([]float64, hi-lo)
	for idx, j := 0, lo; j < hi; idx, j = idx+1, j+1 {
		t := (dc.in.RhoKm[j] - rho0) / d
		psi[idx] = expansion.Eval(t)
	}

	rawSum, kernelSum := weightedKernelSum(w, psi, dc.in.TIn[lo:hi], transformDir(dc.cfg))
	return combineOutput(rawSum, kernelSum, dc.in.DeltaRho(), dc.in.FKm[i], dc.cfg.UseNorm)
}

// newtonSample evaluates the circular stationary-phase driver for output
// index i, solving for the stationary azimuth at each neighbor.
func newtonSample(dc *driverContext, i int) complex128 {
	lo, hi := neighborRange(i, dc.nPts[i], dc.in.Len())
	w := neighborWeights(dc, i, lo, hi)

	kD, rho0, phi0, b, d := dc.in.Kd[i], dc.in.RhoKm[i], dc.in.PhiRad[i], dc.in.BRad[i], dc.in.DKm[i]

	psi := make([]float64, hi-lo)
	for idx, j := 0, lo; j < hi; idx, j = idx+1, j+1 {
		rho := dc.in.RhoKm[j]
		deriv := func(phi float64) (float64, float64) {
			return geometry.DPsiDPhi(kD, rho, rho0, phi, phi0, b, d),
				geometry.D2PsiDPhi2(kD, rho, rho0, phi, phi0, b, d)
		}
		phiStar := dc.solver.Solve(dc.in.PhiRad[j], deriv)
		psi[idx] = geometry.Psi(kD, rho, rho0, phiStar, phi0, b, d)
	}

	rawSum, kernelSum := weightedKernelSum(w, psi, dc.in.TIn[lo:hi], transformDir(dc.cfg))
	return combineOutput(rawSum, kernelSum, dc.in.DeltaRho(), dc.in.FKm[i], dc.cfg.UseNorm)
}

// newtonPerturbedSample is newtonSample with psi replaced by the
// perturbed expansion; the stationary-phase search itself is unaffected
// since the perturbation term carries no phi-dependence.
func newtonPerturbedSample(dc *driverContext, i int) complex128 {
	lo, hi := neighborRange(i, dc.nPts[i], dc.in.Len())
	w := neighborWeights(dc, i, lo, hi)

	kD, rho0, phi0, b, d := dc.in.Kd[i], dc.in.RhoKm[i], dc.in.PhiRad[i], dc.in.BRad[i], dc.in.DKm[i]

	psi := make([]float64, hi-lo)
	for idx, j := 0, lo; j < hi; idx, j = idx+1, j+1 {
		rho := dc.in.RhoKm[j]
		deriv := func(phi float64) (float64, float64) {
			return geometry.DPerturbedPsiDPhi(kD, rho, rho0, phi, phi0, b, d),
				geometry.D2PsiDPhi2(kD, rho, rho0, phi, phi0, b, d)
		}
		phiStar := dc.solver.Solve(dc.in.PhiRad[j], deriv)
		psi[idx] = geometry.PerturbedPsi(kD, rho, rho0, phiStar, phi0, b, d, dc.cfg.Perturb)
	}

	rawSum, kernelSum := weightedKernelSum(w, psi, dc.in.TIn[lo:hi], transformDir(dc.cfg))
	return combineOutput(rawSum, kernelSum, dc.in.DeltaRho(), dc.in.FKm[i], dc.cfg.UseNorm)
}

// newtonEllipticalSample is newtonSample with the neighbor's ring radius
// traced along an orbital ellipse rather than held at its tabulated
// value. The stationary search uses the elliptical first derivative;
// the second derivative reuses the circular D2PsiDPhi2 as a pragmatic
// approximation for the Newton step's descent scaling (Newton's method
// tolerates an approximate second derivative for convergence purposes,
// and no elliptical second derivative is part of this package's math
// kernel contract).
func newtonEllipticalSample(dc *driverContext, i int) complex128 {
	lo, hi := neighborRange(i, dc.nPts[i], dc.in.Len())
	w := neighborWeights(dc, i, lo, hi)

	kD, rho0, phi0, b, d := dc.in.Kd[i], dc.in.RhoKm[i], dc.in.PhiRad[i], dc.in.BRad[i], dc.in.DKm[i]
	ecc, peri := dc.cfg.Ecc, dc.cfg.Peri

	psi := make([]float64, hi-lo)
	for idx, j := 0, lo; j < hi; idx, j = idx+1, j+1 {
		rhoInit := dc.in.RhoKm[j]
		deriv := func(phi float64) (float64, float64) {
			d1 := geometry.DPsiDPhiEllipse(kD, rho0, phi, phi0, b, d, ecc, peri)
			d2 := geometry.D2PsiDPhi2(kD, rhoInit, rho0, phi, phi0, b, d)
			return d1, d2
		}
		phiStar := dc.solver.Solve(dc.in.PhiRad[j], deriv)
		rhoStar := geometry.EllipseRho(rho0, ecc, peri, phiStar)
		psi[idx] = geometry.Psi(kD, rhoStar, rho0, phiStar, phi0, b, d)
	}

	rawSum, kernelSum := weightedKernelSum(w, psi, dc.in.TIn[lo:hi], transformDir(dc.cfg))
	return combineOutput(rawSum, kernelSum, dc.in.DeltaRho(), dc.in.FKm[i], dc.cfg.UseNorm)
}
