package reconstruct

import "math"

const deltaRhoTolerance = 1e-9

// validateInput checks DiffractedInput's structural invariants: shared
// length, monotonicity and uniform spacing of RhoKm, and positivity/range
// constraints on the geometry fields.
func validateInput(in *DiffractedInput) bool {
	n := len(in.RhoKm)
	if n < 2 {
		return false
	}
	if len(in.TIn) != n || len(in.FKm) != n || len(in.PhiRad) != n ||
		len(in.Kd) != n || len(in.BRad) != n || len(in.DKm) != n {
		return false
	}
	if in.RhoDotKms != nil && len(in.RhoDotKms) != n {
		return false
	}
	if in.FSkyHz != nil && len(in.FSkyHz) != n {
		return false
	}

	deltaRho := in.RhoKm[1] - in.RhoKm[0]
	if deltaRho == 0 || math.IsNaN(deltaRho) || math.IsInf(deltaRho, 0) {
		return false
	}
	tol := deltaRhoTolerance * math.Abs(deltaRho)

	for i := 0; i < n; i++ {
		if !(in.FKm[i] > 0) || !(in.DKm[i] > 0) || !(in.Kd[i] > 0) {
			return false
		}
		if math.Abs(in.BRad[i]) > math.Pi/2 {
			return false
		}
		if i == 0 {
			continue
		}
		step := in.RhoKm[i] - in.RhoKm[i-1]
		if math.Abs(step-deltaRho) > tol {
			return false
		}
	}

	return true
}

// validateConfig checks ReconstructionConfig fields independent of the
// input (range feasibility against the input is checked separately once
// deltaRho is known).
func validateConfig(cfg *ReconstructionConfig, deltaRho float64) bool {
	if cfg.Res <= 2*math.Abs(deltaRho) {
		return false
	}
	switch cfg.Interp {
	case 0, 2, 3, 4:
	default:
		return false
	}
	if cfg.Algorithm == AlgorithmLegendre && (cfg.LegendreOrder < 2 || cfg.LegendreOrder > 256) {
		return false
	}
	if cfg.BFac && !(cfg.Sigma > 0) {
		return false
	}
	return true
}

// resolveRange computes [start, start+nUsed) from the configured range
// (or the whole input, if none was set) intersected with the available
// RhoKm domain. Returns ok=false if the result is empty.
func resolveRange(in *DiffractedInput, cfg *ReconstructionConfig) (start, nUsed int, ok bool) {
	n := in.Len()
	if !cfg.HasRange {
		return 0, n, true
	}

	lo, hi := cfg.RangeLo, cfg.RangeHi
	if hi < lo {
		lo, hi = hi, lo
	}

	first, last := -1, -1
	for i := 0; i < n; i++ {
		rho := in.RhoKm[i]
		if rho < lo || rho > hi {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 {
		return 0, 0, false
	}
	return first, last - first + 1, true
}
