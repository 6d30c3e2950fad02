package window

import (
	"math"
	"math/cmplx"
)

// WindowNormalization returns sqrt(2)*F / |dx * kernelSum|, the
// self-normalizing factor applied to reconstruction output when UseNorm
// is set. kernelSum is the phase-weighted window sum sum_j w[j]*exp(i*...)
// the reconstruction kernel already accumulates; a real-only window mass
// (no phase weighting) is the special case kernelSum = complex(sum(w), 0).
func WindowNormalization(kernelSum complex128, dx, f float64) (float64, error) {
	if kernelSum == 0 {
		return 0, errZeroSum
	}

	denom := math.Abs(dx) * cmplx.Abs(kernelSum)
	if denom == 0 {
		return 0, errZeroSum
	}

	return math.Sqrt2 * f / denom, nil
}

// NormalizedEquivalentWidth returns N * sum(w^2) / sum(w)^2, the window
// shape constant the planner uses to translate a requested resolution
// into a physical window width.
func NormalizedEquivalentWidth(w []float64, dx float64) (float64, error) {
	if len(w) == 0 {
		return 0, errEmptyCoeffs
	}

	sum, sumSq := 0.0, 0.0
	for _, v := range w {
		sum += v
		sumSq += v * v
	}

	if sum == 0 {
		return 0, errZeroSum
	}

	return float64(len(w)) * sumSq / (sum * sum), nil
}

// SampleOffsets returns the symmetric offsets {-width/2 .. width/2} used
// to numerically evaluate NormalizedEquivalentWidth and
// WindowNormalization for a window family at a given spacing dx, the
// same fine-sampling technique the corpus's window analysis uses for
// numerically derived spectral properties (discretize, then sum).
func SampleOffsets(width, dx float64) []float64 {
	if width <= 0 || dx <= 0 {
		return nil
	}

	n := int(width/dx) + 1
	out := make([]float64, 0, n)
	for x := -width / 2; x <= width/2; x += dx {
		out = append(out, x)
	}
	return out
}
