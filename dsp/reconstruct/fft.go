package reconstruct

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/2lambda123/rss-ringoccs/dsp/window"
)

// simpleFFTRun performs the whole-range SimpleFFT driver: it windows the
// input segment once, builds a second signal holding the Fresnel
// quadratic-phase convolution kernel (windowed to the widest planned
// width in the segment, centered at the segment's Fresnel scale),
// transforms both to the frequency domain, multiplies the two spectra,
// and inverse-transforms the product. This is a single circular
// convolution evaluated via one O(n log n) FFT pair rather than a
// per-output stationary-phase or quadrature sum, trading per-output
// width adaptivity for speed on well-behaved (non-occulted, slowly
// varying Fresnel scale) segments.
func simpleFFTRun(in *DiffractedInput, cfg *ReconstructionConfig, wKm []float64, rangeStart, nUsed int) []complex128 {
	// Leave at least 2*hMax zero samples after the segment (hMax zeros on
	// each side in the circular layout) so the convolution does not wrap.
	hMax := int(math.Ceil(maxWidthOf(wKm) / (2 * math.Abs(in.DeltaRho()))))
	size := nextPowerOfTwo(nUsed + 2*hMax)

	sigBuf := complexPool.Get(size)
	defer complexPool.Put(sigBuf)
	kerBuf := complexPool.Get(size)
	defer complexPool.Put(kerBuf)
	sigFreqBuf := complexPool.Get(size)
	defer complexPool.Put(sigFreqBuf)
	kerFreqBuf := complexPool.Get(size)
	defer complexPool.Put(kerFreqBuf)

	sig := sigBuf.Samples()
	ker := kerBuf.Samples()

	dir := transformDir(cfg)
	deltaRho := in.DeltaRho()
	center := rangeStart + nUsed/2
	centerF := in.FKm[center]

	avgWidth := averageWidth(wKm)
	maxWidth := maxWidthOf(wKm)
	opts := windowOptsFor(cfg)

	for idx := 0; idx < nUsed; idx++ {
		i := rangeStart + idx
		x := in.RhoKm[i] - in.RhoKm[center]
		w := window.Eval(cfg.WindowFamily, x, avgWidth, opts...)
		sig[idx] = in.TIn[i] * complex(w, 0)
	}

	// Lay the kernel out circularly (non-negative offsets first, then
	// wrapped negative offsets in the back half) so that forward-transform,
	// multiply, inverse-transform realizes the same windowed quadrature
	// sum the other drivers compute directly, as a circular convolution.
	var kernelSum complex128
	half := size / 2
	for idx := 0; idx < size; idx++ {
		n := idx
		if n > half {
			n -= size
		}
		x := float64(n) * deltaRho
		r := x / centerF
		psi := (math.Pi / 2) * r * r

		angle := dir * psi
		wk := window.Eval(cfg.WindowFamily, x, maxWidth, opts...)
		val := complex(wk, 0) * complex(math.Cos(angle), -math.Sin(angle))
		ker[idx] = val
		kernelSum += val
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return fallbackZeroed(nUsed)
	}

	sigFreq := sigFreqBuf.Samples()
	kerFreq := kerFreqBuf.Samples()
	if err := plan.Forward(sigFreq, sig); err != nil {
		return fallbackZeroed(nUsed)
	}
	if err := plan.Forward(kerFreq, ker); err != nil {
		return fallbackZeroed(nUsed)
	}
	for idx := range sigFreq {
		sigFreq[idx] *= kerFreq[idx]
	}
	if err := plan.Inverse(sig, sigFreq); err != nil {
		return fallbackZeroed(nUsed)
	}

	scale := deltaRho / centerF
	if cfg.UseNorm {
		if normScale, err := window.WindowNormalization(kernelSum, deltaRho, centerF); err == nil {
			scale *= normScale
		} else {
			scale = 0
		}
	}

	out := make([]complex128, nUsed)
	prefactor := complex(0.5, -0.5)
	for idx := 0; idx < nUsed; idx++ {
		out[idx] = prefactor * sig[idx] * complex(scale/float64(size), 0)
	}
	return out
}

func fallbackZeroed(n int) []complex128 {
	return make([]complex128, n)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func averageWidth(wKm []float64) float64 {
	if len(wKm) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range wKm {
		sum += w
	}
	return sum / float64(len(wKm))
}

func maxWidthOf(wKm []float64) float64 {
	max := 0.0
	for _, w := range wKm {
		if w > max {
			max = w
		}
	}
	return max
}
