package reconstruct

import (
	"math"

	"github.com/2lambda123/rss-ringoccs/internal/simd"
)

// weightedKernelSum evaluates, for a neighbor set described by window
// weights w[j] and Fresnel phases psi[j], both:
//   - rawSum = sum_j w[j] * tin[j] * exp(-i*dir*psi[j]), the T_in-weighted
//     quadrature used to build T_out, and
//   - kernelSum = sum_j w[j] * exp(-i*dir*psi[j]), the plain phase-weighted
//     window sum used as the self-normalizing denominator when UseNorm is
//     set.
//
// dir is +1 for the reverse (reconstruction) transform and -1 for the
// forward (re-diffraction) transform.
//
// The per-neighbor multiply-accumulate is expressed over separated
// real/imaginary scratch slices via internal/simd's block kernels
// (originally written for audio mixing and window application), rather
// than a hand-rolled scalar loop, so the accumulation gets the package's
// AVX2/generic dispatch.
func weightedKernelSum(w, psi []float64, tin []complex128, dir float64) (rawSum, kernelSum complex128) {
	n := len(w)
	if n == 0 {
		return 0, 0
	}

	kRe := make([]float64, n)
	kIm := make([]float64, n)
	tinRe := make([]float64, n)
	tinIm := make([]float64, n)
	for j := 0; j < n; j++ {
		angle := dir * psi[j]
		kRe[j] = w[j] * math.Cos(angle)
		kIm[j] = -w[j] * math.Sin(angle)
		tinRe[j] = real(tin[j])
		tinIm[j] = imag(tin[j])
	}

	negTinIm := make([]float64, n)
	simd.ScaleBlock(negTinIm, tinIm, -1)

	reCross := make([]float64, n)
	simd.MulBlock(reCross, tinRe, kRe)

	reTerms := make([]float64, n)
	simd.MulAddBlock(reTerms, negTinIm, kIm, reCross)

	imCross := make([]float64, n)
	simd.MulBlock(imCross, tinIm, kRe)

	imTerms := make([]float64, n)
	simd.MulAddBlock(imTerms, tinRe, kIm, imCross)

	var reSum, imSum, kReSum, kImSum float64
	for j := 0; j < n; j++ {
		reSum += reTerms[j]
		imSum += imTerms[j]
		kReSum += kRe[j]
		kImSum += kIm[j]
	}

	return complex(reSum, imSum), complex(kReSum, kImSum)
}
