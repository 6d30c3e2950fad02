// Package spectrum derives real-valued quantities (magnitude, power, phase)
// from a complex reconstructed series.
//
// The functions here are agnostic to where the complex values came from: a
// true FFT bin sequence or, as in this module, a per-radius reconstructed
// transmittance. Scratch buffers are pooled so steady-state calls allocate
// only the returned output slice.
package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// ComplexBins is a read-only adapter over a complex-valued series.
//
// This allows integration with different producers (FFT bins, reconstructed
// transmittance) without coupling this package to any specific one.
type ComplexBins interface {
	Len() int
	At(i int) complex128
}

// SliceBins adapts a []complex128 as [ComplexBins].
type SliceBins []complex128

// Len returns the number of entries.
func (s SliceBins) Len() int { return len(s) }

// At returns the value at index i.
func (s SliceBins) At(i int) complex128 { return s[i] }

// Magnitude returns |X[k]| for each complex entry.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON)
// for improved performance on large series. Scratch buffers are pooled internally,
// so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real and
// imaginary parts in separate slices. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each complex entry.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON)
// for improved performance on large series. Scratch buffers are pooled internally,
// so in steady state this allocates only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// This is the zero-allocation fast path for callers that already have real and
// imaginary parts in separate slices. All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns arg(X[k]) for each complex entry, in radians.
func Phase(in []complex128) []float64 {
	return PhaseBins(SliceBins(in))
}

// PhaseBins returns arg(X[k]) for each entry of a [ComplexBins] source.
func PhaseBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, in.Len())
	for i := range out {
		out[i] = cmplx.Phase(in.At(i))
	}
	return out
}

// OpticalDepth returns tau[k] = -sin(|bRad|) * log(power[k]) for each sample,
// the standard occultation optical-depth transform of reconstructed power.
// bRad is the ring opening angle at the corresponding sample.
func OpticalDepth(power, bRad []float64) []float64 {
	out := make([]float64, len(power))
	for i := range out {
		out[i] = opticalDepthAt(power[i], bRad[i])
	}
	return out
}

func opticalDepthAt(power, bRad float64) float64 {
	return -math.Sin(math.Abs(bRad)) * math.Log(power)
}
