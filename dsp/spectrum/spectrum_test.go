package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestComplexBinsAdapter(t *testing.T) {
	bins := SliceBins([]complex128{1 + 0i, 0 + 2i})

	if bins.Len() != 2 {
		t.Fatalf("Len()=%d want=2", bins.Len())
	}
	if bins.At(1) != 0+2i {
		t.Fatalf("At(1)=%v want=2i", bins.At(1))
	}

	phase := PhaseBins(bins)
	if math.Abs(phase[1]-math.Pi/2) > 1e-12 {
		t.Fatalf("PhaseBins[1]=%f want=pi/2", phase[1])
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	MagnitudeFromParts(dst, re, im)

	if math.Abs(dst[0]-5) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[0]=%f want=5", dst[0])
	}

	if math.Abs(dst[1]-math.Sqrt(2)) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[1]=%f want=%f", dst[1], math.Sqrt(2))
	}

	if math.Abs(dst[2]-0) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[2]=%f want=0", dst[2])
	}
}

func TestPowerFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	PowerFromParts(dst, re, im)

	if math.Abs(dst[0]-25) > 1e-12 {
		t.Fatalf("PowerFromParts[0]=%f want=25", dst[0])
	}

	if math.Abs(dst[1]-2) > 1e-12 {
		t.Fatalf("PowerFromParts[1]=%f want=2", dst[1])
	}

	if math.Abs(dst[2]-0) > 1e-12 {
		t.Fatalf("PowerFromParts[2]=%f want=0", dst[2])
	}
}

func TestOpticalDepth(t *testing.T) {
	power := []float64{1, math.E, 0.25}
	bRad := []float64{math.Pi / 2, math.Pi / 2, math.Pi / 6}

	tau := OpticalDepth(power, bRad)

	if math.Abs(tau[0]-0) > 1e-12 {
		t.Fatalf("tau[0]=%f want=0 for unit power", tau[0])
	}
	if math.Abs(tau[1]-(-1)) > 1e-12 {
		t.Fatalf("tau[1]=%f want=-1", tau[1])
	}
	if tau[2] <= 0 {
		t.Fatalf("tau[2]=%f want > 0 for attenuated power", tau[2])
	}
}

func TestOpticalDepthNonPositivePower(t *testing.T) {
	tau := OpticalDepth([]float64{0, -1}, []float64{0.1, 0.1})
	if !math.IsInf(tau[0], 1) {
		t.Fatalf("tau for zero power should be +Inf, got %v", tau[0])
	}
	if !math.IsNaN(tau[1]) {
		t.Fatalf("tau for negative power should be NaN, got %v", tau[1])
	}
}
