package mathkernel

import (
	"math"
	"testing"
)

func TestI0AtZero(t *testing.T) {
	if got := I0(0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("I0(0) = %v, want 1", got)
	}
}

func TestI0MonotoneIncreasingInAbs(t *testing.T) {
	prev := I0(0)
	for _, x := range []float64{0.5, 1, 2, 5, 10, 50, 200, 700} {
		got := I0(x)
		if got <= prev {
			t.Fatalf("I0(%v)=%v not increasing over previous %v", x, got, prev)
		}
		if got != I0(-x) {
			t.Fatalf("I0 not even: I0(%v)=%v I0(%v)=%v", x, got, -x, I0(-x))
		}
		prev = got
	}
}

func TestJ0AtZero(t *testing.T) {
	if got := J0(0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("J0(0) = %v, want 1", got)
	}
}

func TestSincAtZero(t *testing.T) {
	if got := Sinc(0); got != 1 {
		t.Fatalf("Sinc(0) = %v, want 1", got)
	}
}

func TestSincContinuousNearZero(t *testing.T) {
	got := Sinc(1e-8)
	if math.Abs(got-1) > 1e-10 {
		t.Fatalf("Sinc(1e-8) = %v, want ~1", got)
	}
}

func TestErfIdentity(t *testing.T) {
	for _, x := range []float64{-3, -0.5, 0, 0.5, 3} {
		if got := Erf(x) + Erfc(x); math.Abs(got-1) > 1e-12 {
			t.Fatalf("Erf(%v)+Erfc(%v) = %v, want 1", x, x, got)
		}
	}
}

func TestFresnelIntegralsAreOdd(t *testing.T) {
	for _, x := range []float64{0.1, 1, 2.5, 4.5, 10} {
		if got := FresnelCos(x) + FresnelCos(-x); math.Abs(got) > 1e-9 {
			t.Fatalf("FresnelCos not odd at x=%v: sum=%v", x, got)
		}
		if got := FresnelSin(x) + FresnelSin(-x); math.Abs(got) > 1e-9 {
			t.Fatalf("FresnelSin not odd at x=%v: sum=%v", x, got)
		}
	}
}

func TestFresnelIntegralsApproachHalfAtLargeX(t *testing.T) {
	// Leading asymptotic terms: C(x) ~ 0.5 + sin(pi*x^2/2)/(pi*x) and
	// S(x) ~ 0.5 - cos(pi*x^2/2)/(pi*x). At x = 50 the sine is 0 and the
	// cosine is 1, so S(50) sits 1/(50*pi) below 0.5.
	c := FresnelCos(50)
	s := FresnelSin(50)
	wantS := 0.5 - 1/(50*math.Pi)
	if math.Abs(c-0.5) > 1e-3 {
		t.Fatalf("FresnelCos(50) = %v, want ~0.5", c)
	}
	if math.Abs(s-wantS) > 1e-3 {
		t.Fatalf("FresnelSin(50) = %v, want ~%v", s, wantS)
	}
}

func TestLambertWKnownValues(t *testing.T) {
	if got := LambertW(0); math.Abs(got) > 1e-9 {
		t.Fatalf("LambertW(0) = %v, want 0", got)
	}
	// W(e) = 1, since 1*e^1 = e.
	got := LambertW(math.E)
	if math.Abs(got-1) > 1e-6 {
		t.Fatalf("LambertW(e) = %v, want 1", got)
	}
}

func TestLambertWBranchPointAndBelow(t *testing.T) {
	if got := LambertW(rcprEulerE); math.Abs(got-(-1)) > 1e-9 {
		t.Fatalf("LambertW(-1/e) = %v, want -1", got)
	}
	if got := LambertW(rcprEulerE - 0.01); !math.IsNaN(got) {
		t.Fatalf("LambertW below -1/e = %v, want NaN", got)
	}
}

func TestLambertWAtInfinity(t *testing.T) {
	if got := LambertW(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("LambertW(+Inf) = %v, want +Inf", got)
	}
}

func TestResolutionInverseDomain(t *testing.T) {
	if got := ResolutionInverse(1); !math.IsNaN(got) {
		t.Fatalf("ResolutionInverse(1) = %v, want NaN", got)
	}
	if got := ResolutionInverse(0.5); !math.IsNaN(got) {
		t.Fatalf("ResolutionInverse(0.5) = %v, want NaN", got)
	}
	if got := ResolutionInverse(math.Inf(1)); got != 0 {
		t.Fatalf("ResolutionInverse(+Inf) = %v, want 0", got)
	}
}

func TestResolutionInverseRoundTrips(t *testing.T) {
	// y = x/(e^-x + x - 1); check ResolutionInverse(y) recovers x.
	x := 3.0
	y := x / (math.Exp(-x) + x - 1)
	got := ResolutionInverse(y)
	if math.Abs(got-x) > 1e-4 {
		t.Fatalf("ResolutionInverse(%v) = %v, want ~%v", y, got, x)
	}
}
