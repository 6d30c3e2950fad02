package reconstruct

import (
	"testing"

	"github.com/2lambda123/rss-ringoccs/dsp/window"
)

func TestWindowCodeRoundTrip(t *testing.T) {
	types := []window.Type{
		window.Rect, window.Coss, window.KB20, window.KB25, window.KB35,
		window.KBMD20, window.KBMD25, window.KBMD35, window.KBAlpha, window.KBMDAlpha,
	}
	for _, want := range types {
		code, err := CodeFromWindowType(want)
		if err != nil {
			t.Fatalf("CodeFromWindowType(%v): %v", want, err)
		}
		got, err := WindowTypeFromCode(code)
		if err != nil {
			t.Fatalf("WindowTypeFromCode(%d): %v", code, err)
		}
		if got != want {
			t.Fatalf("round trip: got %v, want %v", got, want)
		}
	}
}

func TestWindowTypeFromCodeRejectsUnknown(t *testing.T) {
	if _, err := WindowTypeFromCode(99); err == nil {
		t.Fatal("expected an error for an unknown window code")
	}
}

func TestAlgorithmFromCodeSelectsFFT(t *testing.T) {
	alg, _ := AlgorithmFromCode(0, [5]float64{}, 0, 0, true)
	if alg != AlgorithmSimpleFFT {
		t.Fatalf("alg = %v, want AlgorithmSimpleFFT", alg)
	}
}

func TestAlgorithmFromCodeSelectsFresnel(t *testing.T) {
	alg, _ := AlgorithmFromCode(1, [5]float64{}, 0, 0, false)
	if alg != AlgorithmFresnel {
		t.Fatalf("alg = %v, want AlgorithmFresnel", alg)
	}
}

func TestAlgorithmFromCodeSelectsLegendreWithOrder(t *testing.T) {
	alg, order := AlgorithmFromCode(7, [5]float64{}, 0, 0, false)
	if alg != AlgorithmLegendre || order != 7 {
		t.Fatalf("alg, order = %v, %d; want AlgorithmLegendre, 7", alg, order)
	}
}

func TestAlgorithmFromCodeSelectsNewtonPerturbed(t *testing.T) {
	alg, _ := AlgorithmFromCode(0, [5]float64{0, 0.1, 0, 0, 0}, 0, 0, false)
	if alg != AlgorithmNewtonPerturbed {
		t.Fatalf("alg = %v, want AlgorithmNewtonPerturbed", alg)
	}
}

func TestAlgorithmFromCodeSelectsNewtonElliptical(t *testing.T) {
	alg, _ := AlgorithmFromCode(0, [5]float64{}, 0.02, 1.5, false)
	if alg != AlgorithmNewtonElliptical {
		t.Fatalf("alg = %v, want AlgorithmNewtonElliptical", alg)
	}
}

func TestAlgorithmFromCodeDefaultsToNewton(t *testing.T) {
	alg, _ := AlgorithmFromCode(0, [5]float64{}, 0, 0, false)
	if alg != AlgorithmNewton {
		t.Fatalf("alg = %v, want AlgorithmNewton", alg)
	}
}
