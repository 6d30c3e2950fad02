package window

import (
	"math"
	"testing"
)

func TestWindowNormalizationRealOnlyMatchesPlainFormula(t *testing.T) {
	sum := 4.0
	dx := 0.1
	f := 2.0

	got, err := WindowNormalization(complex(sum, 0), dx, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Sqrt2 * f / math.Abs(dx*sum)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWindowNormalizationRejectsZeroSum(t *testing.T) {
	if _, err := WindowNormalization(0, 0.1, 2.0); err == nil {
		t.Fatal("expected an error for a zero kernel sum")
	}
}

func TestNormalizedEquivalentWidthRectIsOne(t *testing.T) {
	xs := SampleOffsets(1, 0.01)
	w := Generate(Rect, xs, 1)
	got, err := NormalizedEquivalentWidth(w, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 0.05 {
		t.Fatalf("rectangular window equivalent width = %v, want ~1", got)
	}
}

func TestNormalizedEquivalentWidthRejectsEmpty(t *testing.T) {
	if _, err := NormalizedEquivalentWidth(nil, 0.01); err == nil {
		t.Fatal("expected an error for an empty coefficient slice")
	}
}

func TestSampleOffsetsSymmetricAboutZero(t *testing.T) {
	xs := SampleOffsets(4, 0.5)
	if len(xs) == 0 {
		t.Fatal("expected a non-empty offset slice")
	}
	if math.Abs(xs[0]+xs[len(xs)-1]) > 1e-9 {
		t.Fatalf("offsets not symmetric: first=%v last=%v", xs[0], xs[len(xs)-1])
	}
}

func TestSampleOffsetsRejectsNonPositiveInputs(t *testing.T) {
	if xs := SampleOffsets(0, 0.1); xs != nil {
		t.Fatalf("expected nil for width <= 0, got %v", xs)
	}
	if xs := SampleOffsets(1, 0); xs != nil {
		t.Fatalf("expected nil for dx <= 0, got %v", xs)
	}
}
