package reconstruct

import "testing"

func TestNeighborRangeClampsAtLowerBoundary(t *testing.T) {
	lo, hi := neighborRange(2, 9, 100)
	if lo != 0 || hi != 7 {
		t.Fatalf("lo, hi = %d, %d; want 0, 7", lo, hi)
	}
}

func TestNeighborRangeClampsAtUpperBoundary(t *testing.T) {
	lo, hi := neighborRange(97, 9, 100)
	if lo != 93 || hi != 100 {
		t.Fatalf("lo, hi = %d, %d; want 93, 100", lo, hi)
	}
}

func TestNeighborRangeInterior(t *testing.T) {
	lo, hi := neighborRange(50, 9, 100)
	if lo != 46 || hi != 55 {
		t.Fatalf("lo, hi = %d, %d; want 46, 55", lo, hi)
	}
}

func TestTransformDirForwardIsNegative(t *testing.T) {
	cfg := baseConfig(WithUseFwd(true))
	if transformDir(&cfg) != -1 {
		t.Fatal("expected UseFwd to flip transformDir to -1")
	}
}

func TestTransformDirReverseIsPositive(t *testing.T) {
	cfg := baseConfig()
	if transformDir(&cfg) != 1 {
		t.Fatal("expected the default reverse transform to use dir = 1")
	}
}

func TestWindowOptsForOmittedForFixedAlphaFamily(t *testing.T) {
	cfg := baseConfig()
	if opts := windowOptsFor(&cfg); len(opts) != 0 {
		t.Fatalf("expected no options for a fixed-alpha family, got %d", len(opts))
	}
}
