package geometry

import (
	"math"
	"testing"
)

func TestPsiZeroAtCoincidentPoint(t *testing.T) {
	// rho == rho0, phi == phi0 should give xi, eta both 0, so u=1, psi=0.
	got := Psi(1000, 87000, 87000, 0.1, 0.1, 0.3, 1.2e6)
	if math.Abs(got) > 1e-8 {
		t.Fatalf("Psi at coincident point = %v, want ~0", got)
	}
}

func TestDPsiDPhiMatchesFiniteDifference(t *testing.T) {
	kD, rho, rho0, phi0, b, d := 5000.0, 87010.0, 87000.0, 0.2, 0.25, 1.3e6
	phi := 0.21

	ana := DPsiDPhi(kD, rho, rho0, phi, phi0, b, d)

	const h = 1e-6
	fd := (Psi(kD, rho, rho0, phi+h, phi0, b, d) - Psi(kD, rho, rho0, phi-h, phi0, b, d)) / (2 * h)

	if diff := math.Abs(ana - fd); diff > 1e-4 {
		t.Fatalf("DPsiDPhi = %v, finite-difference = %v, diff = %v", ana, fd, diff)
	}
}

func TestD2PsiDPhi2MatchesFiniteDifference(t *testing.T) {
	kD, rho, rho0, phi0, b, d := 5000.0, 87010.0, 87000.0, 0.2, 0.25, 1.3e6
	phi := 0.21

	ana := D2PsiDPhi2(kD, rho, rho0, phi, phi0, b, d)

	const h = 1e-5
	fd := (DPsiDPhi(kD, rho, rho0, phi+h, phi0, b, d) - DPsiDPhi(kD, rho, rho0, phi-h, phi0, b, d)) / (2 * h)

	if diff := math.Abs(ana - fd); diff > 1e-2 {
		t.Fatalf("D2PsiDPhi2 = %v, finite-difference = %v, diff = %v", ana, fd, diff)
	}
}

func TestDPsiDPhiEllipseReducesToCircularAtZeroEccentricity(t *testing.T) {
	kD, rho0, phi0, b, d := 5000.0, 87000.0, 0.2, 0.25, 1.3e6
	phi := 0.21

	circ := DPsiDPhi(kD, rho0, rho0, phi, phi0, b, d)
	ell := DPsiDPhiEllipse(kD, rho0, phi, phi0, b, d, 0, 0)

	if diff := math.Abs(circ - ell); diff > 1e-9 {
		t.Fatalf("elliptical(ecc=0) = %v, circular = %v, diff = %v", ell, circ, diff)
	}
}

func TestFresnelScalePositive(t *testing.T) {
	f := FresnelScale(3.6e-2, 1.3e6, 0.3, 0.25)
	if f <= 0 || math.IsNaN(f) {
		t.Fatalf("FresnelScale = %v, want positive finite", f)
	}
}

func TestLegendreExpansionMatchesPsiNearCenter(t *testing.T) {
	kD, rho0, phi0, b, d := 5000.0, 87000.0, 0.2, 0.25, 1.3e6
	le := NewLegendreExpansion(8, kD, rho0, phi0, b, d)

	t2 := 0.001 // (rho-rho0)/d, small
	rho := rho0 + t2*d
	want := Psi(kD, rho, rho0, phi0, phi0, b, d)
	got := le.Eval(t2)

	if diff := math.Abs(got - want); diff > 1e-6 {
		t.Fatalf("LegendreExpansion.Eval(%v) = %v, want ~%v (diff %v)", t2, got, want, diff)
	}
}

func TestPerturbedPsiAllZeroMatchesPsi(t *testing.T) {
	kD, rho, rho0, phi, phi0, b, d := 5000.0, 87010.0, 87000.0, 0.21, 0.2, 0.25, 1.3e6
	var perturb [5]float64

	want := Psi(kD, rho, rho0, phi, phi0, b, d)
	got := PerturbedPsi(kD, rho, rho0, phi, phi0, b, d, perturb)

	if diff := math.Abs(got - want); diff > 1e-12 {
		t.Fatalf("PerturbedPsi(zero) = %v, want %v", got, want)
	}
}

func TestPerturbedPsiNonZeroDiffers(t *testing.T) {
	kD, rho, rho0, phi, phi0, b, d := 5000.0, 87010.0, 87000.0, 0.21, 0.2, 0.25, 1.3e6
	perturb := [5]float64{0.5, 0, 0, 0, 0}

	base := Psi(kD, rho, rho0, phi, phi0, b, d)
	got := PerturbedPsi(kD, rho, rho0, phi, phi0, b, d, perturb)

	if math.Abs(got-base) < 1e-12 {
		t.Fatalf("PerturbedPsi with non-zero perturb should differ from Psi")
	}
}
