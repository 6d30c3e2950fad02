package geometry

import "math"

// EllipseRho returns the ring radius along an ellipse of semi-latus-rectum
// scale a (the local circular radius rho0), eccentricity ecc, and
// pericenter azimuth peri, evaluated at azimuth phi. Exported so the
// NewtonElliptical driver can recompute the neighbor's true radius at the
// stationary azimuth once the solver converges (the elliptical variant's
// ring radius is itself a function of phi, unlike the circular case where
// rho[j] is a fixed tabulated value).
func EllipseRho(a, ecc, peri, phi float64) float64 {
	return a * (1 - ecc*ecc) / (1 + ecc*math.Cos(phi-peri))
}

// ellipseRhoDPhi returns d(rho)/d(phi) for the same ellipse.
func ellipseRhoDPhi(a, ecc, peri, phi float64) float64 {
	denom := 1 + ecc*math.Cos(phi-peri)
	rho := a * (1 - ecc*ecc) / denom
	return rho * rho * ecc * math.Sin(phi-peri) / (a * (1 - ecc*ecc))
}

// DPsiDPhiEllipse returns d(psi)/d(phi) for the elliptical variant: the
// neighbor ring radius is no longer the fixed data value rho but traces
// an ellipse rho(phi) = a(1-e^2)/(1+e*cos(phi-peri)) with a = rho0,
// evaluated via the chain rule through both the explicit phi dependence
// and rho(phi)'s own phi dependence.
//
// When ecc == 0, this reduces exactly to DPsiDPhi with rho held at its
// circular value rho0.
func DPsiDPhiEllipse(kD, rho0, phi, phi0, b, d, ecc, peri float64) float64 {
	a := rho0
	rho := EllipseRho(a, ecc, peri, phi)
	rhoD := ellipseRhoDPhi(a, ecc, peri, phi)

	c := math.Cos(b) / d
	xi := c * (rho*math.Cos(phi) - rho0*math.Cos(phi0))
	eta := (rho*rho + rho0*rho0 - 2*rho*rho0*math.Cos(phi-phi0)) / (d * d)
	u := 1 - 2*xi + eta

	dXi := c * (rhoD*math.Cos(phi) - rho*math.Sin(phi))
	dEta := (2*rho*rhoD - 2*rhoD*rho0*math.Cos(phi-phi0) + 2*rho*rho0*math.Sin(phi-phi0)) / (d * d)
	du := -2*dXi + dEta

	return kD * (du/(2*math.Sqrt(u)) + dXi)
}
