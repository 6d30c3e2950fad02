package geometry

import "math"

// Psi returns the Fresnel phase psi for a circular-ring scattering
// geometry, parametrized by kD (wavenumber times observer distance), the
// neighbor ring radius rho and azimuth phi, the center-sample ring radius
// rho0 and azimuth phi0, the ring opening angle b (radians), and the
// observer-to-ring distance d.
func Psi(kD, rho, rho0, phi, phi0, b, d float64) float64 {
	xi, eta := xiEta(rho, rho0, phi, phi0, b, d)
	u := 1 - 2*xi + eta
	return kD * (math.Sqrt(u) + xi - 1)
}

// DPsiDPhi returns d(psi)/d(phi), holding rho, rho0, phi0, b, d, kD fixed.
func DPsiDPhi(kD, rho, rho0, phi, phi0, b, d float64) float64 {
	xi, eta := xiEta(rho, rho0, phi, phi0, b, d)
	dXi, dEta := dXiEtaDPhi(rho, rho0, phi, phi0, b, d)

	u := 1 - 2*xi + eta
	du := -2*dXi + dEta

	return kD * (du/(2*math.Sqrt(u)) + dXi)
}

// D2PsiDPhi2 returns d2(psi)/d(phi)2, holding rho, rho0, phi0, b, d, kD
// fixed.
func D2PsiDPhi2(kD, rho, rho0, phi, phi0, b, d float64) float64 {
	xi, eta := xiEta(rho, rho0, phi, phi0, b, d)
	dXi, dEta := dXiEtaDPhi(rho, rho0, phi, phi0, b, d)
	d2Xi, d2Eta := d2XiEtaDPhi2(rho, rho0, phi, phi0, b, d)

	u := 1 - 2*xi + eta
	du := -2*dXi + dEta
	d2u := -2*d2Xi + d2Eta

	sqrtU := math.Sqrt(u)
	term1 := d2u / (2 * sqrtU)
	term2 := (du * du) / (4 * u * sqrtU)

	return kD * (term1 - term2 + d2Xi)
}

func xiEta(rho, rho0, phi, phi0, b, d float64) (xi, eta float64) {
	c := math.Cos(b) / d
	xi = c * (rho*math.Cos(phi) - rho0*math.Cos(phi0))
	eta = (rho*rho + rho0*rho0 - 2*rho*rho0*math.Cos(phi-phi0)) / (d * d)
	return xi, eta
}

func dXiEtaDPhi(rho, rho0, phi, phi0, b, d float64) (dXi, dEta float64) {
	c := math.Cos(b) / d
	dXi = -c * rho * math.Sin(phi)
	dEta = (2 * rho * rho0 * math.Sin(phi-phi0)) / (d * d)
	return dXi, dEta
}

func d2XiEtaDPhi2(rho, rho0, phi, phi0, b, d float64) (d2Xi, d2Eta float64) {
	c := math.Cos(b) / d
	d2Xi = -c * rho * math.Cos(phi)
	d2Eta = (2 * rho * rho0 * math.Cos(phi-phi0)) / (d * d)
	return d2Xi, d2Eta
}

// FresnelScale returns F = sqrt(lambda*d*(1-cos(b)^2*sin(phi)^2)/(2*sin(b)^2)).
func FresnelScale(lambda, d, phi, b float64) float64 {
	sinB := math.Sin(b)
	cosB := math.Cos(b)
	sinPhi := math.Sin(phi)
	num := lambda * d * (1 - cosB*cosB*sinPhi*sinPhi)
	den := 2 * sinB * sinB
	return math.Sqrt(num / den)
}
