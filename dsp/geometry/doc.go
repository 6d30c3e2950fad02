// Package geometry evaluates the Fresnel phase psi of an occultation
// scattering geometry, its derivatives with respect to ring-plane azimuth,
// a Legendre/polynomial expansion of psi for the Fresnel and Legendre
// drivers, and the Fresnel scale itself.
//
// All functions are pure and total: degenerate geometry (e.g. D == 0)
// produces NaN rather than a panic, since a single bad neighbor sample
// must not abort the surrounding reconstruction.
package geometry
