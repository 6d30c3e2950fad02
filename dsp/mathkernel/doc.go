// Package mathkernel provides the scalar special functions the Fresnel
// inversion engine is built on: the modified Bessel function I0 (also used
// by the window family), Bessel J0, the unnormalized Fresnel integrals,
// sinc, erf/erfc, and the Lambert W function with its resolution-inverse
// application.
//
// Every function here is total: degenerate input produces NaN or ±Inf
// rather than a panic, so a single bad sample never aborts a reconstruction.
package mathkernel
