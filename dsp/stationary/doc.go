// Package stationary finds the stationary ring-plane azimuth phi* at
// which the Fresnel phase's derivative with respect to phi vanishes, via
// Newton-Raphson iteration with a second-derivative (Halley-style)
// correction.
//
// The solver never fails: on a non-finite or non-positive second
// derivative it falls back to the last finite estimate and returns,
// since an isolated bad stationary point must not abort the surrounding
// per-output accumulation.
package stationary
