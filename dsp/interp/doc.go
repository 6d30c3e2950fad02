// Package interp provides fixed-order Lagrange interpolation used by the
// window-width planner to evaluate window width between precomputed pivots.
//
// Supported orders: 0 (no interpolation, nearest pivot), 2 (quadratic),
// 3 (cubic Hermite-style), 4 (quartic). Construct a [LagrangeInterpolator]
// with the desired order via [NewLagrangeInterpolator].
package interp
