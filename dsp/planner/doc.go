// Package planner maps a requested radial resolution, the per-sample
// Fresnel scale, and a window family to a per-output window width and
// point count, rejecting any window wider than the whole input.
package planner
