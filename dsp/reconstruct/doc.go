// Package reconstruct implements the Fresnel-inversion core: given a
// calibrated, uniformly-resampled diffracted transmittance series along
// ring radius, it reconstructs the true complex transmittance (and its
// derived power, phase, and optical depth) at a requested resolution.
//
// Run is the single entry point. It validates its inputs, plans a
// per-sample window width via dsp/planner, dispatches to one of six
// reconstruction drivers (selected by ReconstructionConfig.Algorithm),
// and fills the derived quantities via dsp/spectrum. No step panics on
// bad numerical input; failures are reported through Status, never
// through a Go panic. The only partially-populated result is that of a
// cancelled call, which holds the completed prefix under status Cancelled.
package reconstruct
