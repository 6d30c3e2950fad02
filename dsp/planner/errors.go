package planner

import "errors"

var (
	// ErrEmptyInput is returned when the Fresnel-scale slice is empty.
	ErrEmptyInput = errors.New("planner: empty Fresnel scale input")

	// ErrResolutionTooFine is returned when res <= 2*deltaRho, the
	// Nyquist-style floor below which no window can resolve the request.
	ErrResolutionTooFine = errors.New("planner: requested resolution at or below 2*deltaRho")

	// ErrNonFiniteFresnelScale is returned when F_km[i] is non-finite or
	// non-positive at some i.
	ErrNonFiniteFresnelScale = errors.New("planner: non-finite or non-positive Fresnel scale")

	// ErrMissingAngularFrequency is returned when bfac is requested but
	// no positive angular sky frequency is available to compute it.
	ErrMissingAngularFrequency = errors.New("planner: bfac requires a positive angular frequency")

	// ErrInfeasibleWidth is returned when a planned window has more
	// points than the Fresnel-scale input has samples.
	ErrInfeasibleWidth = errors.New("planner: window width exceeds available data range")

	// ErrAllenWidthDiverged is returned when the Allen b-factor width
	// solve fails to bracket a root within its iteration budget.
	ErrAllenWidthDiverged = errors.New("planner: allen b-factor width solve did not converge")
)
