package reconstruct

// DiffractedInput is one calibrated, uniformly-resampled ring-radius
// record (the source literature's "DLP"). All slices share length N and
// are indexed together; the core never mutates them.
type DiffractedInput struct {
	// RhoKm is ring radius, strictly monotone with uniform spacing.
	RhoKm []float64
	// TIn is the diffracted complex transmittance.
	TIn []complex128
	// FKm is the local Fresnel scale.
	FKm []float64
	// PhiRad is the ring-plane azimuth of the ray footprint.
	PhiRad []float64
	// Kd is wavenumber times observer-to-ring distance (k*D).
	Kd []float64
	// BRad is the ring opening angle.
	BRad []float64
	// DKm is the observer-to-ring distance.
	DKm []float64

	// RhoDotKms and FSkyHz are optional; used only for diagnostics and
	// the Allen b-factor, never by the geometry or driver math itself.
	RhoDotKms []float64
	FSkyHz    []float64
}

// Len returns N, the shared length of the input's slices.
func (d *DiffractedInput) Len() int {
	return len(d.RhoKm)
}

// DeltaRho returns the uniform ring-radius spacing, computed from the
// first two samples (monotonicity and uniformity are enforced by
// validateInput before this is trusted).
func (d *DiffractedInput) DeltaRho() float64 {
	if d.Len() < 2 {
		return 0
	}
	return d.RhoKm[1] - d.RhoKm[0]
}

// Status is the enum-valued outcome of a reconstruction call, replacing
// exception-based error reporting.
type Status int

const (
	// Ok indicates TOut was fully populated.
	Ok Status = iota
	// BadInput indicates a pre-check on DiffractedInput or
	// ReconstructionConfig failed; TOut is nil.
	BadInput
	// OutOfRange indicates the requested range, or a planned window
	// width, does not fit inside the available data; TOut is nil.
	OutOfRange
	// OutOfMemory indicates a scratch or output allocation failed.
	OutOfMemory
	// BadInterp indicates ReconstructionConfig.Interp is not in {0,2,3,4}.
	BadInterp
	// Cancelled indicates the caller's context was cancelled mid-call;
	// TOut holds the longest completed contiguous prefix.
	Cancelled
)

// String renders the status for logging and test failure messages.
func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case BadInput:
		return "BadInput"
	case OutOfRange:
		return "OutOfRange"
	case OutOfMemory:
		return "OutOfMemory"
	case BadInterp:
		return "BadInterp"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ReconstructionResult is Run's return value.
type ReconstructionResult struct {
	TOut         []complex128
	WKm          []float64
	Start        int
	NUsed        int
	Status       Status
	Power        []float64
	Phase        []float64
	OpticalDepth []float64
}
