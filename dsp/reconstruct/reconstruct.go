package reconstruct

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/2lambda123/rss-ringoccs/dsp/buffer"
	"github.com/2lambda123/rss-ringoccs/dsp/planner"
	"github.com/2lambda123/rss-ringoccs/dsp/spectrum"
	"github.com/2lambda123/rss-ringoccs/dsp/stationary"
)

var complexPool = buffer.NewComplexPool()

// Run reconstructs the true complex transmittance over the resolved
// range of in at the requested resolution and algorithm, returning a
// status instead of panicking or erroring: bad input or infeasible
// configuration report via Status, never a Go error return.
func Run(ctx context.Context, in DiffractedInput, cfg ReconstructionConfig) (result ReconstructionResult) {
	start := time.Now()
	defer func() { logResult(&cfg, &result, time.Since(start)) }()

	if !validateInput(&in) {
		return ReconstructionResult{Status: BadInput}
	}
	if cfg.Interp != 0 && cfg.Interp != 2 && cfg.Interp != 3 && cfg.Interp != 4 {
		return ReconstructionResult{Status: BadInterp}
	}
	deltaRho := in.DeltaRho()
	if !validateConfig(&cfg, deltaRho) {
		return ReconstructionResult{Status: BadInput}
	}

	rangeStart, nUsed, ok := resolveRange(&in, &cfg)
	if !ok {
		return ReconstructionResult{Status: OutOfRange}
	}

	angularFreq := 0.0
	if cfg.BFac {
		if in.FSkyHz == nil {
			return ReconstructionResult{Status: BadInput}
		}
		angularFreq = 2 * math.Pi * in.FSkyHz[rangeStart]
	}

	// Planned over the full input, not just the resolved output range,
	// since a driver's window for an output near the range boundary can
	// reach into neighbor samples outside that range.
	plan, err := planner.Plan(in.FKm, planner.Params{
		Res:         cfg.Res,
		DeltaRho:    deltaRho,
		Family:      cfg.WindowFamily,
		WindowOpts:  windowOptsFor(&cfg),
		BFac:        cfg.BFac,
		Sigma:       cfg.Sigma,
		AngularFreq: angularFreq,
		InterpOrder: cfg.Interp,
	})
	if err != nil {
		return ReconstructionResult{Status: OutOfRange}
	}
	// Every output's window must lie inside the input.
	for i := rangeStart; i < rangeStart+nUsed; i++ {
		half := plan.NPts[i] / 2
		if i-half < 0 || i+half >= in.Len() {
			return ReconstructionResult{Status: OutOfRange}
		}
	}

	var tOut []complex128
	var status Status
	var completed int

	if cfg.Algorithm == AlgorithmSimpleFFT {
		tOut = simpleFFTRun(&in, &cfg, plan.WKm[rangeStart:rangeStart+nUsed], rangeStart, nUsed)
		status, completed = Ok, nUsed
	} else {
		tOutBuf := complexPool.Get(nUsed)
		scratch := tOutBuf.Samples()

		dc := &driverContext{
			in:     &in,
			cfg:    &cfg,
			wKm:    plan.WKm,
			nPts:   plan.NPts,
			solver: stationary.New(),
		}
		driver := driverFor(cfg.Algorithm)

		status, completed = runWorkers(ctx, nUsed, cfg.MaxWorkers, func(localI int) {
			scratch[localI] = driver(dc, localI+rangeStart)
		})

		// Copy the completed prefix out of the pooled scratch buffer before
		// returning it to the pool: tOut escapes into the result the caller
		// keeps, so it must not share backing storage with anything a later
		// Run call can Get and overwrite.
		tOut = make([]complex128, completed)
		copy(tOut, scratch[:completed])
		complexPool.Put(tOutBuf)
	}

	if status == Cancelled {
		power := spectrum.Power(tOut)
		phase := spectrum.Phase(tOut)
		depth := spectrum.OpticalDepth(power, in.BRad[rangeStart:rangeStart+completed])

		result = ReconstructionResult{
			TOut:         tOut,
			WKm:          plan.WKm[rangeStart : rangeStart+completed],
			Start:        rangeStart,
			NUsed:        completed,
			Status:       Cancelled,
			Power:        power,
			Phase:        phase,
			OpticalDepth: depth,
		}
		return result
	}

	power := spectrum.Power(tOut)
	phase := spectrum.Phase(tOut)
	depth := spectrum.OpticalDepth(power, in.BRad[rangeStart:rangeStart+nUsed])

	result = ReconstructionResult{
		TOut:         tOut,
		WKm:          plan.WKm[rangeStart : rangeStart+nUsed],
		Start:        rangeStart,
		NUsed:        nUsed,
		Status:       Ok,
		Power:        power,
		Phase:        phase,
		OpticalDepth: depth,
	}
	return result
}

// driverFor resolves a per-output sample function for the configured
// algorithm. Run special-cases AlgorithmSimpleFFT before ever calling
// this (that driver produces all outputs in one FFT pass, not
// sample-by-sample), so it has no case here.
func driverFor(a Algorithm) func(dc *driverContext, i int) complex128 {
	switch a {
	case AlgorithmFresnel:
		return fresnelSample
	case AlgorithmLegendre:
		return legendreSample
	case AlgorithmNewtonPerturbed:
		return newtonPerturbedSample
	case AlgorithmNewtonElliptical:
		return newtonEllipticalSample
	default:
		return newtonSample
	}
}

// runWorkers fans the half-open range [rangeStart, rangeStart+nUsed)
// out across a bounded worker pool, invoking work(localI) for each
// local offset in [0, nUsed), in fixed-size chunks. Cancellation is
// checked only between chunks (never mid-sample, and never mid-chunk),
// so the returned count is always an exact contiguous prefix: every
// index below it has unconditionally finished.
func runWorkers(ctx context.Context, nUsed, maxWorkers int, work func(localI int)) (Status, int) {
	workers := maxWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > nUsed {
		workers = nUsed
	}
	if workers < 1 {
		workers = 1
	}

	completed := 0
	for completed < nUsed {
		select {
		case <-ctx.Done():
			return Cancelled, completed
		default:
		}

		chunkEnd := completed + workers
		if chunkEnd > nUsed {
			chunkEnd = nUsed
		}

		var wg sync.WaitGroup
		for localI := completed; localI < chunkEnd; localI++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				work(idx)
			}(localI)
		}
		wg.Wait()

		completed = chunkEnd
	}

	return Ok, completed
}

func logResult(cfg *ReconstructionConfig, r *ReconstructionResult, elapsed time.Duration) {
	attrs := []any{
		slog.String("algorithm", cfg.Algorithm.String()),
		slog.String("window_family", cfg.WindowFamily.String()),
		slog.Int("n_used", r.NUsed),
		slog.String("status", r.Status.String()),
		slog.Duration("elapsed", elapsed),
	}
	if r.Status == Ok {
		slog.Info("reconstruction complete", attrs...)
	} else {
		slog.Warn("reconstruction incomplete", attrs...)
	}
}
