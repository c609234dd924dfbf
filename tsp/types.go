package tsp

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors. Callers match them with errors.Is; operations that fail
// validation return them before touching any state.
var (
	// ErrInvalidInput reports a matrix with fewer than two cities, a tour that
	// is not a closed permutation of the matrix's cities, or non-positive
	// search parameters.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrNilMatrix reports a nil distance matrix.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")
)

// Defaults used by DefaultParams.
const (
	DefaultMaxAttempts       = 25
	DefaultNeighbourhoodSize = 5
	DefaultIterations        = 1000
)

// Tour is a closed Hamiltonian cycle over 1-based city ids.
// For N cities len(Tour) == N+1 and Tour[0] == Tour[N].
type Tour []int

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// Cities returns N, the number of distinct cities on a closed tour.
func (t Tour) Cities() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// ProgressFunc receives every new best distance of a run, in strictly
// decreasing order. It is called synchronously from the run's goroutine.
type ProgressFunc func(distance float64)

// BestFunc receives a copy of every new best tour together with its distance.
// It is the hook for live rendering.
type BestFunc func(tour Tour, distance float64)

// Cadence selects when the VNS loop applies ThreeOpt as a diversification step.
type Cadence int

const (
	// CadenceOnStall runs ThreeOpt only when LocalSearch failed to improve the
	// shaken solution in the current iteration.
	CadenceOnStall Cadence = iota

	// CadenceAlternate runs ThreeOpt on every odd iteration.
	CadenceAlternate

	// CadenceNever disables ThreeOpt.
	CadenceNever
)

// String implements fmt.Stringer.
func (c Cadence) String() string {
	switch c {
	case CadenceOnStall:
		return "stall"
	case CadenceAlternate:
		return "alternate"
	case CadenceNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseCadence maps "stall", "alternate" or "never" onto a Cadence.
func ParseCadence(s string) (Cadence, error) {
	switch s {
	case "stall", "":
		return CadenceOnStall, nil
	case "alternate":
		return CadenceAlternate, nil
	case "never":
		return CadenceNever, nil
	default:
		return 0, ErrInvalidInput
	}
}

// Params are the three search budgets exposed to callers.
type Params struct {
	// MaxAttempts is LocalSearch's no-improvement budget.
	MaxAttempts int

	// NeighbourhoodSize is the number of 2-opt candidates sampled per attempt.
	// It also caps the shaking strength of the VNS loop.
	NeighbourhoodSize int

	// Iterations bounds the VNS outer loop.
	Iterations int
}

// DefaultParams returns (25, 5, 1000).
func DefaultParams() Params {
	return Params{
		MaxAttempts:       DefaultMaxAttempts,
		NeighbourhoodSize: DefaultNeighbourhoodSize,
		Iterations:        DefaultIterations,
	}
}

// Options configure a RunContext.
type Options struct {
	Params

	// Seed feeds the run's random generator. Seed==0 selects defaultRNGSeed,
	// so the zero value is deterministic; callers wanting fresh runs pick a
	// seed themselves (see runner.Start).
	Seed int64

	// Cadence controls ThreeOpt diversification.
	Cadence Cadence

	// BestImprovement switches ThreeOpt from first- to best-improvement.
	BestImprovement bool

	// OnImprove is the progress sink (may be nil).
	OnImprove ProgressFunc

	// OnBest is the notify/render hook (may be nil).
	OnBest BestFunc
}

// DefaultOptions returns DefaultParams with stall-driven ThreeOpt and
// first-improvement policy.
func DefaultOptions() Options {
	return Options{
		Params:  DefaultParams(),
		Cadence: CadenceOnStall,
	}
}

// Status is the terminal state of a search.
type Status int

const (
	// StatusCompleted means every iteration ran.
	StatusCompleted Status = iota

	// StatusCancelled means the context was done before the last iteration.
	StatusCancelled
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == StatusCancelled {
		return "cancelled"
	}
	return "completed"
}

// Result is the outcome of Search.
type Result struct {
	// Tour is the best tour found (never the working solution).
	Tour Tour

	// Distance is TotalDistance(Tour).
	Distance float64

	// Iterations is the number of completed VNS iterations.
	Iterations int

	// Status tells whether the run completed or was cancelled.
	Status Status

	// Seed is the effective RNG seed, for reproduction.
	Seed int64
}

// infDistance is the initial best distance of a run.
var infDistance = math.Inf(1)

// isDone reports whether ctx has been cancelled, without blocking.
func isDone(ctx context.Context) bool {
	return ctx.Err() != nil
}
