// Package tsp - variable neighbourhood search driver.
//
// RunContext owns everything one optimization run needs: its validated
// options, a single random generator seeded once, and the progress/notify
// callbacks. There is no package-level mutable state, so independent runs
// never interfere and a fixed Seed reproduces a run exactly.
//
// Search loop (per iteration):
//  1. Stop with StatusCancelled if ctx is done (checked before any work).
//  2. Shake: from the second iteration on, start from best perturbed by k
//     random 2-opt moves. k starts at 1, grows after a non-improving
//     iteration and wraps back to 1 past NeighbourhoodSize; an improving
//     iteration resets it to 1.
//  3. LocalSearch the shaken solution.
//  4. ThreeOpt per Cadence.
//  5. On a strictly better distance, update best and notify.
//
// Cancellation latency is one iteration: one LocalSearch call plus, when
// ThreeOpt is active, one row of its scan (it polls ctx per outer index).
package tsp

import (
	"context"
	"math/rand"
)

// RunContext is the per-run state holder. Not safe for concurrent use.
type RunContext struct {
	opts Options
	seed int64
	rng  *rand.Rand
}

// NewRunContext validates opts and seeds the run's generator.
// Returns ErrInvalidInput for non-positive params or an unknown Cadence.
func NewRunContext(opts Options) (*RunContext, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	seed := effectiveSeed(opts.Seed)

	return &RunContext{
		opts: opts,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Seed returns the effective RNG seed.
func (rc *RunContext) Seed() int64 { return rc.seed }

// Options returns the validated options.
func (rc *RunContext) Options() Options { return rc.opts }

// SeedTour draws a random closed tour from the run's generator.
func (rc *RunContext) SeedTour(dm *DistanceMatrix) (Tour, error) {
	return SeedTour(dm, rc.rng)
}

// Solve seeds a random tour and searches from it.
func (rc *RunContext) Solve(ctx context.Context, dm *DistanceMatrix) (Result, error) {
	seed, err := rc.SeedTour(dm)
	if err != nil {
		return Result{}, err
	}
	return rc.Search(ctx, dm, seed)
}

// Search runs VNS from seed and returns the best tour found.
//
// Both terminal states (StatusCompleted, StatusCancelled) return the best
// tour, never the working one; cancelling before the first iteration returns
// a copy of seed. OnImprove observes a strictly decreasing sequence and the
// final Result.Distance equals its last value whenever it was called.
//
// Errors: ErrNilMatrix / ErrInvalidInput when seed is not a closed tour over
// dm's cities. Validation happens before any state changes.
func (rc *RunContext) Search(ctx context.Context, dm *DistanceMatrix, seed Tour) (Result, error) {
	if err := validateTourOn(dm, seed); err != nil {
		return Result{}, err
	}

	var (
		p        = rc.opts.Params
		rep      = newReporter(rc.opts.OnImprove)
		solution = seed.Clone()
		best     = seed.Clone()
		bestDist = infDistance
		k        = 1
		iter     int
		status   = StatusCompleted
	)

	for iter = 0; iter < p.Iterations; iter++ {
		if isDone(ctx) {
			status = StatusCancelled
			break
		}

		start := solution
		if iter > 0 {
			start = shake(best, k, rc.rng)
		}
		startDist := TotalDistance(dm, start)

		cand, candDist := localSearch(dm, start, rc.rng, p.MaxAttempts, p.NeighbourhoodSize, rep.report)
		if rc.useThreeOpt(iter, candDist < startDist) {
			cand = threeOpt(ctx, dm, cand, rc.opts.BestImprovement)
			candDist = TotalDistance(dm, cand)
		}
		solution = cand

		if candDist < bestDist {
			best, bestDist = cand.Clone(), candDist
			rep.report(bestDist)
			if rc.opts.OnBest != nil {
				rc.opts.OnBest(best.Clone(), bestDist)
			}
			k = 1
			continue
		}
		k++
		if k > p.NeighbourhoodSize {
			k = 1
		}
	}

	if bestDist == infDistance {
		bestDist = TotalDistance(dm, best)
	}

	return Result{
		Tour:       best,
		Distance:   bestDist,
		Iterations: iter,
		Status:     status,
		Seed:       rc.seed,
	}, nil
}

// useThreeOpt applies the Cadence policy for iteration iter.
func (rc *RunContext) useThreeOpt(iter int, improved bool) bool {
	switch rc.opts.Cadence {
	case CadenceAlternate:
		return iter%2 == 1
	case CadenceOnStall:
		return !improved
	default:
		return false
	}
}

// VariableNeighborhoodSearch is a one-shot helper: it builds a RunContext from
// opts and runs Search from seed.
func VariableNeighborhoodSearch(ctx context.Context, dm *DistanceMatrix, seed Tour, opts Options) (Result, error) {
	rc, err := NewRunContext(opts)
	if err != nil {
		return Result{}, err
	}
	return rc.Search(ctx, dm, seed)
}
