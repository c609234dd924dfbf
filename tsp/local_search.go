// Package tsp - stochastic hill-climbing over the 2-opt neighbourhood.
//
// Each attempt samples neighbourhoodSize random 2-opt candidates from the
// current solution and keeps the cheapest. The candidate replaces the
// solution only if it is strictly cheaper. The attempt counter resets on
// every accepted move, so maxAttempts is a no-improvement budget rather than
// an iteration count.
package tsp

import "math/rand"

// LocalSearch hill-climbs from tour and returns the best solution found,
// which is never more expensive than tour. onImprove (may be nil) is called
// synchronously with every accepted distance, which is always a new best of
// this call.
//
// Errors: ErrNilMatrix / ErrInvalidInput for an invalid matrix or tour, a nil
// rng, or non-positive maxAttempts / neighbourhoodSize.
//
// Complexity: O((maxAttempts + accepted moves) · neighbourhoodSize · N).
func LocalSearch(
	dm *DistanceMatrix,
	tour Tour,
	rng *rand.Rand,
	maxAttempts int,
	neighbourhoodSize int,
	onImprove ProgressFunc,
) (Tour, error) {
	if err := validateTourOn(dm, tour); err != nil {
		return nil, err
	}
	if err := validateRNG(rng); err != nil {
		return nil, err
	}
	if maxAttempts <= 0 || neighbourhoodSize <= 0 {
		return nil, ErrInvalidInput
	}

	out, _ := localSearch(dm, tour, rng, maxAttempts, neighbourhoodSize, onImprove)
	return out, nil
}

// localSearch is the unchecked core. It returns the solution and its distance.
func localSearch(
	dm *DistanceMatrix,
	tour Tour,
	rng *rand.Rand,
	maxAttempts int,
	neighbourhoodSize int,
	onImprove ProgressFunc,
) (Tour, float64) {
	var (
		solution = tour.Clone()
		cost     = TotalDistance(dm, solution)
		count    int
	)

	for count < maxAttempts {
		var (
			cand     Tour
			candCost = infDistance
			s        int
		)
		for s = 0; s < neighbourhoodSize; s++ {
			c := stochastic2Opt(solution, rng)
			if cc := TotalDistance(dm, c); cc < candCost {
				cand, candCost = c, cc
			}
		}

		if candCost < cost {
			solution, cost = cand, candCost
			count = 0
			if onImprove != nil {
				onImprove(cost)
			}
			continue
		}
		count++
	}

	return solution, cost
}
