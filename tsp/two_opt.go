// Package tsp - stochastic 2-opt perturbation.
//
// Stochastic2Opt picks two cut positions at random and reverses the segment
// between them. It is purely combinatorial: distances are never read, so the
// same move is valid on symmetric and asymmetric matrices alike (on an
// asymmetric matrix the reversed segment simply changes cost).
//
// Cut-point rule:
//   - i, j are drawn uniformly from [0, N-1] (positions of distinct cities).
//   - i == j (the same edge) is resampled.
//   - (0, N-1) is resampled: reversing the whole cycle removes the closing
//     edge twice and only flips direction, which [1..N-1] already covers.
//   - Adjacent positions are allowed; swapping two neighbours is the only
//     move that changes the cycle of a 4-city tour.
//   - N == 2 admits no such pair; the tour is returned unchanged (copied).
//
// Closure: the reversal may move position 0, so the closing slot is always
// rewritten from the new first city.
package tsp

import "math/rand"

// Stochastic2Opt returns a new tour equal to tour with a random segment
// [i..j] reversed. dm is only used to validate the tour's shape.
//
// Complexity: O(N) for the copy plus O(j-i) for the reversal.
func Stochastic2Opt(dm *DistanceMatrix, tour Tour, rng *rand.Rand) (Tour, error) {
	if err := validateTourOn(dm, tour); err != nil {
		return nil, err
	}
	if err := validateRNG(rng); err != nil {
		return nil, err
	}
	return stochastic2Opt(tour, rng), nil
}

// stochastic2Opt is the unchecked core shared by LocalSearch and shaking.
func stochastic2Opt(tour Tour, rng *rand.Rand) Tour {
	out := tour.Clone()
	n := len(tour) - 1
	if n < 3 {
		return out
	}

	i, j := pickCutPoints(n, rng)
	reverseSegmentInPlace(out, i, j)
	closeInPlace(out)

	return out
}

// pickCutPoints draws 0 ≤ i < j ≤ n-1, excluding (0, n-1), by rejection
// sampling. For n ≥ 3 at least 4/9 of the draws are accepted.
func pickCutPoints(n int, rng *rand.Rand) (int, int) {
	var i, j int
	for {
		i = rng.Intn(n)
		j = rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		if i != j && !(i == 0 && j == n-1) {
			return i, j
		}
	}
}

// shake applies k random 2-opt moves to tour and returns the result.
// It is the VNS perturbation step: larger k jumps further from tour.
func shake(tour Tour, k int, rng *rand.Rand) Tour {
	out := tour.Clone()
	var s int
	for s = 0; s < k; s++ {
		out = stochastic2Opt(out, rng)
	}
	return out
}
