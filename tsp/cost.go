// Package tsp: tour evaluation.
//
// TotalDistance sums the arcs of a closed tour. Sums are stabilized to 1e-9
// (round1e9) so that the same cycle evaluated from a different start or,
// on symmetric matrices, in the opposite direction compares equal.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TotalDistance returns Σ dm.Distance(tour[k], tour[k+1]) for k∈[0, len-2].
// Because tours carry their closing city, the last pair is the closing edge.
//
// A nil or empty tour (or a single city) evaluates to 0 instead of failing;
// SeedTour and ValidateTour are the places where N<2 is rejected.
//
// Complexity: O(n).
func TotalDistance(dm *DistanceMatrix, tour Tour) float64 {
	if dm == nil || len(tour) < 2 {
		return 0
	}
	return round1e9(pathCost(dm, tour))
}

// pathCost is the unrounded arc sum used by the prefix-sum tables.
func pathCost(dm *DistanceMatrix, tour Tour) float64 {
	var (
		sum float64
		k   int
		L   = len(tour) - 1
	)
	for k = 0; k < L; k++ {
		sum += dm.Distance(tour[k], tour[k+1])
	}
	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Infinities and NaN pass through unchanged.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Round(x*roundScale) / roundScale
}
