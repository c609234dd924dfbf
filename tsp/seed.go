package tsp

import "math/rand"

// SeedTour returns a uniformly random closed tour over the cities of dm:
// a permutation of 1..N followed by its first element.
//
// Returns ErrNilMatrix for a nil matrix and ErrInvalidInput when N < 2 or
// rng is nil.
//
// Complexity: O(N).
func SeedTour(dm *DistanceMatrix, rng *rand.Rand) (Tour, error) {
	if err := validateMatrix(dm); err != nil {
		return nil, err
	}
	if err := validateRNG(rng); err != nil {
		return nil, err
	}

	n := dm.Cities()
	perm := permCities(n, rng)
	tour := make(Tour, n+1)
	copy(tour, perm)
	tour[n] = tour[0]

	return tour, nil
}
