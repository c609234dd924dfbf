package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourvns/tsp"
)

func TestLocalSearch_NeverWorsens(t *testing.T) {
	for _, dm := range []*tsp.DistanceMatrix{euclid(t, circle(15)), randomAsym(t, 15, 3)} {
		rng := newRNG(seedDet)
		var trial int
		for trial = 0; trial < 10; trial++ {
			tour, err := tsp.SeedTour(dm, rng)
			require.NoError(t, err)

			got, err := tsp.LocalSearch(dm, tour, rng, 20, 5, nil)
			require.NoError(t, err)
			requireClosedPermutation(t, got, 15)
			assert.LessOrEqual(t, tsp.TotalDistance(dm, got), tsp.TotalDistance(dm, tour))
		}
	}
}

// Small instances are solved to optimality with a generous attempt budget.
func TestLocalSearch_FourCitiesReachOptimum(t *testing.T) {
	dm := square4(t)
	seeds := []tsp.Tour{
		{1, 2, 3, 4, 1},
		{1, 3, 2, 4, 1},
		{1, 2, 4, 3, 1},
		{4, 2, 1, 3, 4},
	}
	for s, seed := range seeds {
		got, err := tsp.LocalSearch(dm, seed, newRNG(int64(s+1)), 2000, 5, nil)
		require.NoError(t, err)
		assert.Equal(t, square4Opt, tsp.TotalDistance(dm, got), "seed %v", seed)
	}
}

func TestLocalSearch_CallbackStrictlyDecreasing(t *testing.T) {
	dm := euclid(t, circle(25))
	rng := newRNG(seedDet)
	tour, err := tsp.SeedTour(dm, rng)
	require.NoError(t, err)

	var reported []float64
	got, err := tsp.LocalSearch(dm, tour, rng, 50, 5, func(d float64) {
		reported = append(reported, d)
	})
	require.NoError(t, err)

	require.NotEmpty(t, reported, "a random 25-city tour is far from 2-opt optimal")
	assert.Less(t, reported[0], tsp.TotalDistance(dm, tour))
	var i int
	for i = 1; i < len(reported); i++ {
		assert.Less(t, reported[i], reported[i-1])
	}
	assert.Equal(t, reported[len(reported)-1], tsp.TotalDistance(dm, got))
}

// The input is returned (as a copy) when no improvement exists.
func TestLocalSearch_AtOptimumKeepsTour(t *testing.T) {
	dm := square4(t)
	opt := tsp.Tour{1, 2, 3, 4, 1}
	calls := 0
	got, err := tsp.LocalSearch(dm, opt, newRNG(seedDet), 30, 5, func(float64) { calls++ })
	require.NoError(t, err)
	assert.Equal(t, square4Opt, tsp.TotalDistance(dm, got))
	assert.Zero(t, calls)
}

func TestLocalSearch_InvalidInput(t *testing.T) {
	dm := square4(t)
	tour := identityTour(4)
	rng := newRNG(seedDet)

	_, err := tsp.LocalSearch(dm, tour, rng, 0, 5, nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
	_, err = tsp.LocalSearch(dm, tour, rng, 5, 0, nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
	_, err = tsp.LocalSearch(dm, tsp.Tour{1, 2, 1}, rng, 5, 5, nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
	_, err = tsp.LocalSearch(dm, tour, nil, 5, 5, nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}
