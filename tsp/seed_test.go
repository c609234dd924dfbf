package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourvns/matrix"
	"github.com/katalvlaran/tourvns/tsp"
)

func TestSeedTour_ClosedPermutation(t *testing.T) {
	dm := euclid(t, circle(17))
	rng := newRNG(seedDet)

	var i int
	for i = 0; i < 50; i++ {
		tour, err := tsp.SeedTour(dm, rng)
		require.NoError(t, err)
		requireClosedPermutation(t, tour, 17)
	}
}

func TestSeedTour_TwoCitiesZeroMatrix(t *testing.T) {
	dm, err := tsp.NewDistanceMatrixFromRows([][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)

	tour, err := tsp.SeedTour(dm, newRNG(seedDet))
	require.NoError(t, err)
	require.Len(t, tour, 3)
	assert.Equal(t, tour[0], tour[2])
	assert.NotEqual(t, tour[0], tour[1])
	assert.ElementsMatch(t, []int{1, 2}, []int(tour[:2]))
	assert.Zero(t, tsp.TotalDistance(dm, tour))
}

func TestSeedTour_InvalidInput(t *testing.T) {
	one, err := tsp.NewDistanceMatrixFromRows([][]float64{{0}})
	require.NoError(t, err)

	_, err = tsp.SeedTour(one, newRNG(seedDet))
	assert.ErrorIs(t, err, tsp.ErrInvalidInput, "one city")

	_, err = tsp.SeedTour(nil, newRNG(seedDet))
	assert.ErrorIs(t, err, tsp.ErrNilMatrix)

	_, err = tsp.SeedTour(square4(t), nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput, "nil rng")
}

func TestSeedTour_SameSeedSameTour(t *testing.T) {
	dm := euclid(t, circle(12))
	a, err := tsp.SeedTour(dm, newRNG(7))
	require.NoError(t, err)
	b, err := tsp.SeedTour(dm, newRNG(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Successive draws from one generator must not repeat the same seed tour.
func TestSeedTour_SuccessiveDrawsDiffer(t *testing.T) {
	dm := euclid(t, circle(12))
	rng := newRNG(seedDet)
	a, err := tsp.SeedTour(dm, rng)
	require.NoError(t, err)
	b, err := tsp.SeedTour(dm, rng)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewDistanceMatrix(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{0, 2, 3}, {4, 0, 6}, {7, 8, 0}})
	require.NoError(t, err)

	dm, err := tsp.NewDistanceMatrix(d)
	require.NoError(t, err)
	assert.Equal(t, 3, dm.Cities())
	assert.Equal(t, 2.0, dm.Distance(1, 2))
	assert.Equal(t, 4.0, dm.Distance(2, 1))
	assert.Equal(t, 8.0, dm.Distance(3, 2))

	// The engine owns a copy; later writes to the source are invisible.
	require.NoError(t, d.Set(0, 1, 99))
	assert.Equal(t, 2.0, dm.Distance(1, 2))

	_, err = tsp.NewDistanceMatrix(nil)
	assert.ErrorIs(t, err, tsp.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.NewDistanceMatrix(rect)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)

	_, err = tsp.NewDistanceMatrixFromRows([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}
