// Package tsp_test provides small helpers shared across *_test.go files:
// deterministic instance builders and tour-shape assertions.
package tsp_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourvns/tsp"
)

const (
	// seedDet is the fixed seed used by RNG-driven tests.
	seedDet = int64(42)

	// square4Opt is the optimal tour length of square4.
	square4Opt = 4.0
)

// euclid builds a symmetric Euclidean distance matrix for pts.
func euclid(t testing.TB, pts [][2]float64) *tsp.DistanceMatrix {
	t.Helper()
	n := len(pts)
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}
	dm, err := tsp.NewDistanceMatrixFromRows(rows)
	require.NoError(t, err)

	return dm
}

// circle places n points on a gently rippled circle (avoids exact ties).
// Its optimal tour visits the points in angular order.
func circle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}
	return pts
}

// randomAsym builds an asymmetric matrix with integer-ish weights in [1, 100].
func randomAsym(t testing.TB, n int, seed int64) *tsp.DistanceMatrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = float64(1 + rng.Intn(100))
			}
		}
	}
	dm, err := tsp.NewDistanceMatrixFromRows(rows)
	require.NoError(t, err)

	return dm
}

// square4 is a 4-city symmetric instance: the ring A-B-C-D costs 4, both
// diagonals cost 10, so every other cycle costs 22.
func square4(t testing.TB) *tsp.DistanceMatrix {
	t.Helper()
	dm, err := tsp.NewDistanceMatrixFromRows([][]float64{
		{0, 1, 10, 1},
		{1, 0, 1, 10},
		{10, 1, 0, 1},
		{1, 10, 1, 0},
	})
	require.NoError(t, err)

	return dm
}

// requireClosedPermutation asserts the tour invariants over n cities.
func requireClosedPermutation(t testing.TB, tour tsp.Tour, n int) {
	t.Helper()
	require.Len(t, tour, n+1, "tour length")
	require.Equal(t, tour[0], tour[n], "closure")
	require.NoError(t, tsp.ValidateTour(tour, n))

	got := append([]int(nil), tour[:n]...)
	sort.Ints(got)
	var i int
	for i = 0; i < n; i++ {
		require.Equal(t, i+1, got[i], "city set")
	}
}

// identityTour returns 1, 2, …, n, 1.
func identityTour(n int) tsp.Tour {
	tour := make(tsp.Tour, n+1)
	var i int
	for i = 0; i < n; i++ {
		tour[i] = i + 1
	}
	tour[n] = 1
	return tour
}

// newRNG returns a fresh deterministic generator.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
