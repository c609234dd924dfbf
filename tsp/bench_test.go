// Package tsp_test: benchmarks for the engine's hot paths.
// Inputs are built outside the timer on deterministic rippled circles.
package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tourvns/tsp"
)

func BenchmarkTotalDistance_n200(b *testing.B) {
	dm := euclid(b, circle(200))
	tour := identityTour(200)
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		_ = tsp.TotalDistance(dm, tour)
	}
}

func BenchmarkStochastic2Opt_n200(b *testing.B) {
	dm := euclid(b, circle(200))
	tour := identityTour(200)
	rng := newRNG(seedDet)
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		_, _ = tsp.Stochastic2Opt(dm, tour, rng)
	}
}

func BenchmarkThreeOptBest_n40(b *testing.B) {
	dm := euclid(b, circle(40))
	tour, _ := tsp.SeedTour(dm, newRNG(seedDet))
	ctx := context.Background()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		_, _ = tsp.ThreeOpt(ctx, dm, tour, true)
	}
}

func BenchmarkLocalSearch_n100(b *testing.B) {
	dm := euclid(b, circle(100))
	rng := newRNG(seedDet)
	tour, _ := tsp.SeedTour(dm, rng)
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		_, _ = tsp.LocalSearch(dm, tour, rng, 25, 5, nil)
	}
}

func BenchmarkSearch_n50(b *testing.B) {
	dm := euclid(b, circle(50))
	opts := tsp.DefaultOptions()
	opts.Iterations = 50
	opts.Seed = seedDet
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		rc, _ := tsp.NewRunContext(opts)
		_, _ = rc.Solve(context.Background(), dm)
	}
}
