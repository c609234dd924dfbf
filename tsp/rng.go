// Package tsp - RNG utilities owned by a run.
//
// Every stochastic step (seeding, 2-opt cut points, shaking) draws from the
// single *rand.Rand held by a RunContext. Nothing here touches a process-wide
// generator or re-seeds from the clock.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the seed==0 policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// MixSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer. Callers combine a clock reading with a random
// stream id so that runs started in a tight loop do not share seeds.
//
// Complexity: O(1).
func MixSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// rng must be non-nil; callers validate it first.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permCities returns a random permutation of the city ids 1..n.
//
// Complexity: O(n) time, O(n) space.
func permCities(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i + 1
	}
	shuffleIntsInPlace(p, rng)
	return p
}
