// Package tsp: tour utilities shared by the operators and the search loop.
//
// Helpers here operate purely on tour structure (1-based id sequences) and
// never read distances:
//   - ValidateTour: enforce closed Hamiltonian-cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given city.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//   - reverseSegmentInPlace / closeInPlace: the 2-opt primitive and the
//     closure rule every operator ends with.
package tsp

import (
	"strconv"
	"strings"
)

// ValidateTour enforces:
//
//	n >= 2, len(tour) == n+1, tour[0] == tour[n],
//	each city c∈[1..n] appears exactly once in positions [0..n-1].
//
// Returns ErrInvalidInput on any violation.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour Tour, n int) error {
	if n < 2 {
		return ErrInvalidInput
	}
	if len(tour) != n+1 {
		return ErrInvalidInput
	}
	if tour[0] != tour[n] {
		return ErrInvalidInput
	}

	seen := make([]bool, n+1)

	var (
		i int
		c int
	)
	for i = 0; i < n; i++ {
		c = tour[i]
		if c < 1 || c > n {
			return ErrInvalidInput
		}
		if seen[c] {
			return ErrInvalidInput
		}
		seen[c] = true
	}
	return nil
}

// RotateTourToStart returns a fresh closed tour shifted so out[0]==out[n]==start.
// Returns ErrInvalidInput when tour is not closed or start is not on it.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour Tour, start int) (Tour, error) {
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return nil, ErrInvalidInput
	}
	n := len(tour) - 1

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrInvalidInput
	}

	out := make(Tour, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start
	return out, nil
}

// EqualToursModuloRotation checks equality of two closed tours under rotation
// (same direction). Assumes both inputs are closed (len==n+1).
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b Tour) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var (
		n  = len(a) - 1
		st = a[0]
	)
	if a[n] != st || b[n] != b[0] {
		return false
	}
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == st {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}
	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// String renders the tour as "1 4 2 3 1".
func (t Tour) String() string {
	var sb strings.Builder
	for i, c := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// reverseSegmentInPlace reverses tour[i..k] (inclusive). Indices must satisfy
// 0 ≤ i < k ≤ n-1 so the closing slot is never touched; call closeInPlace
// afterwards when i == 0.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(tour Tour, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// closeInPlace re-establishes tour[n] == tour[0].
func closeInPlace(tour Tour) {
	if len(tour) > 0 {
		tour[len(tour)-1] = tour[0]
	}
}
