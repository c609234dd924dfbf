// Package tsp - validation shared by the operators and the search loop.
//
// All checks run synchronously at call entry, before any state is touched,
// and report ErrInvalidInput / ErrNilMatrix only.
package tsp

import "math/rand"

// validateParams rejects non-positive budgets.
//
// Complexity: O(1).
func validateParams(p Params) error {
	if p.MaxAttempts <= 0 || p.NeighbourhoodSize <= 0 || p.Iterations <= 0 {
		return ErrInvalidInput
	}
	return nil
}

// validateOptions checks Params plus the enumerated knobs.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if err := validateParams(opts.Params); err != nil {
		return err
	}
	switch opts.Cadence {
	case CadenceOnStall, CadenceAlternate, CadenceNever:
	default:
		return ErrInvalidInput
	}
	return nil
}

// validateMatrix requires a non-nil matrix with at least two cities.
func validateMatrix(dm *DistanceMatrix) error {
	if dm == nil {
		return ErrNilMatrix
	}
	if dm.Cities() < 2 {
		return ErrInvalidInput
	}
	return nil
}

// validateTourOn checks dm and that tour is a closed permutation of its cities.
//
// Complexity: O(n).
func validateTourOn(dm *DistanceMatrix, tour Tour) error {
	if err := validateMatrix(dm); err != nil {
		return err
	}
	return ValidateTour(tour, dm.Cities())
}

// validateRNG rejects a nil generator: a silent per-call default stream would
// make repeated calls return identical moves.
func validateRNG(rng *rand.Rand) error {
	if rng == nil {
		return ErrInvalidInput
	}
	return nil
}
