// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions MUST return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates a nil Matrix was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (loader ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeDistance signals a negative cell in a distance table.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrMalformedInput marks a distance table that could not be parsed
	// (unparsable or empty cells, rows without distance cells, no data rows).
	ErrMalformedInput = errors.New("matrix: malformed input")
)
