// Package tsp - immutable distance matrix over 1-based city ids.
//
// DistanceMatrix prefetches all weights of a matrix.Matrix into a flat
// row-major buffer once, so hot loops (2-opt sampling, 3-opt scans, tour
// evaluation) read w[u*n+v] without interface indirection or error returns.
//
// Policy:
//   - Square shape is required; n≥1 is accepted here, n≥2 is enforced by
//     SeedTour and ValidateTour.
//   - No symmetry or triangle inequality is required.
//   - NaN/negative weights are NOT rejected: they are the caller's
//     responsibility (matrix.LoadTSV rejects them at ingestion).
package tsp

import (
	"github.com/katalvlaran/tourvns/matrix"
)

// DistanceMatrix is a read-only N×N cost table. Safe for concurrent reads.
type DistanceMatrix struct {
	n int
	w []float64
}

// NewDistanceMatrix copies m into a DistanceMatrix.
// Returns ErrNilMatrix for nil input and ErrInvalidInput for a non-square or
// empty matrix.
//
// Complexity: O(N²) time and memory.
func NewDistanceMatrix(m matrix.Matrix) (*DistanceMatrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Rows()
	if n <= 0 || m.Cols() != n {
		return nil, ErrInvalidInput
	}

	// Fast path: Dense already exposes a row-major copy.
	if d, ok := m.(*matrix.Dense); ok {
		return &DistanceMatrix{n: n, w: d.RowMajor()}, nil
	}

	w := make([]float64, n*n)
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = m.At(i, j)
			if err != nil {
				return nil, ErrInvalidInput
			}
			w[i*n+j] = x
		}
	}

	return &DistanceMatrix{n: n, w: w}, nil
}

// NewDistanceMatrixFromRows builds a DistanceMatrix from a square [][]float64.
func NewDistanceMatrixFromRows(rows [][]float64) (*DistanceMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidInput
	}
	w := make([]float64, 0, n*n)
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrInvalidInput
		}
		w = append(w, rows[i]...)
	}

	return &DistanceMatrix{n: n, w: w}, nil
}

// Cities returns N.
func (dm *DistanceMatrix) Cities() int { return dm.n }

// Distance returns the cost of travelling from city a to city b (1-based).
// Out-of-range ids panic like a slice index would; public entry points
// validate tours before reaching this accessor.
func (dm *DistanceMatrix) Distance(a, b int) float64 {
	return dm.w[(a-1)*dm.n+(b-1)]
}
