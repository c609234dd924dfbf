// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Metric closure of a distance table (Floyd–Warshall), deterministic loop order.
//   - Turns a table that violates the triangle inequality into shortest-path
//     distances, so a tour leg never costs more than a detour.
//
// Contract:
//   - Square matrix; +Inf means "no direct leg"; the diagonal is forced to 0.

package matrix

import (
	"fmt"
	"math"
)

const opMetricClosure = "MetricClosure"

// MetricClosure replaces every cell (i,j) of m with the length of the
// shortest i→j path through the table, in place.
// Returns ErrNilMatrix for nil, ErrNonSquare for a non-square m and ErrNaNInf when a NaN is present.
//
// Loop order is fixed (k → i → j); relaxation is strict, so ties keep the
// direct value.
// Complexity: Time O(n³), Extra space O(1) on *Dense, O(n²) otherwise.
func MetricClosure(m Matrix) error {
	if m == nil {
		return fmt.Errorf("%s: %w", opMetricClosure, ErrNilMatrix)
	}
	n := m.Rows()
	if n != m.Cols() {
		return fmt.Errorf("%s: %dx%d: %w", opMetricClosure, n, m.Cols(), ErrNonSquare)
	}

	var data []float64
	d, dense := m.(*Dense)
	if dense {
		data = d.m.RawMatrix().Data
		if d.m.RawMatrix().Stride != n {
			data = d.RowMajor()
			dense = false
		}
	} else {
		data = make([]float64, n*n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return fmt.Errorf("%s: %w", opMetricClosure, err)
				}
				data[i*n+j] = v
			}
		}
	}

	var i int
	for i = range data {
		if math.IsNaN(data[i]) {
			return fmt.Errorf("%s: cell (%d,%d): %w", opMetricClosure, i/n, i%n, ErrNaNInf)
		}
	}
	for i = 0; i < n; i++ {
		data[i*n+i] = 0
	}

	floydWarshallInPlace(data, n)

	if dense {
		return nil
	}
	var j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := m.Set(i, j, data[i*n+j]); err != nil {
				return fmt.Errorf("%s: %w", opMetricClosure, err)
			}
		}
	}

	return nil
}

// floydWarshallInPlace relaxes a flat row-major n×n buffer.
func floydWarshallInPlace(data []float64, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
