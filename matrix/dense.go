// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage used for distance tables.
// Dense is a concrete implementation of the Matrix interface backed by a
// gonum mat.Dense, with bounds-checked accessors that return errors instead
// of panicking.
package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	m *mat.Dense
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{m: mat.NewDense(rows, cols, nil)}, nil
}

// NewDenseFromRows builds a Dense matrix from a rectangular [][]float64.
// The input is copied; later writes to rows do not affect the result.
// Returns ErrInvalidDimensions for an empty input; ragged input is reported
// as ErrMalformedInput.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r    = len(rows)
		c    = len(rows[0])
		data = make([]float64, 0, r*c)
		i    int
	)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrMalformedInput)
		}
		data = append(data, rows[i]...)
	}

	return &Dense{m: mat.NewDense(r, c, data)}, nil
}

// Rows returns the number of rows in the matrix.
func (d *Dense) Rows() int {
	r, _ := d.m.Dims()
	return r
}

// Cols returns the number of columns in the matrix.
func (d *Dense) Cols() int {
	_, c := d.m.Dims()
	return c
}

// inBounds reports whether (row, col) addresses a stored cell.
func (d *Dense) inBounds(row, col int) bool {
	r, c := d.m.Dims()
	return row >= 0 && row < r && col >= 0 && col < c
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if !d.inBounds(row, col) {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return d.m.At(row, col), nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	if !d.inBounds(row, col) {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	d.m.Set(row, col, v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (d *Dense) Clone() Matrix {
	return &Dense{m: mat.DenseCopyOf(d.m)}
}

// RowMajor returns a fresh row-major copy of all cells.
// Useful for consumers that prefetch weights into a flat buffer.
//
// Complexity: O(r*c).
func (d *Dense) RowMajor() []float64 {
	var (
		r, c = d.m.Dims()
		out  = make([]float64, 0, r*c)
		i    int
	)
	for i = 0; i < r; i++ {
		out = append(out, d.m.RawRowView(i)...)
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (d *Dense) String() string {
	var (
		sb   strings.Builder
		r, c = d.m.Dims()
		i, j int
	)
	for i = 0; i < r; i++ {
		sb.WriteByte('[')
		for j = 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d.m.At(i, j))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
