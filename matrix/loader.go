// SPDX-License-Identifier: MIT

// Package matrix: tab-delimited distance table ingestion.
//
// Format:
//
//	<corner>  A    B    C
//	A         0    12   7.5
//	B         12   0    3
//	C         7.5  3    0
//
// The first row and the first column carry labels and are ignored for the
// numeric payload; the first column is returned as row labels. Remaining cells
// must be non-negative floats and form an N×N block. +Inf cells ("no direct
// leg") are accepted only under WithAllowInf.
package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadOption tunes LoadTSV.
type LoadOption func(*loadOptions)

type loadOptions struct {
	allowInf bool
}

// WithAllowInf accepts "+Inf"/"Inf" cells as a missing direct leg, for tables
// that are closed with MetricClosure before use. NaN and -Inf stay rejected.
func WithAllowInf() LoadOption {
	return func(o *loadOptions) { o.allowInf = true }
}

// LoadFile opens path and parses it with LoadTSV.
func LoadFile(path string, opts ...LoadOption) (*Dense, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load distance table %q: %w", path, err)
	}
	defer f.Close()

	d, labels, err := LoadTSV(f, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("load distance table %q: %w", path, err)
	}

	return d, labels, nil
}

// LoadTSV parses a label-framed, tab-delimited distance table.
//
// Errors (all matchable with errors.Is):
//   - ErrMalformedInput: no data rows, a row without cells, unparsable or empty cells.
//   - ErrNonSquare: ragged rows or a block that is not N×N.
//   - ErrNaNInf: a cell parsed as NaN or ±Inf (+Inf is allowed under WithAllowInf).
//   - ErrNegativeDistance: a negative cell.
//
// Complexity: O(N²).
func LoadTSV(r io.Reader, opts ...LoadOption) (*Dense, []string, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1 // widths are checked below with better messages
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	// Header row: labels only.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("empty table: %w", ErrMalformedInput)
		}
		return nil, nil, fmt.Errorf("header: %v: %w", err, ErrMalformedInput)
	}

	var (
		rows   [][]float64
		labels []string
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%v: %w", err, ErrMalformedInput)
		}
		line, _ = cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("line %d: no distance cells: %w", line, ErrMalformedInput)
		}

		row := make([]float64, len(rec)-1)
		var j int
		for j = 1; j < len(rec); j++ {
			v, perr := parseCell(rec[j], o.allowInf)
			if perr != nil {
				return nil, nil, fmt.Errorf("line %d column %d: %w", line, j+1, perr)
			}
			row[j-1] = v
		}
		labels = append(labels, strings.TrimSpace(rec[0]))
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no data rows: %w", ErrMalformedInput)
	}
	var i int
	for i = range rows {
		if len(rows[i]) != len(rows) {
			return nil, nil, fmt.Errorf("row %d has %d cells, want %d: %w",
				i+1, len(rows[i]), len(rows), ErrNonSquare)
		}
	}

	d, err := NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return d, labels, nil
}

// parseCell converts one trimmed cell into a non-negative distance; +Inf
// passes only when allowInf is set.
func parseCell(s string, allowInf bool) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty cell: %w", ErrMalformedInput)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrMalformedInput)
	}
	if math.IsInf(v, 1) && allowInf {
		return v, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q: %w", s, ErrNaNInf)
	}
	if v < 0 {
		return 0, fmt.Errorf("value %q: %w", s, ErrNegativeDistance)
	}

	return v, nil
}

// isBlank reports whether every field of rec is whitespace.
func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
