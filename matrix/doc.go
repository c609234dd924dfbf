// Package matrix holds the distance-table side of tourvns: the Matrix
// interface, a gonum-backed Dense implementation with error-returning
// accessors, a loader for label-framed, tab-delimited distance files and an
// in-place metric closure (Floyd–Warshall) for tables that break the triangle
// inequality.
//
// Indices are 0-based here; the tour engine maps its 1-based city ids onto
// rows and columns.
package matrix
