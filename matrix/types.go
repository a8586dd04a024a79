// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the value types of the package: the Square matrix and
// its Row view. Constructors and accessors live in impl_square.go; operations in
// the impl_* files; errors and options in dedicated files.
package matrix

// Square is a dense n×n matrix of float64 values.
//
// Invariants:
//   - n >= 1 for every value produced by a constructor.
//   - len(data) == n*n, row-major (offset = i*n + j), zero-filled at creation.
//   - data is owned exclusively: Clone/Assign copy it, no two Square share it.
//
// The zero value is not usable; build matrices with New, NewIdentity or
// NewFromRows.
type Square struct {
	n    int       // rows == cols
	data []float64 // contiguous row-major storage (len == n*n)
}

// Row is a mutable window over one row of a Square.
// Writes through a Row are visible in the owning matrix. A Row stays attached
// to the buffer it was taken from: after Assign resizes the owner, take a new Row.
type Row struct {
	idx  int       // row index inside the owner (diagnostics only)
	data []float64 // owner.data[idx*n : idx*n+n]
}
