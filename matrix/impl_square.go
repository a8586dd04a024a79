// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Own the buffer exclusively: Clone and Assign always deep-copy.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; Row/At/Set: O(1); Clone/Assign: O(n²); Render: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "NewFromRows"
	ctxRow      = "Row"
	ctxAt       = "At"
	ctxSet      = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtNewline  = "\n"
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square)(nil)

// New creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidSize.
//   - Stage 2: allocate a single zero-filled buffer of n*n values.
//
// Errors:
//   - ErrInvalidSize (n <= 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int) (*Square, error) {
	if err := ValidateSize(n); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxNew, n, err)
	}

	// make() zero-fills deterministically.
	return &Square{n: n, data: make([]float64, n*n)}, nil
}

// newUnchecked allocates an n×n zero matrix for kernels whose n is already
// known to be valid (taken from an existing Square).
func newUnchecked(n int) *Square {
	return &Square{n: n, data: make([]float64, n*n)}
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Square, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewFromRows builds a matrix from literal rows (copied, never aliased).
// MAIN DESCRIPTION:
//   - Convenience constructor for tests, examples and the CLI.
//
// Errors:
//   - ErrInvalidSize when rows is empty.
//   - ErrDimensionMismatch when any row length differs from len(rows).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromRows(rows [][]float64) (*Square, error) {
	n := len(rows)
	if err := ValidateSize(n); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	m := newUnchecked(n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(r), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], r)
	}

	return m, nil
}

// Size returns n (rows == cols). Complexity: O(1).
func (m *Square) Size() int { return m.n }

// Rows returns a deep copy of the elements as a slice of rows.
// Complexity: O(n²).
func (m *Square) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = make([]float64, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// indexOf computes the row-major offset or returns ErrNilMatrix / ErrOutOfRange.
func (m *Square) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Square) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Square) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a mutable view of row i.
// MAIN DESCRIPTION:
//   - Bracket-style access: m.Row(i) then Row.At(j)/Row.Set(j, v).
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange unless 0 <= i < n.
//
// Notes:
//   - The view shares storage with m; no copy is made.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) Row(i int) (Row, error) {
	if err := ValidateNotNil(m); err != nil {
		return Row{}, fmt.Errorf("Square.%s(%d): %w", ctxRow, i, err)
	}
	if err := ValidateIndex(i, m.n); err != nil {
		return Row{}, fmt.Errorf("Square.%s(%d): %w", ctxRow, i, err)
	}

	return Row{idx: i, data: m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]}, nil
}

// Len returns the number of elements in the row.
func (r Row) Len() int { return len(r.data) }

// At reads column j of the row. Column indexes are bound-checked too.
func (r Row) At(j int) (float64, error) {
	if j < 0 || j >= len(r.data) {
		return 0, squareErrorf(ctxAt, r.idx, j, ErrOutOfRange)
	}

	return r.data[j], nil
}

// Set writes v into column j of the row (write-through to the owner).
func (r Row) Set(j int, v float64) error {
	if j < 0 || j >= len(r.data) {
		return squareErrorf(ctxSet, r.idx, j, ErrOutOfRange)
	}
	r.data[j] = v

	return nil
}

// Values returns a copy of the row's elements.
func (r Row) Values() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data)

	return out
}

// Clone returns a deep copy (new buffer).
// Complexity: O(n²).
func (m *Square) Clone() *Square {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Square{n: m.n, data: cp}
}

// Assign replaces the receiver's contents with a deep copy of src and returns
// the receiver.
// MAIN DESCRIPTION:
//   - Copy-assignment: the old buffer is dropped, then src is copied.
//
// Behavior highlights:
//   - m.Assign(m) is a no-op.
//   - When sizes match the existing buffer is reused; otherwise a new one is
//     allocated, so Row views taken before a resize keep pointing at the old buffer.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(n²), Space O(n²) on resize, O(1) otherwise.
func (m *Square) Assign(src *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAssign, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opAssign, err)
	}
	if m == src {
		return m, nil
	}
	if m.n != src.n {
		m.n = src.n
		m.data = make([]float64, len(src.data))
	}
	copy(m.data, src.data)

	return m, nil
}

// String renders the matrix with the default options: one line per row,
// elements separated by a single space.
func (m *Square) String() string {
	return Render(m)
}

// Render produces a multi-line text form of m: one line per row in row order,
// elements joined by the configured delimiter, each row terminated by "\n".
// A nil matrix renders as the empty string.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the output.
func Render(m *Square, opts ...RenderOption) string {
	if m == nil {
		return ""
	}
	o := gatherRenderOptions(opts...)

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		if o.brackets {
			b.WriteString(_fmtRowOpen)
		}
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(o.delimiter)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', o.precision, 64))
		}
		if o.brackets {
			b.WriteString(_fmtRowClose)
		}
		b.WriteString(_fmtNewline)
	}

	return b.String()
}
