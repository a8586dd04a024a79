// Package matrix implements Square, a dense n×n float64 matrix value type with
// a full operator algebra.
//
// The matrix package provides:
//
//   - Construction & access: New, NewIdentity, NewFromRows, Clone, Assign,
//     Row (mutable row view), At/Set.
//   - Arithmetic: Add, Sub, Negate, Mul, Hadamard, Scale/ScaleLeft,
//     DivScalar, ModScalar, plus in-place methods (AddInPlace, MulInPlace, ...).
//   - Structure: Transpose, Pow (exponentiation by squaring), Inc/Dec and
//     PostInc/PostDec.
//   - Comparison: ElementSum and the sum-based relations Equal, Less,
//     Greater, LessOrEqual, GreaterOrEqual. Equality is equality of element
//     sums, not element-wise equality; use Identical or AllClose for that.
//   - Determinant: Det (cofactor expansion along the first row) and DetLU.
//   - Rendering: String and Render (one line per row).
//
// Storage is a single row-major buffer of n*n values owned by the matrix.
// Operations never panic on user errors; they return the sentinels declared in
// errors.go, wrapped with an operation tag and matched with errors.Is. A nil
// operand yields ErrNilMatrix wherever an error is returned (functions, Assign,
// Row, At, Set and the *InPlace methods). The error-free methods Size, Rows, Clone, Inc,
// Dec, PostInc and PostDec require a non-nil receiver.
//
// A Square is not safe for concurrent mutation; share clones instead.
//
// See the examples in this package for usage patterns.
package matrix
