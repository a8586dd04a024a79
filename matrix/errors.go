// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap exactly once with their operation tag
// via matrixErrorf ("Add: matrix: dimension mismatch"); callers use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> size/index -> dimension mismatch -> scalar domain (zero
// divisor, negative exponent) -> numeric failures (singular pivot).

var (
	// ErrInvalidSize is returned when a requested size is not positive (n <= 0),
	// or when a literal row set is empty.
	ErrInvalidSize = errors.New("matrix: size must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (Row/At/Set and Row.At/Row.Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes, or literal rows
	// that do not form a square.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivideByZero is returned by scalar division and scalar modulo when the
	// divisor is zero.
	ErrDivideByZero = errors.New("matrix: divide by zero")

	// ErrNegativeExponent is returned by Pow when p < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a zero pivot is encountered during LU
	// (no pivoting, intentional for determinism).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf where a finite value is required
	// (comparison tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
