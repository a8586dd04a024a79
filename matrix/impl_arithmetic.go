// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Square: element-wise
// addition/subtraction, negation, matrix product, Hadamard product, scalar
// multiply/divide/modulo, and their in-place variants. All functions perform
// strict fail-fast validation and return tagged sentinels.
//
// Purpose:
//   - Declare canonical arithmetic kernels and the operation tags used for error wrapping.
//   - Keep every loop a single flat walk over the row-major buffer where possible.
//
// Notes:
//   - In-place variants validate BEFORE touching the receiver: on error the
//     receiver is unchanged.
//   - Element-wise in-place updates read each cell before writing the same cell,
//     so passing the receiver as the operand (m.AddInPlace(m)) is safe.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulations (dot products, sums).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAssign    = "Assign"
	opAdd       = "Add"
	opSub       = "Sub"
	opNegate    = "Negate"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opModScalar = "ModScalar"
	opTranspose = "Transpose"
	opPow       = "Pow"
	opDet       = "Det"
	opTrace     = "Trace"
	opLU        = "LU"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the new result.
func addSub(a, b *Square, sign float64, opTag string) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newUnchecked(a.n)
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Add(a, b *Square) (*Square, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Sub(a, b *Square) (*Square, error) { return addSub(a, b, -1, opSub) }

// Negate returns C = -A.
// Errors: ErrNilMatrix.
func Negate(a *Square) (*Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}
	res := newUnchecked(a.n)
	for idx, v := range a.data {
		res.data[idx] = -v
	}

	return res, nil
}

// Mul performs the standard matrix product C = A × B.
// Implementation:
//   - Stage 1: validate both operands non-nil and of equal size.
//   - Stage 2: i→k→j loop over the flat buffers, accumulating into a fresh
//     result so a and b may be the same matrix.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for C.
//   - Every term A[i,k]·B[k,j] is accumulated, zeros included, so a zero
//     times ±Inf or NaN propagates NaN per IEEE 754.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Square) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res := newUnchecked(n)
	var (
		i, j, k                int
		av                     float64
		rowA, rowB, rowOffsetR int
	)
	for i = 0; i < n; i++ {
		rowA = i * n
		rowOffsetR = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			rowB = k * n
			for j = 0; j < n; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Hadamard computes the element-wise product C[i,j] = A[i,j]·B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Hadamard(a, b *Square) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := newUnchecked(a.n)
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// Scale returns C = s·A.
// Errors: ErrNilMatrix.
func Scale(a *Square, s float64) (*Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newUnchecked(a.n)
	for idx, v := range a.data {
		res.data[idx] = v * s
	}

	return res, nil
}

// ScaleLeft is Scale with the scalar on the left (s·A == A·s).
func ScaleLeft(s float64, a *Square) (*Square, error) { return Scale(a, s) }

// DivScalar returns C = A / s.
// Errors: ErrNilMatrix, ErrDivideByZero (s == 0).
func DivScalar(a *Square, s float64) (*Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if err := ValidateDivisor(s); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	res := newUnchecked(a.n)
	for idx, v := range a.data {
		res.data[idx] = v / s
	}

	return res, nil
}

// ModScalar returns C[i,j] = trunc(A[i,j]) mod s.
// MAIN DESCRIPTION:
//   - Each element is converted to int (truncation toward zero) and the Go
//     remainder operator is applied; the sign of a non-zero result follows the
//     element, e.g. -7.9 % 3 == -1.
//
// Notes:
//   - The conversion is lossy on purpose: fractional parts are discarded,
//     never rounded. Elements outside the int range convert per the language rules
//     (implementation-defined), as in any float→int conversion.
//
// Errors:
//   - ErrNilMatrix, ErrDivideByZero (s == 0).
func ModScalar(a *Square, s int) (*Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opModScalar, err)
	}
	if err := ValidateDivisor(float64(s)); err != nil {
		return nil, matrixErrorf(opModScalar, err)
	}
	res := newUnchecked(a.n)
	for idx, v := range a.data {
		res.data[idx] = truncMod(v, s)
	}

	return res, nil
}

// truncMod truncates v toward zero and returns the integer remainder by s.
func truncMod(v float64, s int) float64 {
	return float64(int(v) % s)
}

// ---------- In-place variants (receiver is mutated and returned) ----------

// AddInPlace performs m += other.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m unchanged).
func (m *Square) AddInPlace(other *Square) (*Square, error) {
	if err := ValidateSameSize(m, other); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for idx := range m.data {
		m.data[idx] += other.data[idx]
	}

	return m, nil
}

// SubInPlace performs m -= other.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m unchanged).
func (m *Square) SubInPlace(other *Square) (*Square, error) {
	if err := ValidateSameSize(m, other); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for idx := range m.data {
		m.data[idx] -= other.data[idx]
	}

	return m, nil
}

// MulInPlace performs m = m × other.
// The product is computed into a fresh buffer first and then copied into m,
// so m.MulInPlace(m) squares m without reading half-written cells.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m unchanged).
func (m *Square) MulInPlace(other *Square) (*Square, error) {
	prod, err := Mul(m, other)
	if err != nil {
		return nil, err // already tagged by Mul
	}
	copy(m.data, prod.data)

	return m, nil
}

// HadamardInPlace performs m[i,j] *= other[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (m unchanged).
func (m *Square) HadamardInPlace(other *Square) (*Square, error) {
	if err := ValidateSameSize(m, other); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	for idx := range m.data {
		m.data[idx] *= other.data[idx]
	}

	return m, nil
}

// DivInPlace performs m /= s.
// Errors: ErrNilMatrix, ErrDivideByZero (m unchanged).
func (m *Square) DivInPlace(s float64) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if err := ValidateDivisor(s); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	for idx := range m.data {
		m.data[idx] /= s
	}

	return m, nil
}

// ModInPlace performs m[i,j] = trunc(m[i,j]) mod s (see ModScalar).
// Errors: ErrNilMatrix, ErrDivideByZero (m unchanged).
func (m *Square) ModInPlace(s int) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opModScalar, err)
	}
	if err := ValidateDivisor(float64(s)); err != nil {
		return nil, matrixErrorf(opModScalar, err)
	}
	for idx, v := range m.data {
		m.data[idx] = truncMod(v, s)
	}

	return m, nil
}
