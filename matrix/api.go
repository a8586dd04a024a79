// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid any logic duplication: each facade delegates to one implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or validation of the underlying kernels.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-filled n×n matrix; alias of New.
func NewZeros(n int) (*Square, error) { return New(n) }

// ZerosLike returns a zero matrix with the same size as m.
// Errors: ErrNilMatrix.
func ZerosLike(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newUnchecked(m.n), nil
}

// IdentityLike returns I with the size of m.
// Errors: ErrNilMatrix.
func IdentityLike(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.n)
}

// ---------- Algebra aliases ----------

// Product is an alias for Mul.
func Product(a, b *Square) (*Square, error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard.
func HadamardProd(a, b *Square) (*Square, error) { return Hadamard(a, b) }

// T is an alias for Transpose.
func T(m *Square) (*Square, error) { return Transpose(m) }

// Power is an alias for Pow.
func Power(m *Square, p int) (*Square, error) { return Pow(m, p) }

// Determinant is an alias for Det (cofactor expansion).
func Determinant(m *Square) (float64, error) { return Det(m) }

// ---------- Convenience compositions ----------

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → DivScalar.
// Complexity: O(n²).
func Symmetrize(m *Square) (*Square, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return DivScalar(sum, 2)
}

// Commutator returns AB − BA.
// Complexity: O(n³).
func Commutator(a, b *Square) (*Square, error) {
	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf("Commutator", err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, matrixErrorf("Commutator", err)
	}

	return Sub(ab, ba)
}
