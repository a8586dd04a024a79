// SPDX-License-Identifier: MIT

// Package matrix - comparisons.
//
// Two families live here and must not be confused:
//   - Sum-based relations (Equal, Less, ...): every comparison projects both
//     matrices to ElementSum and compares the scalars. Two matrices with
//     different layouts but equal sums are Equal. LessOrEqual and
//     GreaterOrEqual are the exact negations of Greater and Less.
//   - Element-wise helpers (Identical, AllClose): structural checks, used where a
//     faithful comparison is needed (tests, cross-checks).

package matrix

import "math"

// ElementSum returns the sum of every element of a; 0 for a nil matrix.
// Complexity: O(n²).
func ElementSum(a *Square) float64 {
	if a == nil {
		return ZeroSum
	}
	sum := ZeroSum
	for _, v := range a.data {
		sum += v
	}

	return sum
}

// Sum is the method form of ElementSum.
func (m *Square) Sum() float64 { return ElementSum(m) }

// Trace returns the sum of the diagonal.
// Errors: ErrNilMatrix.
func Trace(a *Square) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < a.n; i++ {
		sum += a.data[i*a.n+i]
	}

	return sum, nil
}

// Equal reports whether a and b have equal element sums.
// Sizes are not compared: a 2×2 and a 3×3 with the same sum are Equal.
func Equal(a, b *Square) bool { return ElementSum(a) == ElementSum(b) }

// NotEqual is !Equal.
func NotEqual(a, b *Square) bool { return !Equal(a, b) }

// Less reports ElementSum(a) < ElementSum(b).
func Less(a, b *Square) bool { return ElementSum(a) < ElementSum(b) }

// Greater reports ElementSum(a) > ElementSum(b).
func Greater(a, b *Square) bool { return ElementSum(a) > ElementSum(b) }

// LessOrEqual is !Greater. With a NaN sum both LessOrEqual and GreaterOrEqual hold.
func LessOrEqual(a, b *Square) bool { return !Greater(a, b) }

// GreaterOrEqual is !Less.
func GreaterOrEqual(a, b *Square) bool { return !Less(a, b) }

// Compare returns -1, 0 or +1 following Less, Equal-or-unordered, Greater.
func Compare(a, b *Square) int {
	switch {
	case Less(a, b):
		return -1
	case Greater(a, b):
		return 1
	default:
		return 0
	}
}

// Identical reports element-wise equality (same size, same values, exact ==).
// Nil matrices are identical only to each other.
func Identical(a, b *Square) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for idx, v := range a.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for equally sized matrices.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - NaN elements never compare close.
//
// Errors:
//   - ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(1).
func AllClose(a, b *Square, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameSize(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff float64
	for idx, av := range a.data {
		bv := b.data[idx]
		if av == bv {
			continue // covers equal infinities
		}
		diff = math.Abs(av - bv)
		if !(diff <= atol+rtol*math.Abs(bv)) {
			return false, nil // early-exit on first violation (NaN included)
		}
	}

	return true, nil
}
