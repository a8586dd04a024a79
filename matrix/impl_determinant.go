// SPDX-License-Identifier: MIT

// Package matrix - determinant (Laplace/cofactor expansion) and LU factorization.
//
// Purpose:
//   - Det: recursive cofactor expansion along the first row, the reference
//     definition of the determinant for this package.
//   - LU / DetLU: Doolittle factorization without pivoting, an O(n³)
//     cross-check for Det on non-singular inputs.
//
// Complexity quicksheet:
//   - Det: O(n!) time, O(n²) scratch total. Intended for small matrices.
//   - LU/DetLU: O(n³) time, O(n²) space.

package matrix

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Det returns the determinant of a by cofactor expansion along row 0.
// MAIN DESCRIPTION:
//   - 1×1: the single element. 2×2: ad − bc.
//   - n > 2: Σ_x (−1)^x · a[0,x] · det(minor(0,x)), where minor(0,x) drops row 0
//     and column x, and the sign uses the column index x in a (not in the minor).
//
// Implementation:
//   - Stage 1: validate a non-nil.
//   - Stage 2: allocate one scratch buffer per minor size (2..n-1) up front.
//   - Stage 3: recurse; a level of size k writes its minors into scratch[k-1]
//     only, so sibling iterations reuse the buffer without clobbering the
//     caller's data.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n!), Space O(n²) (Σ k² for k < n, allocated once).
func Det(a *Square) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := a.n
	scratch := make([][]float64, n)
	for k := 2; k < n; k++ {
		scratch[k] = make([]float64, k*k)
	}

	return cofactorDet(a.data, n, scratch), nil
}

// cofactorDet expands src (n×n, row-major) along its first row.
func cofactorDet(src []float64, n int, scratch [][]float64) float64 {
	switch n {
	case 1:
		return src[0]
	case 2:
		return src[0]*src[3] - src[1]*src[2]
	}

	minor := scratch[n-1]
	det := ZeroSum
	var i, j, x, dst, row int
	var sign float64
	for x = 0; x < n; x++ {
		// Copy rows 1..n-1 without column x.
		dst = 0
		for i = 1; i < n; i++ {
			row = i * n
			for j = 0; j < n; j++ {
				if j == x {
					continue
				}
				minor[dst] = src[row+j]
				dst++
			}
		}
		sign = 1
		if x%2 == 1 {
			sign = -1
		}
		det += sign * src[x] * cofactorDet(minor, n-1, scratch)
	}

	return det
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: validate a; allocate L, U; set diag(L) = 1.
//   - Stage 2: for i = 0..n-1 build row i of U, guard the pivot, then column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrSingular (U[i,i] == 0 during factorization).
//
// Notes:
//   - Without pivoting a zero leading minor yields ErrSingular even for some
//     invertible matrices (e.g. [[0,1],[1,0]]); Det has no such limitation.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(a *Square) (*Square, *Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.n
	L, U := newUnchecked(n), newUnchecked(n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = U.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// DetLU returns det(a) as the product of U's diagonal from LU.
// Errors: ErrNilMatrix, ErrSingular (see LU).
func DetLU(a *Square) (float64, error) {
	_, U, err := LU(a)
	if err != nil {
		return 0, err
	}
	det := 1.0
	for i := 0; i < U.n; i++ {
		det *= U.data[i*U.n+i]
	}

	return det, nil
}
