// SPDX-License-Identifier: MIT

// Package matrix - structural operations: transpose, power, increment/decrement.
//
// Determinism:
//   - Fixed loop orders; Pow performs exactly the multiplications dictated by
//     the bits of p, least significant first.

package matrix

// Transpose returns a new matrix with C[i,j] = A[j,i].
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func Transpose(a *Square) (*Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	n := a.n
	res := newUnchecked(n)
	var i, j, baseSrc int
	for i = 0; i < n; i++ {
		baseSrc = i * n
		for j = 0; j < n; j++ {
			res.data[j*n+i] = a.data[baseSrc+j]
		}
	}

	return res, nil
}

// Pow returns A^p computed by binary exponentiation.
// MAIN DESCRIPTION:
//   - p == 0 yields the identity of the same size (also for the zero matrix).
//   - Otherwise: acc = I, base = A; while p != 0 { if p&1 { acc = acc×base };
//     base = base×base; p >>= 1 }. The base is squared on every step, the
//     last one included.
//
// Behavior highlights:
//   - O(log p) products instead of O(p); each product goes through Mul, so the
//     result matches naive repeated multiplication for integer-valued inputs
//     exactly, and within rounding for general floats.
//   - The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeExponent (p < 0).
//
// Complexity:
//   - Time O(n³ log p), Space O(n²).
func Pow(a *Square, p int) (*Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if err := ValidateExponent(p); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	acc, err := NewIdentity(a.n)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := a.Clone()
	for p > 0 {
		if p&1 == 1 {
			if acc, err = Mul(acc, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		if base, err = Mul(base, base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		p >>= 1
	}

	return acc, nil
}

// shift adds delta to every element in place.
func (m *Square) shift(delta float64) {
	for idx := range m.data {
		m.data[idx] += delta
	}
}

// Inc adds 1 to every element (pre-increment) and returns the receiver.
func (m *Square) Inc() *Square {
	m.shift(1)

	return m
}

// Dec subtracts 1 from every element (pre-decrement) and returns the receiver.
func (m *Square) Dec() *Square {
	m.shift(-1)

	return m
}

// PostInc snapshots the receiver, adds 1 to every element, and returns the
// snapshot: the result holds the values before the increment.
func (m *Square) PostInc() *Square {
	snap := m.Clone()
	m.shift(1)

	return snap
}

// PostDec snapshots the receiver, subtracts 1 from every element, and returns
// the snapshot.
func (m *Square) PostDec() *Square {
	snap := m.Clone()
	m.shift(-1)

	return snap
}
