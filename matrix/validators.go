// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size/scalar checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → SameSize).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSize ensures n is a legal matrix size (n >= 1).
// Complexity: O(1).
func ValidateSize(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidateSize", ErrInvalidSize)
	}

	return nil
}

// ValidateSameSize ensures a and b are non-nil and have equal sizes.
// Complexity: O(1).
func ValidateSameSize(a, b *Square) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateDivisor ensures a scalar divisor is non-zero.
// Complexity: O(1).
func ValidateDivisor(s float64) error {
	if s == 0 {
		return validatorErrorf("ValidateDivisor", ErrDivideByZero)
	}

	return nil
}

// ValidateExponent ensures p >= 0.
// Complexity: O(1).
func ValidateExponent(p int) error {
	if p < 0 {
		return validatorErrorf("ValidateExponent", ErrNegativeExponent)
	}

	return nil
}
