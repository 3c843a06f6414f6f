// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name; kernels add their
//    own operation tag on top via matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Each validator states what it assumes (e.g. ValidateSameShape assumes non-nil).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

const (
	tagValidateNotNil        = "ValidateNotNil"
	tagValidateSquare        = "ValidateSquare"
	tagValidateSameShape     = "ValidateSameShape"
	tagValidateMulCompatible = "ValidateMulCompatible"
	tagValidateVecLen        = "ValidateVecLen"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T scalar.Scalar[T]](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf(tagValidateNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSquare – Ensures m is non-nil and rows == cols.
// A 0×0 matrix is square.
func ValidateSquare[T scalar.Scalar[T]](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(tagValidateSquare, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNotSquare))
	}

	return nil
}

// ValidateSameShape – Ensures a and b are non-nil and share dimensions.
func ValidateSameShape[T scalar.Scalar[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(tagValidateSameShape,
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows for a·b.
func ValidateMulCompatible[T scalar.Scalar[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(tagValidateMulCompatible,
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen – Ensures a vector of length n can multiply m (n == m.Cols).
// Assumes m is non-nil.
func ValidateVecLen[T scalar.Scalar[T]](m *Dense[T], n int) error {
	if m.c != n {
		return validatorErrorf(tagValidateVecLen,
			fmt.Errorf("cols=%d, len=%d: %w", m.c, n, ErrDimensionMismatch))
	}

	return nil
}
