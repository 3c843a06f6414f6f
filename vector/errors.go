// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates operands of different lengths
	// (or, for LinearCombination, different vector and coefficient counts).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrEmpty indicates that LinearCombination received no vectors.
	ErrEmpty = errors.New("vector: no vectors given")

	// ErrZeroNorm indicates that an angle was requested against a zero vector.
	ErrZeroNorm = errors.New("vector: zero norm")
)
