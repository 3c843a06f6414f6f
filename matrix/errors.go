// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No algorithm panics on
// user-triggered error conditions; panics are reserved for programmer errors
// (row index outside [0, rows), nonsensical option values).

package matrix

import (
	"errors"

	"github.com/katalvlaran/linalg/scalar"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels as "<Op>: <sentinel>"
// through matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (ragged/square/dimension) -> arithmetic (division by zero)
// -> structural result (not invertible).

var (
	// ErrRaggedRows is returned by NewFromRows when row lengths differ.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this; row primitives panic instead.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNotInvertible is returned by Inverse when full reduction leaves a zero
	// on the diagonal of the left block (singular matrix).
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrNaNInf indicates a NaN or ±Inf tolerance handed to AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrDivisionByZero is the scalar sentinel re-exported for row primitives
// (DivideRow, ScaleRow). errors.Is matches either name.
var ErrDivisionByZero = scalar.ErrDivisionByZero
