// SPDX-License-Identifier: MIT
// Package matrix - public API facades and shape utilities.
//
// Purpose:
//   - Provide thin, intention-revealing entry points (NewZeros, NewIdentity, ...).
//   - Block utilities used by the kernels (Augment, SubMatrix).
//   - Short aliases for the reduction engine (REF, RREF).
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

const (
	opAugment      = "Augment"
	opSubMatrix    = "SubMatrix"
	opIdentityLike = "IdentityLike"
	opZerosLike    = "ZerosLike"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized matrix of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n ≤ 0.
//
// AI-Hints: Use as a neutral element for Mul and as the right block of [A | I].
func NewIdentity[T scalar.Scalar[T]](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return identity[T](n), nil
}

// identity builds I_n without validation (n ≥ 0).
func identity[T scalar.Scalar[T]](n int) *Dense[T] {
	I := newDenseZeroOK[T](n, n)
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		I.set(i, i, one)
	}

	return I
}

// ZerosLike returns a zero matrix with the same shape as m (0×0 allowed).
func ZerosLike[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return newDenseZeroOK[T](m.r, m.c), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return identity[T](m.r), nil
}

// Augment returns the horizontal concatenation [a | b].
// Errors: ErrNilMatrix, ErrDimensionMismatch when row counts differ.
// Complexity: O(r·(ca+cb)).
func Augment[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, fmt.Errorf("rows %d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}

	out := newDenseZeroOK[T](a.r, a.c+b.c)
	for i := 0; i < a.r; i++ {
		dst := out.row(i)
		copy(dst[:a.c], a.row(i))
		copy(dst[a.c:], b.row(i))
	}

	return out, nil
}

// SubMatrix copies the block rows [r0, r1) × cols [c0, c1) into a new matrix.
// Errors: ErrNilMatrix, ErrOutOfRange for bounds outside the matrix or reversed.
func SubMatrix[T scalar.Scalar[T]](m *Dense[T], r0, r1, c0, c1 int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if r0 < 0 || r1 > m.r || r0 > r1 || c0 < 0 || c1 > m.c || c0 > c1 {
		return nil, matrixErrorf(opSubMatrix,
			fmt.Errorf("[%d:%d, %d:%d] of %dx%d: %w", r0, r1, c0, c1, m.r, m.c, ErrOutOfRange))
	}

	out := newDenseZeroOK[T](r1-r0, c1-c0)
	for i := r0; i < r1; i++ {
		copy(out.row(i-r0), m.row(i)[c0:c1])
	}

	return out, nil
}

// ---------- Reduction aliases ----------

// REF is an alias for RowEchelon.
func REF[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return RowEchelon(m, opts...)
}

// RREF is an alias for ReducedRowEchelon.
func RREF[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return ReducedRowEchelon(m, opts...)
}

// Product is an alias for Mul: matrix product a × b.
func Product[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E scalar.Scalar[E]](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }
