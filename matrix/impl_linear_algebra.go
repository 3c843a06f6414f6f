// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels built on the reduction engine and
// on plain row-major loops.
//
// Purpose:
//   - Determinant, Rank and Inverse on top of forwardEliminate / gaussJordan.
//   - Mul, MatVec, Transpose and Trace as direct O(n³)/O(n²) kernels.
//   - Define operation tags and the shared matrixErrorf wrapper.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures via matrixErrorf,
//     so callers match sentinels with errors.Is.
//   - Inputs are never mutated.

package matrix

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opLerp        = "Lerp"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opRank        = "Rank"
	opTrace       = "Trace"
	opMatVec      = "MatVec"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; callers
//     gate with `if err != nil`.
//
// AI-Hints:
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant returns det(m).
// MAIN DESCRIPTION:
//   - Forward elimination without normalization; det is the product of the
//     resulting diagonal, negated once per row swap.
//
// Behavior highlights:
//   - [[0,1],[1,0]] → −1 (one swap).
//   - A singular matrix yields exactly zero: some diagonal entry of its echelon
//     form is zero under the zero policy.
//   - The 0×0 matrix has determinant one (empty product).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return scalar.Zero[T](), matrixErrorf(opDeterminant, err)
	}

	pol := newPolicy(m, opts...)
	work := m.Clone()
	swaps, err := forwardEliminate(work, pol)
	if err != nil {
		return scalar.Zero[T](), matrixErrorf(opDeterminant, err)
	}

	det := scalar.One[T]()
	for i := 0; i < work.r; i++ {
		d := work.at(i, i)
		if pol.isZero(d) {
			// A pivot-less column leaves residue on the diagonal; report exact zero.
			return scalar.Zero[T](), nil
		}
		det = det.Mul(d)
	}
	if swaps%2 == 1 {
		det = det.Neg()
	}

	return det, nil
}

// Rank returns the number of non-zero rows of the reduced row echelon form of m.
// A row counts as non-zero when at least one entry is non-zero under the zero policy.
// Complexity: O(r·c·min(r,c)).
func Rank[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	pol := newPolicy(m, opts...)
	work := m.Clone()
	if err := gaussJordan(work, pol); err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rank := 0
	for i := 0; i < work.r; i++ {
		for _, v := range work.row(i) {
			if !pol.isZero(v) {
				rank++
				break
			}
		}
	}

	return rank, nil
}

// Inverse returns m⁻¹ via Gauss–Jordan on the augmented matrix [m | I].
// MAIN DESCRIPTION:
//   - The left block of the reduced [m | I] is I exactly when m is invertible;
//     the right block is then m⁻¹.
//
// Implementation:
//   - Stage 1: validate square; build [m | I] with Augment.
//   - Stage 2: gaussJordan on the n×2n working matrix.
//   - Stage 3: any left-block diagonal entry that is zero under the zero policy
//     means m is singular → ErrNotInvertible.
//   - Stage 4: extract columns [n, 2n).
//
// Behavior highlights:
//   - Over scalar.Rational the result is exact: m·Inverse(m) equals I.
//   - The 0×0 matrix is its own inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrNotInvertible.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented copy.
func Inverse[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	if n == 0 {
		return newDenseZeroOK[T](0, 0), nil
	}

	pol := newPolicy(m, opts...)
	aug, err := Augment(m, identity[T](n))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = gaussJordan(aug, pol); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	for i := 0; i < n; i++ {
		if pol.isZero(aug.at(i, i)) {
			pol.trace("inverse: singular", slog.Int("row", i))
			return nil, matrixErrorf(opInverse, ErrNotInvertible)
		}
	}

	return SubMatrix(aug, 0, n, n, 2*n)
}

// Mul returns the matrix product a·b.
// Loop order i-k-j keeps the inner loop on contiguous rows of b and out.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(a.r·a.c·b.c).
func Mul[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := newDenseZeroOK[T](a.r, b.c)
	var i, k, j int
	for i = 0; i < a.r; i++ {
		dst := out.row(i)
		for k = 0; k < a.c; k++ {
			aik := a.at(i, k)
			if aik.IsZero() {
				continue
			}
			src := b.row(k)
			for j = 0; j < b.c; j++ {
				dst[j] = dst[j].Add(aik.Mul(src[j]))
			}
		}
	}

	return out, nil
}

// MatVec returns m·v.
// Errors: ErrNilMatrix, ErrDimensionMismatch (v.Len() != m.Cols).
func MatVec[T scalar.Scalar[T]](m *Dense[T], v vector.Vector[T]) (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return vector.Vector[T]{}, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(m, v.Len()); err != nil {
		return vector.Vector[T]{}, matrixErrorf(opMatVec, err)
	}

	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		acc := scalar.Zero[T]()
		for j, x := range m.row(i) {
			acc = acc.Add(x.Mul(v.At(j)))
		}
		out[i] = acc
	}

	return vector.New(out...), nil
}

// Transpose returns mᵀ. Complexity: O(r·c).
func Transpose[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := newDenseZeroOK[T](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.set(j, i, m.at(i, j))
		}
	}

	return out, nil
}

// Trace returns the sum of the main diagonal. Errors: ErrNilMatrix, ErrNotSquare.
func Trace[T scalar.Scalar[T]](m *Dense[T]) (T, error) {
	sum := scalar.Zero[T]()
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	for i := 0; i < m.r; i++ {
		sum = sum.Add(m.at(i, i))
	}

	return sum, nil
}
