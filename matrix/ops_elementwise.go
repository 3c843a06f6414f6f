// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels.
//
// Purpose:
//   - Add, Sub, Scale, Lerp and AllClose over a flat row-major buffer.
//   - Single pass over data; no temporaries beyond the result.
//
// Policy:
//   - Shapes are validated through validators.go before any work.
//   - Inputs are never mutated; a fresh *Dense is returned.

package matrix

import (
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// ewZip applies f element-wise over two same-shaped matrices.
func ewZip[T scalar.Scalar[T]](a, b *Dense[T], tag string, f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := newDenseZeroOK[T](a.r, a.c)
	for idx := range out.data {
		out.data[idx] = f(a.data[idx], b.data[idx])
	}

	return out, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(rc).
func Add[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	return ewZip(a, b, opAdd, func(x, y T) T { return x.Add(y) })
}

// Sub returns a − b. Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(rc).
func Sub[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	return ewZip(a, b, opSub, func(x, y T) T { return x.Sub(y) })
}

// Scale returns alpha·m. Complexity: O(rc).
func Scale[T scalar.Scalar[T]](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := newDenseZeroOK[T](m.r, m.c)
	for idx, v := range m.data {
		out.data[idx] = v.Mul(alpha)
	}

	return out, nil
}

// Lerp returns a + (b − a)·t element-wise; t = 0 yields a, t = 1 yields b.
func Lerp[T scalar.Scalar[T]](a, b *Dense[T], t T) (*Dense[T], error) {
	return ewZip(a, b, opLerp, func(x, y T) T { return x.Add(y.Sub(x).Mul(t)) })
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes,
// measuring |·| with Magnitude(). Returns (true,nil) when every element passes.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
func AllClose[T scalar.Scalar[T]](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range a.data {
		diff := a.data[idx].Sub(b.data[idx]).Magnitude()
		if diff > atol+rtol*b.data[idx].Magnitude() {
			return false, nil
		}
	}

	return true, nil
}
