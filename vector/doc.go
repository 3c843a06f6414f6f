// SPDX-License-Identifier: MIT

// Package vector provides a small, generic column-vector value type over any
// scalar.Scalar[T] and the classical vector-space operations on it.
//
// What & Why:
//   - Vector[T] is the companion of matrix.Dense[T]: MatVec produces one and the
//     reduction engine's exact scalars (scalar.Rational) work here unchanged.
//   - Every operation returns a fresh value; inputs are never mutated.
//
// Operations:
//   - Add, Sub, Scale, Lerp, LinearCombination (length-checked).
//   - Dot, Cross (length 3 only).
//   - Norm1 (taxicab), Norm2 (Euclidean), NormInf (supremum) via Magnitude().
//   - AngleCos for Real vectors.
//
// Errors:
//   - ErrDimensionMismatch when lengths (or vector/coefficient counts) differ.
//   - ErrEmpty when LinearCombination receives no vectors.
//   - ErrZeroNorm when AngleCos meets a zero-length vector.
package vector
