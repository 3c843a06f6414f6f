// SPDX-License-Identifier: MIT

// Package matrix is a generic row-reduction kernel: a dense row-major matrix
// over any scalar.Scalar[T] plus the classical algorithms built on elementary
// row operations.
//
// The matrix package provides:
//
//   - Dense[T]: rectangular, row-major, bounds-checked storage with four row
//     primitives (DivideRow, ScaleRow, SubtractMultipleOfRow, SwapRows).
//   - RowEchelon and ReducedRowEchelon (Gaussian and Gauss–Jordan elimination).
//   - Determinant (with row-swap sign bookkeeping), Rank and Inverse.
//   - Add, Sub, Scale, Lerp, Mul, MatVec, Transpose, Trace and AllClose.
//   - ToGonum / FromGonum for Real matrices.
//
// Every algorithm works on a private copy and returns a new matrix; inputs are
// never mutated. Whether an entry counts as zero is decided per call by the
// zero policy (WithEpsilon, WithExactZero); by default the scalar type decides,
// so scalar.Rational is reduced exactly and scalar.Real with a small tolerance.
//
// Pivot decisions are traced at slog debug level (WithLogger).
//
// See the examples in this package for usage patterns.
package matrix
