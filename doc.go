// Package linalg is a small, generic linear-algebra kernel built around
// elementary row operations.
//
// 🚀 What is linalg?
//
//	A pure-Go library that brings together:
//		• Scalars: float64 (Real), exact fractions (Rational), complex numbers
//		  (Complex) and arbitrary-precision floats (BigFloat) behind one
//		  capability interface
//		• Dense matrices over any of them, with bounds-checked access
//		• Row reduction: row echelon and reduced row echelon forms
//		• Determinant, Rank, Inverse
//		• Products, transpose, trace, lerp and vector-space operations
//		• A gonum bridge for float64 matrices
//
// ✨ Why choose linalg?
//
//   - Exact when you need it – reduce over Rational and get exact fractions
//   - Explicit zero policy – choose exact comparison or a tolerance per call
//   - Value semantics – algorithms never mutate their inputs
//   - Observable – pivot decisions are traced through log/slog at debug level
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/ — the Scalar[T] capability set and the concrete scalar types
//	matrix/ — Dense[T], row primitives, reductions, det/rank/inverse, gonum bridge
//	vector/ — Vector[T], norms, dot & cross products, linear combinations
//
// Quick example:
//
//	m, _ := matrix.NewFromRows(scalar.RationalRows([]int{2, 1}, []int{7, 4}))
//	inv, _ := matrix.Inverse(m) // [[4, -1], [-7, 2]], exactly
//
// See examples/ for runnable walkthroughs.
package linalg
