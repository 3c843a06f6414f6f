// SPDX-License-Identifier: MIT

// Package scalar defines the arithmetic contract every matrix element must
// satisfy, together with the concrete element types shipped with linalg.
//
// What & Why:
//
//	The reduction engine in package matrix never touches a concrete number
//	type. It is generic over Scalar[T], a small field-like capability set:
//	identities, the four operations, negation, ordering and an exact zero test.
//	Division by zero is a reported failure (ErrDivisionByZero), never NaN.
//
// Shipped scalars:
//
//	Real     — float64; inexact, advertises FloatTolerance for pivot detection.
//	Rational — exact fractions backed by math/big.Rat.
//	Complex  — a toy complex number (re, im float64) with lexicographic order.
//	BigFloat — arbitrary precision floats backed by PSLQ's bignumber package.
//
// Zero policy:
//
//	IsZero is always exact. Algorithms that need an "is effectively zero"
//	predicate build one with ZeroTest(eps); DefaultTolerance reports the
//	tolerance a type advertises through the Inexact interface (0 for exact types).
//
// Complexity:
//
//	Real and Complex operations are O(1). Rational and BigFloat operations
//	allocate and cost O(size of the operands).
package scalar
