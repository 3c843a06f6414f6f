// SPDX-License-Identifier: MIT

package scalar

import "fmt"

// FloatTolerance is the tolerance advertised by float64-backed scalars (Real, Complex).
const FloatTolerance = 1e-10

// Scalar is the capability set required from a matrix element type T.
// T is expected to be a value type: every operation returns a fresh value and
// never mutates its receiver or argument.
//
// Contract:
//   - Zero and One return the additive and multiplicative identities; they must
//     work on the zero value of T (e.g. `var z T; z.One()`).
//   - Div returns ErrDivisionByZero when the divisor IsZero.
//   - IsZero is an exact test; tolerance lives in ZeroTest.
//   - Less is a (possibly partial) order; Magnitude is |x| as float64.
type Scalar[T any] interface {
	Zero() T
	One() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) (T, error)
	Neg() T
	Abs() T
	Equal(T) bool
	Less(T) bool
	IsZero() bool
	Magnitude() float64
	fmt.Stringer
}

// Inexact is implemented by scalars whose arithmetic rounds. Tolerance is the
// magnitude below which a value should be treated as zero by default.
type Inexact interface {
	Tolerance() float64
}

// Zero returns the additive identity of T.
func Zero[T Scalar[T]]() T {
	var z T
	return z.Zero()
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	var z T
	return z.One()
}

// DefaultTolerance returns the tolerance T advertises through Inexact, or 0
// for exact types.
func DefaultTolerance[T Scalar[T]]() float64 {
	var z T
	if in, ok := any(z).(Inexact); ok {
		return in.Tolerance()
	}

	return 0
}

// ZeroTest builds the "is effectively zero" predicate used for pivot detection.
// eps == 0 selects the exact IsZero test; eps > 0 compares Magnitude() <= eps.
// Panics on negative eps (programmer error).
func ZeroTest[T Scalar[T]](eps float64) func(T) bool {
	if eps < 0 {
		panic("scalar: ZeroTest: eps must be non-negative")
	}
	if eps == 0 {
		return func(x T) bool { return x.IsZero() }
	}

	return func(x T) bool { return x.IsZero() || x.Magnitude() <= eps }
}
