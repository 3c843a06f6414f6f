// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or float type accepted by the literal converters.
type Number interface {
	constraints.Integer | constraints.Float
}

// Reals converts Go numbers into Real scalars.
func Reals[N Number](xs ...N) []Real {
	out := make([]Real, len(xs))
	for i, x := range xs {
		out[i] = Real(x)
	}

	return out
}

// RealRows converts a literal grid into rows of Real, ready for matrix.NewFromRows.
func RealRows[N Number](rows ...[]N) [][]Real {
	out := make([][]Real, len(rows))
	for i, row := range rows {
		out[i] = Reals(row...)
	}

	return out
}

// Rationals converts Go integers into exact Rational scalars.
// The full range of every integer type is preserved, uint64 included.
func Rationals[N constraints.Integer](xs ...N) []Rational {
	out := make([]Rational, len(xs))
	for i, x := range xs {
		out[i] = rationalOf(x)
	}

	return out
}

// rationalOf converts x without passing non-negative values through int64.
func rationalOf[N constraints.Integer](x N) Rational {
	if x < 0 {
		return NewRational(int64(x), 1)
	}

	return Rational{v: new(big.Rat).SetUint64(uint64(x))}
}

// RationalRows converts an integer grid into rows of Rational.
func RationalRows[N constraints.Integer](rows ...[]N) [][]Rational {
	out := make([][]Rational, len(rows))
	for i, row := range rows {
		out[i] = Rationals(row...)
	}

	return out
}

// Complexes lifts real numbers into Complex scalars with zero imaginary part.
func Complexes[N Number](xs ...N) []Complex {
	out := make([]Complex, len(xs))
	for i, x := range xs {
		out[i] = Complex{Re: float64(x)}
	}

	return out
}

// BigFloats converts Go integers into BigFloat scalars.
// Like Rationals, uint64 values above math.MaxInt64 keep their sign and value.
func BigFloats[N constraints.Integer](xs ...N) []BigFloat {
	out := make([]BigFloat, len(xs))
	for i, x := range xs {
		out[i] = bigFloatOf(x)
	}

	return out
}

// bigFloatOf splits values beyond int64 into 2·(x>>1) + (x&1), all exact.
func bigFloatOf[N constraints.Integer](x N) BigFloat {
	if x < 0 || uint64(x) <= math.MaxInt64 {
		return NewBigFloat(int64(x))
	}
	u := uint64(x)
	half := NewBigFloat(int64(u >> 1))

	return half.Add(half).Add(NewBigFloat(int64(u & 1)))
}
