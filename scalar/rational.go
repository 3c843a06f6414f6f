// SPDX-License-Identifier: MIT

package scalar

import "math/big"

// Rational is an exact fraction. The zero value is 0.
// The wrapped *big.Rat is never mutated after construction, so copies of a
// Rational may share it safely.
type Rational struct {
	v *big.Rat // nil means 0
}

var _ Scalar[Rational] = Rational{}

// NewRational returns num/den in lowest terms. Panics when den == 0, like big.NewRat.
func NewRational(num, den int64) Rational {
	return Rational{v: big.NewRat(num, den)}
}

// RationalFromRat copies r into a Rational. A nil r yields 0.
func RationalFromRat(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}

	return Rational{v: new(big.Rat).Set(r)}
}

// RationalFromFloat returns the exact binary value of f.
// ok is false when f is NaN or ±Inf.
func RationalFromFloat(f float64) (r Rational, ok bool) {
	v := new(big.Rat)
	if v.SetFloat64(f) == nil {
		return Rational{}, false
	}

	return Rational{v: v}, true
}

// ParseRational parses "a/b", an integer or a decimal literal ("1.25", "3e-2").
// ok is false on malformed input or a zero denominator.
func ParseRational(s string) (r Rational, ok bool) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, false
	}

	return Rational{v: v}, true
}

func (x Rational) rat() *big.Rat {
	if x.v == nil {
		return new(big.Rat)
	}

	return x.v
}

func (Rational) Zero() Rational { return Rational{v: new(big.Rat)} }
func (Rational) One() Rational  { return Rational{v: big.NewRat(1, 1)} }

func (x Rational) Add(y Rational) Rational {
	return Rational{v: new(big.Rat).Add(x.rat(), y.rat())}
}

func (x Rational) Sub(y Rational) Rational {
	return Rational{v: new(big.Rat).Sub(x.rat(), y.rat())}
}

func (x Rational) Mul(y Rational) Rational {
	return Rational{v: new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div returns x/y, or ErrDivisionByZero when y is 0.
func (x Rational) Div(y Rational) (Rational, error) {
	if y.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	return Rational{v: new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

func (x Rational) Neg() Rational { return Rational{v: new(big.Rat).Neg(x.rat())} }
func (x Rational) Abs() Rational { return Rational{v: new(big.Rat).Abs(x.rat())} }

func (x Rational) Equal(y Rational) bool { return x.rat().Cmp(y.rat()) == 0 }
func (x Rational) Less(y Rational) bool  { return x.rat().Cmp(y.rat()) < 0 }
func (x Rational) IsZero() bool          { return x.v == nil || x.v.Sign() == 0 }

// Magnitude returns |x| rounded to the nearest float64.
func (x Rational) Magnitude() float64 {
	f, _ := new(big.Rat).Abs(x.rat()).Float64()
	return f
}

// Float64 returns x rounded to the nearest float64.
func (x Rational) Float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

// Rat returns a copy of the underlying fraction.
func (x Rational) Rat() *big.Rat { return new(big.Rat).Set(x.rat()) }

// String formats integers as "n" and fractions as "a/b".
func (x Rational) String() string { return x.rat().RatString() }
