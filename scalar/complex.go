// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Complex is a minimal complex number over float64 components.
// Ordering is lexicographic (real part first, then imaginary part); it only
// exists to satisfy the capability set and carries no algebraic meaning.
type Complex struct {
	Re, Im float64
}

var (
	_ Scalar[Complex] = Complex{}
	_ Inexact         = Complex{}
)

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex { return Complex{Re: re, Im: im} }

func (Complex) Zero() Complex { return Complex{} }
func (Complex) One() Complex  { return Complex{Re: 1} }

func (x Complex) Add(y Complex) Complex { return Complex{Re: x.Re + y.Re, Im: x.Im + y.Im} }
func (x Complex) Sub(y Complex) Complex { return Complex{Re: x.Re - y.Re, Im: x.Im - y.Im} }

func (x Complex) Mul(y Complex) Complex {
	return Complex{
		Re: x.Re*y.Re - x.Im*y.Im,
		Im: x.Re*y.Im + x.Im*y.Re,
	}
}

// Div returns x/y, or ErrDivisionByZero when both components of y are zero.
func (x Complex) Div(y Complex) (Complex, error) {
	den := y.Re*y.Re + y.Im*y.Im
	if den == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{
		Re: (x.Re*y.Re + x.Im*y.Im) / den,
		Im: (x.Im*y.Re - x.Re*y.Im) / den,
	}, nil
}

func (x Complex) Neg() Complex { return Complex{Re: -x.Re, Im: -x.Im} }

// Abs returns |x| as a real-valued Complex.
func (x Complex) Abs() Complex { return Complex{Re: x.Magnitude()} }

// Conj returns the complex conjugate.
func (x Complex) Conj() Complex { return Complex{Re: x.Re, Im: -x.Im} }

func (x Complex) Equal(y Complex) bool { return x.Re == y.Re && x.Im == y.Im }

func (x Complex) Less(y Complex) bool {
	if x.Re != y.Re {
		return x.Re < y.Re
	}

	return x.Im < y.Im
}

func (x Complex) IsZero() bool       { return x.Re == 0 && x.Im == 0 }
func (x Complex) Magnitude() float64 { return math.Hypot(x.Re, x.Im) }
func (Complex) Tolerance() float64   { return FloatTolerance }

// String formats x as "(re+imi)".
func (x Complex) String() string {
	im := strconv.FormatFloat(x.Im, 'g', -1, 64)
	if x.Im >= 0 || math.IsNaN(x.Im) {
		im = "+" + im
	}

	return "(" + strconv.FormatFloat(x.Re, 'g', -1, 64) + im + "i)"
}
