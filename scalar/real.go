// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Real is a float64 scalar.
type Real float64

var (
	_ Scalar[Real] = Real(0)
	_ Inexact      = Real(0)
)

func (Real) Zero() Real { return 0 }
func (Real) One() Real  { return 1 }

func (x Real) Add(y Real) Real { return x + y }
func (x Real) Sub(y Real) Real { return x - y }
func (x Real) Mul(y Real) Real { return x * y }

// Div returns x/y, or ErrDivisionByZero when y == 0.
func (x Real) Div(y Real) (Real, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}

	return x / y, nil
}

func (x Real) Neg() Real          { return -x }
func (x Real) Abs() Real          { return Real(math.Abs(float64(x))) }
func (x Real) Equal(y Real) bool  { return x == y }
func (x Real) Less(y Real) bool   { return x < y }
func (x Real) IsZero() bool       { return x == 0 }
func (x Real) Magnitude() float64 { return math.Abs(float64(x)) }
func (Real) Tolerance() float64   { return FloatTolerance }
func (x Real) Float64() float64   { return float64(x) }
func (x Real) String() string     { return strconv.FormatFloat(float64(x), 'g', -1, 64) }
