// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"sync"

	"github.com/predrag3141/PSLQ/bignumber"
)

// BigFloatPrecision is the binary precision handed to bignumber.Init the
// first time a BigFloat is created.
const BigFloatPrecision = 512

// bigFloatLog2Tolerance sets BigFloat's default zero tolerance to 2^-100.
const bigFloatLog2Tolerance = -100

var initBigNumber sync.Once

// ensureBigNumber initializes the bignumber package exactly once.
// bignumber keeps its precision in package state; Init only fails on an
// invalid precision, which is a constant here.
func ensureBigNumber() {
	initBigNumber.Do(func() {
		if err := bignumber.Init(BigFloatPrecision); err != nil {
			panic(fmt.Sprintf("scalar: bignumber.Init(%d): %v", BigFloatPrecision, err))
		}
	})
}

// BigFloat is an arbitrary-precision float. The zero value is 0.
// Like Rational, the wrapped number is never mutated after construction.
type BigFloat struct {
	v *bignumber.BigNumber // nil means 0
}

var (
	_ Scalar[BigFloat] = BigFloat{}
	_ Inexact          = BigFloat{}
)

// NewBigFloat returns n as a BigFloat.
func NewBigFloat(n int64) BigFloat {
	ensureBigNumber()
	return BigFloat{v: bignumber.NewFromInt64(n)}
}

// BigFloatRatio returns num/den, or ErrDivisionByZero when den == 0.
func BigFloatRatio(num, den int64) (BigFloat, error) {
	return NewBigFloat(num).Div(NewBigFloat(den))
}

func (x BigFloat) num() *bignumber.BigNumber {
	if x.v == nil {
		ensureBigNumber()
		return bignumber.NewFromInt64(0)
	}

	return x.v
}

// scratch returns a fresh receiver for bignumber's z.Op(x, y) style calls.
func scratch() *bignumber.BigNumber {
	ensureBigNumber()
	return bignumber.NewFromInt64(0)
}

func (BigFloat) Zero() BigFloat { return NewBigFloat(0) }
func (BigFloat) One() BigFloat  { return NewBigFloat(1) }

func (x BigFloat) Add(y BigFloat) BigFloat { return BigFloat{v: scratch().Add(x.num(), y.num())} }
func (x BigFloat) Sub(y BigFloat) BigFloat { return BigFloat{v: scratch().Sub(x.num(), y.num())} }
func (x BigFloat) Mul(y BigFloat) BigFloat { return BigFloat{v: scratch().Mul(x.num(), y.num())} }

// Div returns x/y, or ErrDivisionByZero when y is 0.
func (x BigFloat) Div(y BigFloat) (BigFloat, error) {
	if y.IsZero() {
		return BigFloat{}, ErrDivisionByZero
	}
	q, err := scratch().Quo(x.num(), y.num())
	if err != nil {
		return BigFloat{}, fmt.Errorf("BigFloat.Div: %w", err)
	}

	return BigFloat{v: q}, nil
}

func (x BigFloat) Neg() BigFloat { return BigFloat{v: scratch().Sub(scratch(), x.num())} }
func (x BigFloat) Abs() BigFloat { return BigFloat{v: scratch().Abs(x.num())} }

func (x BigFloat) Equal(y BigFloat) bool { return x.num().Cmp(y.num()) == 0 }
func (x BigFloat) Less(y BigFloat) bool  { return x.num().Cmp(y.num()) < 0 }
func (x BigFloat) IsZero() bool          { return x.v == nil || x.v.IsZero() }

// Magnitude returns |x| rounded to float64.
func (x BigFloat) Magnitude() float64 {
	f, _ := x.num().AsFloat().Float64()
	return math.Abs(f)
}

// Tolerance is 2^-100, far below float64 resolution but well above the
// rounding noise left by BigFloatPrecision bits.
func (BigFloat) Tolerance() float64 { return math.Ldexp(1, bigFloatLog2Tolerance) }

// Float64 returns x rounded to float64.
func (x BigFloat) Float64() float64 {
	f, _ := x.num().AsFloat().Float64()
	return f
}

// String prints 30 significant digits.
func (x BigFloat) String() string { return x.num().AsFloat().Text('g', 30) }
