// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Operation tags for error wrapping.
const (
	opAdd               = "Add"
	opSub               = "Sub"
	opDot               = "Dot"
	opCross             = "Cross"
	opLerp              = "Lerp"
	opLinearCombination = "LinearCombination"
	opAngleCos          = "AngleCos"
)

// crossLen is the only length for which the cross product is defined here.
const crossLen = 3

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vector is an immutable-by-convention sequence of scalars.
// The zero value is the empty vector.
type Vector[T scalar.Scalar[T]] struct {
	data []T
}

// New returns a vector holding a copy of vals.
func New[T scalar.Scalar[T]](vals ...T) Vector[T] {
	data := make([]T, len(vals))
	copy(data, vals)

	return Vector[T]{data: data}
}

// Zeros returns a vector of n additive identities.
func Zeros[T scalar.Scalar[T]](n int) Vector[T] {
	data := make([]T, n)
	zero := scalar.Zero[T]()
	for i := range data {
		data[i] = zero
	}

	return Vector[T]{data: data}
}

// Len returns the number of components.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns component i; it panics when i is out of range, like slice indexing.
func (v Vector[T]) At(i int) T { return v.data[i] }

// Values returns a copy of the components.
func (v Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports equal length and exact component-wise equality.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if !v.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// String formats the vector as "[a, b, c]".
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

func sameLen[T scalar.Scalar[T]](tag string, u, v Vector[T]) error {
	if len(u.data) != len(v.data) {
		return vectorErrorf(tag, fmt.Errorf("len %d vs %d: %w", len(u.data), len(v.data), ErrDimensionMismatch))
	}

	return nil
}

// Add returns u + v.
func Add[T scalar.Scalar[T]](u, v Vector[T]) (Vector[T], error) {
	if err := sameLen(opAdd, u, v); err != nil {
		return Vector[T]{}, err
	}
	out := make([]T, len(u.data))
	for i := range out {
		out[i] = u.data[i].Add(v.data[i])
	}

	return Vector[T]{data: out}, nil
}

// Sub returns u − v.
func Sub[T scalar.Scalar[T]](u, v Vector[T]) (Vector[T], error) {
	if err := sameLen(opSub, u, v); err != nil {
		return Vector[T]{}, err
	}
	out := make([]T, len(u.data))
	for i := range out {
		out[i] = u.data[i].Sub(v.data[i])
	}

	return Vector[T]{data: out}, nil
}

// Scale returns alpha·u.
func Scale[T scalar.Scalar[T]](u Vector[T], alpha T) Vector[T] {
	out := make([]T, len(u.data))
	for i := range out {
		out[i] = u.data[i].Mul(alpha)
	}

	return Vector[T]{data: out}
}

// Dot returns Σ u_i·v_i. The dot product of two empty vectors is zero.
// No conjugation is applied for Complex components.
func Dot[T scalar.Scalar[T]](u, v Vector[T]) (T, error) {
	acc := scalar.Zero[T]()
	if err := sameLen(opDot, u, v); err != nil {
		return acc, err
	}
	for i := range u.data {
		acc = acc.Add(u.data[i].Mul(v.data[i]))
	}

	return acc, nil
}

// Norm1 returns the taxicab norm Σ|u_i|.
func Norm1[T scalar.Scalar[T]](u Vector[T]) float64 {
	var sum float64
	for _, x := range u.data {
		sum += x.Magnitude()
	}

	return sum
}

// Norm2 returns the Euclidean norm sqrt(Σ|u_i|²).
func Norm2[T scalar.Scalar[T]](u Vector[T]) float64 {
	var sum float64
	for _, x := range u.data {
		m := x.Magnitude()
		sum += m * m
	}

	return math.Sqrt(sum)
}

// NormInf returns the supremum norm max|u_i| (0 for the empty vector).
func NormInf[T scalar.Scalar[T]](u Vector[T]) float64 {
	var best float64
	for _, x := range u.data {
		best = math.Max(best, x.Magnitude())
	}

	return best
}

// Cross returns the cross product u × v of two 3-vectors.
func Cross[T scalar.Scalar[T]](u, v Vector[T]) (Vector[T], error) {
	if len(u.data) != crossLen || len(v.data) != crossLen {
		return Vector[T]{}, vectorErrorf(opCross,
			fmt.Errorf("need length %d, got %d and %d: %w", crossLen, len(u.data), len(v.data), ErrDimensionMismatch))
	}
	a, b := u.data, v.data

	return Vector[T]{data: []T{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}}, nil
}

// Lerp returns u + (v − u)·t; t = 0 yields u and t = 1 yields v.
func Lerp[T scalar.Scalar[T]](u, v Vector[T], t T) (Vector[T], error) {
	if err := sameLen(opLerp, u, v); err != nil {
		return Vector[T]{}, err
	}
	out := make([]T, len(u.data))
	for i := range out {
		out[i] = u.data[i].Add(v.data[i].Sub(u.data[i]).Mul(t))
	}

	return Vector[T]{data: out}, nil
}

// LinearCombination returns Σ coefs[k]·vs[k].
// All vectors must share one length and len(vs) must equal len(coefs).
func LinearCombination[T scalar.Scalar[T]](vs []Vector[T], coefs []T) (Vector[T], error) {
	if len(vs) == 0 {
		return Vector[T]{}, vectorErrorf(opLinearCombination, ErrEmpty)
	}
	if len(vs) != len(coefs) {
		return Vector[T]{}, vectorErrorf(opLinearCombination,
			fmt.Errorf("%d vectors, %d coefficients: %w", len(vs), len(coefs), ErrDimensionMismatch))
	}

	acc := Zeros[T](vs[0].Len())
	for k, v := range vs {
		if err := sameLen(opLinearCombination, acc, v); err != nil {
			return Vector[T]{}, err
		}
		for i := range acc.data {
			acc.data[i] = acc.data[i].Add(v.data[i].Mul(coefs[k]))
		}
	}

	return acc, nil
}

// AngleCos returns cos θ = (u·v) / (‖u‖₂·‖v‖₂) for real vectors.
func AngleCos(u, v Vector[scalar.Real]) (float64, error) {
	dot, err := Dot(u, v)
	if err != nil {
		return 0, vectorErrorf(opAngleCos, err)
	}
	nu, nv := Norm2(u), Norm2(v)
	if nu == 0 || nv == 0 {
		return 0, vectorErrorf(opAngleCos, ErrZeroNorm)
	}

	return dot.Float64() / (nu * nv), nil
}
