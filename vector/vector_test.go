// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reals(xs ...float64) vector.Vector[scalar.Real] {
	return vector.New(scalar.Reals(xs...)...)
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	src := scalar.Reals(1, 2, 3)
	v := vector.New(src...)
	src[0] = 99
	require.Equal(t, scalar.Real(1), v.At(0))

	vals := v.Values()
	vals[1] = 42
	require.Equal(t, scalar.Real(2), v.At(1))
	require.Equal(t, 3, v.Len())
	require.Equal(t, "[1, 2, 3]", v.String())
}

func TestAddSubScale(t *testing.T) {
	t.Parallel()

	u, v := reals(2, 3), reals(5, 7)

	sum, err := vector.Add(u, v)
	require.NoError(t, err)
	require.True(t, sum.Equal(reals(7, 10)))

	diff, err := vector.Sub(u, v)
	require.NoError(t, err)
	require.True(t, diff.Equal(reals(-3, -4)))

	require.True(t, vector.Scale(u, 2).Equal(reals(4, 6)))

	_, err = vector.Add(u, reals(1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Sub(u, reals(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestDot(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		u, v vector.Vector[scalar.Real]
		want scalar.Real
	}{
		{"orthogonal", reals(0, 0), reals(1, 1), 0},
		{"ones", reals(1, 1), reals(1, 1), 2},
		{"mixed", reals(-1, 6), reals(3, 2), 9},
		{"empty", reals(), reals(), 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := vector.Dot(tc.u, tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := vector.Dot(reals(1), reals(1, 2))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestNorms(t *testing.T) {
	t.Parallel()

	v := reals(1, 2, 3)
	assert.Equal(t, 6.0, vector.Norm1(v))
	assert.InDelta(t, 3.7416573867739413, vector.Norm2(v), 1e-15)
	assert.Equal(t, 3.0, vector.NormInf(v))

	w := reals(-1, -2)
	assert.Equal(t, 3.0, vector.Norm1(w))
	assert.InDelta(t, 2.23606797749979, vector.Norm2(w), 1e-15)
	assert.Equal(t, 2.0, vector.NormInf(w))

	assert.Zero(t, vector.NormInf(reals()))
	assert.Zero(t, vector.Norm2(reals(0, 0, 0)))
}

func TestNorms_Complex(t *testing.T) {
	t.Parallel()

	v := vector.New(scalar.NewComplex(3, 4), scalar.NewComplex(0, -1))
	assert.InDelta(t, 6.0, vector.Norm1(v), 1e-15)
	assert.InDelta(t, 5.0990195135927845, vector.Norm2(v), 1e-15)
	assert.InDelta(t, 5.0, vector.NormInf(v), 1e-15)
}

func TestCross(t *testing.T) {
	t.Parallel()

	got, err := vector.Cross(reals(0, 0, 1), reals(1, 0, 0))
	require.NoError(t, err)
	require.True(t, got.Equal(reals(0, 1, 0)), got.String())

	got, err = vector.Cross(reals(1, 2, 3), reals(4, 5, 6))
	require.NoError(t, err)
	require.True(t, got.Equal(reals(-3, 6, -3)), got.String())

	got, err = vector.Cross(reals(4, 2, -3), reals(-2, -5, 16))
	require.NoError(t, err)
	require.True(t, got.Equal(reals(17, -58, -16)), got.String())

	_, err = vector.Cross(reals(1, 2), reals(3, 4))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestLerp(t *testing.T) {
	t.Parallel()

	u, v := reals(2, 1), reals(4, 2)

	got, err := vector.Lerp(u, v, 0.3)
	require.NoError(t, err)
	vals := got.Values()
	assert.InDelta(t, 2.6, vals[0].Float64(), 1e-12)
	assert.InDelta(t, 1.3, vals[1].Float64(), 1e-12)

	got, err = vector.Lerp(u, v, 0)
	require.NoError(t, err)
	require.True(t, got.Equal(u))

	got, err = vector.Lerp(u, v, 1)
	require.NoError(t, err)
	require.True(t, got.Equal(v))

	_, err = vector.Lerp(u, reals(1), 0.5)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestLinearCombination(t *testing.T) {
	t.Parallel()

	vs := []vector.Vector[scalar.Real]{reals(1, 2, 3), reals(4, 5, 6), reals(7, 8, 9)}
	got, err := vector.LinearCombination(vs, scalar.Reals(1, 2, 3))
	require.NoError(t, err)
	require.True(t, got.Equal(reals(30, 36, 42)), got.String())

	basis := []vector.Vector[scalar.Real]{reals(1, 0, 0), reals(0, 1, 0), reals(0, 0, 1)}
	got, err = vector.LinearCombination(basis, scalar.Reals(10, -2, 0.5))
	require.NoError(t, err)
	require.True(t, got.Equal(reals(10, -2, 0.5)), got.String())

	_, err = vector.LinearCombination[scalar.Real](nil, nil)
	require.ErrorIs(t, err, vector.ErrEmpty)

	_, err = vector.LinearCombination(vs, scalar.Reals(1, 2))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	ragged := []vector.Vector[scalar.Real]{reals(1, 2), reals(1, 2, 3)}
	_, err = vector.LinearCombination(ragged, scalar.Reals(1, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestLinearCombination_Rational(t *testing.T) {
	t.Parallel()

	vs := []vector.Vector[scalar.Rational]{
		vector.New(scalar.Rationals(1, 3)...),
		vector.New(scalar.Rationals(2, 0)...),
	}
	coefs := []scalar.Rational{scalar.NewRational(1, 3), scalar.NewRational(-1, 6)}
	got, err := vector.LinearCombination(vs, coefs)
	require.NoError(t, err)
	require.Equal(t, "[0, 1]", got.String())
}

func TestAngleCos(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		u, v vector.Vector[scalar.Real]
		want float64
	}{
		{"same", reals(1, 0), reals(1, 0), 1},
		{"orthogonal", reals(1, 0), reals(0, 1), 0},
		{"opposite", reals(-1, 1), reals(1, -1), -1},
		{"collinear", reals(2, 1), reals(4, 2), 1},
		{"general", reals(1, 2, 3), reals(4, 5, 6), 0.9746318461970762},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := vector.AngleCos(tc.u, tc.v)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}

	_, err := vector.AngleCos(reals(0, 0), reals(1, 1))
	require.ErrorIs(t, err, vector.ErrZeroNorm)
	_, err = vector.AngleCos(reals(1), reals(1, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}
