// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

func TestDivideRow(t *testing.T) {
	t.Parallel()

	m := MustRational(t, []int64{2, 4, 6}, []int64{1, 1, 1})
	require.NoError(t, m.DivideRow(0, scalar.NewRational(4, 1)))
	RequireEqualMatrix(t, MustRationalFrac(t, []string{"1/2", "1", "3/2"}, []string{"1", "1", "1"}), m)

	err := m.DivideRow(1, scalar.Rational{})
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
	// failed division leaves the row untouched
	RequireEqualMatrix(t, MustRationalFrac(t, []string{"1/2", "1", "3/2"}, []string{"1", "1", "1"}), m)
}

func TestScaleRow(t *testing.T) {
	t.Parallel()

	m := MustReal(t, []float64{1, -2}, []float64{3, 4})
	require.NoError(t, m.ScaleRow(1, -0.5))
	RequireEqualMatrix(t, MustReal(t, []float64{1, -2}, []float64{-1.5, -2}), m)
}

func TestScaleRow_ZeroFactor(t *testing.T) {
	t.Parallel()

	m := MustReal(t, []float64{1, 2}, []float64{3, 4})
	err := m.ScaleRow(0, 0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	RequireEqualMatrix(t, MustReal(t, []float64{1, 2}, []float64{3, 4}), m)
}

func TestSubtractMultipleOfRow(t *testing.T) {
	t.Parallel()

	m := MustRational(t, []int64{1, 2, 3}, []int64{4, 5, 6})
	m.SubtractMultipleOfRow(0, 1, scalar.NewRational(4, 1))
	RequireEqualMatrix(t, MustRational(t, []int64{1, 2, 3}, []int64{0, -3, -6}), m)

	// source == target: row becomes (1 - f)·row
	m.SubtractMultipleOfRow(0, 0, scalar.NewRational(3, 1))
	RequireEqualMatrix(t, MustRational(t, []int64{-2, -4, -6}, []int64{0, -3, -6}), m)
}

func TestSwapRows(t *testing.T) {
	t.Parallel()

	m := MustReal(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	m.SwapRows(0, 2)
	RequireEqualMatrix(t, MustReal(t, []float64{5, 6}, []float64{3, 4}, []float64{1, 2}), m)

	m.SwapRows(1, 1)
	RequireEqualMatrix(t, MustReal(t, []float64{5, 6}, []float64{3, 4}, []float64{1, 2}), m)
}

func TestRowPrimitives_PanicOnBadIndex(t *testing.T) {
	t.Parallel()

	m := MustReal(t, []float64{1, 2}, []float64{3, 4})
	one := scalar.Real(1)

	require.PanicsWithValue(t, matrix.PanicRowOutOfRange, func() { _ = m.DivideRow(2, one) })
	require.PanicsWithValue(t, matrix.PanicRowOutOfRange, func() { _ = m.ScaleRow(-1, one) })
	require.PanicsWithValue(t, matrix.PanicRowOutOfRange, func() { m.SubtractMultipleOfRow(0, 5, one) })
	require.PanicsWithValue(t, matrix.PanicRowOutOfRange, func() { m.SubtractMultipleOfRow(5, 0, one) })
	require.PanicsWithValue(t, matrix.PanicRowOutOfRange, func() { m.SwapRows(0, 2) })
}
