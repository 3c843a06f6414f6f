// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the reduction kernels.
//   • Keep literals readable: rows are written as plain Go numbers and
//     converted through the scalar package.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// approxTol is the absolute tolerance used when comparing Real results.
const approxTol = 1e-9

// MustReal builds a Real matrix from float rows or fails the test.
func MustReal(tb testing.TB, rows ...[]float64) *matrix.Dense[scalar.Real] {
	tb.Helper()
	m, err := matrix.NewFromRows(scalar.RealRows(rows...))
	require.NoError(tb, err)

	return m
}

// MustRational builds an exact Rational matrix from integer rows or fails the test.
func MustRational(tb testing.TB, rows ...[]int64) *matrix.Dense[scalar.Rational] {
	tb.Helper()
	m, err := matrix.NewFromRows(scalar.RationalRows(rows...))
	require.NoError(tb, err)

	return m
}

// MustRationalFrac builds a Rational matrix from "num/den" literals.
func MustRationalFrac(tb testing.TB, rows ...[]string) *matrix.Dense[scalar.Rational] {
	tb.Helper()
	out := make([][]scalar.Rational, len(rows))
	for i, row := range rows {
		out[i] = make([]scalar.Rational, len(row))
		for j, lit := range row {
			r, ok := scalar.ParseRational(lit)
			require.Truef(tb, ok, "bad rational literal %q", lit)
			out[i][j] = r
		}
	}
	m, err := matrix.NewFromRows(out)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T scalar.Scalar[T]](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireClose asserts identical shapes and |got-want| ≤ approxTol element-wise.
func RequireClose(tb testing.TB, want [][]float64, got *matrix.Dense[scalar.Real]) {
	tb.Helper()
	ok, err := matrix.AllClose(got, MustReal(tb, want...), 0, approxTol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want %v\ngot\n%s", want, got)
}

// RequireEqualMatrix asserts exact scalar equality with a readable diff.
func RequireEqualMatrix[T scalar.Scalar[T]](tb testing.TB, want, got *matrix.Dense[T]) {
	tb.Helper()
	require.Truef(tb, want.Equal(got), "want\n%sgot\n%s", want, got)
}

// RandomRational fills an n×n Rational matrix with integers in [-span, span].
// Deterministic for a given rng.
func RandomRational(rng *rand.Rand, n int, span int64) [][]int64 {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(2*span+1) - span
		}
	}

	return rows
}

// RandomRealRows fills an r×c grid with uniform values in [-1, 1).
func RandomRealRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return rows
}
