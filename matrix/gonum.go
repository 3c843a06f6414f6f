// SPDX-License-Identifier: MIT
// Package matrix - bridge to gonum.org/v1/gonum/mat for Real matrices.
//
// Purpose:
//   - Hand Real matrices to gonum (factorizations, BLAS-backed products) and back.
//   - Cross-check the reduction engine against an independent LU implementation.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/scalar"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix; ErrInvalidDimensions for empty shapes (gonum rejects them).
func ToGonum(m *Dense[scalar.Real]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}

	return mat.NewDense(m.r, m.c, Float64Data(m)), nil
}

// FromGonum copies any gonum matrix into a new Real matrix.
func FromGonum(g mat.Matrix) (*Dense[scalar.Real], error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}

	r, c := g.Dims()
	out := newDenseZeroOK[scalar.Real](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.set(i, j, scalar.Real(g.At(i, j)))
		}
	}

	return out, nil
}

// Float64Data returns the row-major entries of m as plain float64s.
func Float64Data(m *Dense[scalar.Real]) []float64 {
	out := make([]float64, len(m.data))
	for idx, v := range m.data {
		out[idx] = float64(v)
	}

	return out
}

// Float64Rows returns the entries of m as a [][]float64 grid.
func Float64Rows(m *Dense[scalar.Real]) [][]float64 {
	flat := Float64Data(m)
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = flat[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return out
}
