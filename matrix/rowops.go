// SPDX-License-Identifier: MIT

// Package matrix - row primitives.
//
// These four mutators are the only operations the reduction engine needs:
// divide a row, scale a row, subtract a multiple of one row from another, and
// swap two rows. Each is O(cols) and works directly on the row-major buffer.
//
// Index policy: a row index outside [0, rows) is a programmer error and panics
// with panicRowOutOfRange. Arithmetic failures (a zero divisor/factor) are
// returned as ErrDivisionByZero.
package matrix

import "fmt"

const (
	opDivideRow = "DivideRow"
	opScaleRow  = "ScaleRow"

	panicRowOutOfRange = "matrix: row index out of range"
)

// mustRow panics with a stable message when i is not a valid row index.
func (m *Dense[T]) mustRow(i int) {
	if i < 0 || i >= m.r {
		panic(panicRowOutOfRange)
	}
}

// DivideRow divides every entry of row r by divisor.
// Returns ErrDivisionByZero (row untouched) when divisor is zero.
func (m *Dense[T]) DivideRow(r int, divisor T) error {
	m.mustRow(r)
	if divisor.IsZero() {
		return matrixErrorf(opDivideRow, ErrDivisionByZero)
	}

	row := m.row(r)
	for j := range row {
		q, err := row[j].Div(divisor)
		if err != nil {
			return matrixErrorf(opDivideRow, fmt.Errorf("col %d: %w", j, err))
		}
		row[j] = q
	}

	return nil
}

// ScaleRow multiplies every entry of row r by factor.
// A zero factor is rejected with ErrDivisionByZero, mirroring DivideRow:
// scaling by zero would destroy the row and is never a valid elementary
// row operation.
func (m *Dense[T]) ScaleRow(r int, factor T) error {
	m.mustRow(r)
	if factor.IsZero() {
		return matrixErrorf(opScaleRow, ErrDivisionByZero)
	}

	row := m.row(r)
	for j := range row {
		row[j] = row[j].Mul(factor)
	}

	return nil
}

// SubtractMultipleOfRow performs target := target − factor·source.
// source == target is allowed (the row becomes (1−factor)·row).
func (m *Dense[T]) SubtractMultipleOfRow(source, target int, factor T) {
	m.mustRow(source)
	m.mustRow(target)

	src, dst := m.row(source), m.row(target)
	for j := range dst {
		dst[j] = dst[j].Sub(factor.Mul(src[j]))
	}
}

// SwapRows exchanges rows a and b in place. a == b is a no-op.
func (m *Dense[T]) SwapRows(a, b int) {
	m.mustRow(a)
	m.mustRow(b)
	if a == b {
		return
	}

	ra, rb := m.row(a), m.row(b)
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
