// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Stay generic over the scalar capability set; Dense never assumes float64.
//
// AI-Hints:
//   - Reduction kernels clone their input and work on the private copy through the
//     unchecked at/set helpers; callers never observe intermediate states.
//   - Use NewFromRows for literal data, NewDense/NewIdentity for shapes.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-fill; At/Set: O(1); Clone: O(r*c); Row: O(c).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the scalar type T.
//   - r,c hold dimensions (rows, cols); 0×0 is legal for matrices built from no rows.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T scalar.Scalar[T]] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[scalar.Real])(nil)

// NewDense creates an r×c matrix filled with the additive identity of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate and fill with scalar.Zero[T]() (the Go zero value of T
//     is not required to be the additive identity).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK[T](rows, cols), nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Callers guarantee non-negative dimensions.
func newDenseZeroOK[T scalar.Scalar[T]](rows, cols int) *Dense[T] {
	buf := make([]T, rows*cols)
	zero := scalar.Zero[T]()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}
}

// NewFromRows builds a matrix from literal rows, copying the data.
// MAIN DESCRIPTION:
//   - The canonical way callers hand data to the reduction engine.
//
// Implementation:
//   - Stage 1: the first row fixes cols; every other row must match it.
//   - Stage 2: copy rows into a fresh row-major buffer.
//
// Behavior highlights:
//   - No rows yields a legal 0×0 matrix; a single empty row yields 1×0.
//   - The input slices are never retained.
//
// Errors:
//   - ErrRaggedRows when row lengths differ (wrapped with the offending row).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T scalar.Scalar[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return newDenseZeroOK[T](0, 0), nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d entries, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
	}

	out := newDenseZeroOK[T](len(rows), cols)
	for i, row := range rows {
		copy(out.data[i*cols:(i+1)*cols], row)
	}

	return out, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// IsSquare reports rows == cols. A 0×0 matrix is square.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return scalar.Zero[T](), err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// at and set are the unchecked accessors used by kernels after validation.
func (m *Dense[T]) at(row, col int) T     { return m.data[row*m.c+col] }
func (m *Dense[T]) set(row, col int, v T) { m.data[row*m.c+col] = v }

// row returns the live backing slice of row i (aliases storage).
func (m *Dense[T]) row(i int) []T { return m.data[i*m.c : (i+1)*m.c] }

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.row(i))

	return out, nil
}

// ToRows returns a deep copy of the matrix as a slice of rows.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
// Scalars are values, so copying the flat buffer is a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// Equal reports identical shapes and element-wise scalar equality (exact).
// Use AllClose for tolerance-based comparison.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if !m.data[idx].Equal(o.data[idx]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one "[a, b, c]" line per row.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
