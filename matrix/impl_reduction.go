// SPDX-License-Identifier: MIT
// Package matrix - row-reduction engine (Gaussian and Gauss–Jordan elimination).
//
// Purpose:
//   - Bring a matrix to row echelon form (forward elimination, pivots kept as found).
//   - Bring a matrix to reduced row echelon form (pivots normalized to one, pivot
//     columns cleared above and below).
//   - Serve Determinant, Rank and Inverse through the two internal kernels
//     forwardEliminate and gaussJordan.
//
// Determinism & Policy:
//   - Pivot choice is "first non-zero from the top", never "largest magnitude":
//     exact scalars (scalar.Rational) need no partial pivoting and the results
//     stay reproducible across scalar types.
//   - "Non-zero" is decided by the per-call zero policy (see options.go). Entries
//     of a pivot column that the policy treats as zero are snapped to the exact
//     additive identity so rounding residue never leaks into the result.
//   - Public entry points clone their input; the caller's matrix is never mutated.

package matrix

import (
	"log/slog"

	"github.com/katalvlaran/linalg/scalar"
)

const (
	opRowEchelon        = "RowEchelon"
	opReducedRowEchelon = "ReducedRowEchelon"
)

// RowEchelon returns the row echelon form of m.
// MAIN DESCRIPTION:
//   - Forward Gaussian elimination on a private copy of m.
//
// Implementation:
//   - Stage 1: walk columns left to right with a pivot-row pointer p.
//   - Stage 2: the pivot is the first row at or below p whose entry is non-zero
//     under the zero policy; swap it into row p.
//   - Stage 3: for every row below p, subtract (entry/pivot)·row p.
//   - Columns without a pivot are skipped and p does not advance.
//
// Behavior highlights:
//   - Pivots are NOT normalized; [[1,2],[2,4]] reduces to [[1,2],[0,0]].
//   - Zero rows end up at the bottom.
//   - Empty matrices are returned as empty clones.
//
// Inputs:
//   - m: any rectangular matrix.
//   - opts: WithEpsilon / WithExactZero / WithLogger.
//
// Errors:
//   - ErrNilMatrix; ErrDivisionByZero only if a scalar misbehaves.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func RowEchelon[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}

	work := m.Clone()
	if _, err := forwardEliminate(work, newPolicy(m, opts...)); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}

	return work, nil
}

// ReducedRowEchelon returns the reduced row echelon form of m.
// MAIN DESCRIPTION:
//   - Gauss–Jordan elimination with a lead-column pointer on a private copy.
//
// Implementation:
//   - Stage 1: for row r, scan column lead from row r down for a non-zero entry;
//     when the column is exhausted move lead right and rescan from row r.
//   - Stage 2: swap the found row into r, divide it by its pivot (pivot := 1).
//   - Stage 3: clear column lead in every other row (entry := 0).
//
// Behavior highlights:
//   - Idempotent: reducing a reduced matrix returns an equal matrix.
//   - Every pivot is exactly one, every other entry of a pivot column exactly zero.
//
// Errors:
//   - ErrNilMatrix; ErrDivisionByZero only if a scalar misbehaves.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
//
// AI-Hints:
//   - Use scalar.Rational for exact fractions; scalar.Real with the default
//     tolerance for quick numeric work.
func ReducedRowEchelon[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReducedRowEchelon, err)
	}

	work := m.Clone()
	if err := gaussJordan(work, newPolicy(m, opts...)); err != nil {
		return nil, matrixErrorf(opReducedRowEchelon, err)
	}

	return work, nil
}

// forwardEliminate reduces d in place to row echelon form and reports how many
// row swaps it performed (Determinant needs the parity).
func forwardEliminate[T scalar.Scalar[T]](d *Dense[T], pol policy[T]) (int, error) {
	rows, cols := d.r, d.c
	zero := scalar.Zero[T]()
	swaps, pivotRow := 0, 0

	var row int
	for col := 0; col < cols && pivotRow < rows; col++ {
		// Stage 1: first usable pivot at or below pivotRow.
		sel := -1
		for row = pivotRow; row < rows; row++ {
			if !pol.isZero(d.at(row, col)) {
				sel = row
				break
			}
		}
		if sel < 0 {
			pol.trace("echelon: column has no pivot", slog.Int("col", col))
			continue
		}

		// Stage 2: bring it into place.
		if sel != pivotRow {
			d.SwapRows(sel, pivotRow)
			swaps++
		}
		pivot := d.at(pivotRow, col)
		if pol.debug {
			pol.trace("echelon: pivot",
				slog.Int("row", pivotRow), slog.Int("col", col), slog.String("value", pivot.String()))
		}

		// Stage 3: clear the column below the pivot.
		for row = pivotRow + 1; row < rows; row++ {
			v := d.at(row, col)
			if v.IsZero() {
				continue
			}
			if !pol.isZero(v) {
				factor, err := v.Div(pivot)
				if err != nil {
					return swaps, err
				}
				d.SubtractMultipleOfRow(pivotRow, row, factor)
			}
			d.set(row, col, zero)
		}
		pivotRow++
	}

	return swaps, nil
}

// gaussJordan reduces d in place to reduced row echelon form.
func gaussJordan[T scalar.Scalar[T]](d *Dense[T], pol policy[T]) error {
	rows, cols := d.r, d.c
	zero, one := scalar.Zero[T](), scalar.One[T]()
	lead := 0

	var i, j int
	for r := 0; r < rows; r++ {
		if lead >= cols {
			return nil
		}

		// Stage 1: locate a pivot, moving lead right past empty columns.
		i = r
		for pol.isZero(d.at(i, lead)) {
			i++
			if i == rows {
				pol.trace("rref: column has no pivot", slog.Int("col", lead))
				i = r
				lead++
				if lead == cols {
					return nil
				}
			}
		}

		// Stage 2: swap and normalize.
		d.SwapRows(i, r)
		pivot := d.at(r, lead)
		if pol.debug {
			pol.trace("rref: pivot",
				slog.Int("row", r), slog.Int("col", lead), slog.String("value", pivot.String()))
		}
		if err := d.DivideRow(r, pivot); err != nil {
			return err
		}
		d.set(r, lead, one)

		// Stage 3: clear the pivot column everywhere else.
		for j = 0; j < rows; j++ {
			if j == r {
				continue
			}
			v := d.at(j, lead)
			if v.IsZero() {
				continue
			}
			if !pol.isZero(v) {
				d.SubtractMultipleOfRow(r, j, v)
			}
			d.set(j, lead, zero)
		}
		lead++
	}

	return nil
}
