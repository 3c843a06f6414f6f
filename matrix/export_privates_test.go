// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linalg/scalar"

// Test-Bridge (White-Box) for private kernels and panic messages.
//
// Purpose:
//   - Expose stable panic messages so matrix_test can use require.PanicsWithValue.
//   - Expose forwardEliminate's swap count for sign-bookkeeping tests.
//
// Build Policy:
//   - Lives in a _test.go file of package matrix: compiled into tests only.

const (
	PanicRowOutOfRange  = panicRowOutOfRange
	PanicEpsilonInvalid = panicEpsilonInvalid
	PanicLoggerNil      = panicLoggerNil
)

// EchelonSwaps runs forward elimination on a clone of m and reports the row swaps.
func EchelonSwaps[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (int, error) {
	return forwardEliminate(m.Clone(), newPolicy(m, opts...))
}
