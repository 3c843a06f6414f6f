// SPDX-License-Identifier: MIT

package scalar

import "errors"

// ErrDivisionByZero is returned by Div when the divisor is the additive identity.
// Matrix row primitives surface the same sentinel, so errors.Is matches across packages.
var ErrDivisionByZero = errors.New("scalar: division by zero")
