// SPDX-License-Identifier: MIT

// Package matrix: internal policy type shared by every reduction kernel.
package matrix

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// policy is the per-call resolution of Options for a concrete scalar type T.
type policy[T scalar.Scalar[T]] struct {
	isZero func(T) bool
	eps    float64
	log    *slog.Logger
	debug  bool // cached log.Enabled(debug) so hot loops skip attribute building
}

// newPolicy resolves opts for T against the input matrix m.
// A negative epsilon defers to scalar.DefaultTolerance[T] scaled by the largest
// entry magnitude of m, so uniformly tiny matrices keep their rank.
// An explicit WithEpsilon value is used as given.
func newPolicy[T scalar.Scalar[T]](m *Dense[T], opts ...Option) policy[T] {
	o := gatherOptions(opts...)
	eps := o.eps
	if eps < 0 {
		eps = scalar.DefaultTolerance[T]() * maxMagnitude(m)
	}

	return policy[T]{
		isZero: scalar.ZeroTest[T](eps),
		eps:    eps,
		log:    o.logger,
		debug:  o.logger.Enabled(context.Background(), slog.LevelDebug),
	}
}

// maxMagnitude returns max |a_ij| over m, or 1 when that is not finite.
// An all-zero (or empty) matrix yields 0, which makes the default test exact.
func maxMagnitude[T scalar.Scalar[T]](m *Dense[T]) float64 {
	mx := 0.0
	for _, v := range m.data {
		if mag := v.Magnitude(); mag > mx {
			mx = mag
		}
	}
	if math.IsInf(mx, 0) || math.IsNaN(mx) {
		return 1
	}

	return mx
}

// trace emits a debug record only when the logger has debug enabled.
func (p policy[T]) trace(msg string, attrs ...slog.Attr) {
	if !p.debug {
		return
	}
	p.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
