// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the reduction engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Zero policy: pivot detection, singularity checks and rank counting all
//     ask "is this entry zero?". With WithExactZero the answer is the scalar's
//     exact IsZero; with WithEpsilon(eps) it is Magnitude() <= eps. When neither
//     is given the scalar type decides: inexact types (scalar.Inexact) use their
//     advertised tolerance multiplied by the largest entry magnitude of the
//     input, exact types use exact comparison. WithEpsilon is absolute.
//   - Logging: the engine emits pivot decisions at slog debug level on the
//     configured logger (slog.Default() unless WithLogger is used).
package matrix

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

// epsFromScalar marks "no explicit tolerance": the scalar type decides.
const epsFromScalar = -1.0

// DefaultEpsilon is the resolved tolerance when no option overrides it:
// a negative value means scalar.DefaultTolerance[T], scaled by max |a_ij|,
// is consulted per call.
const DefaultEpsilon = epsFromScalar

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil      = "matrix: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps    float64      // < 0: scalar default; 0: exact; > 0: tolerance
	logger *slog.Logger // never nil after gatherOptions
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance used to decide whether an entry is zero.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - eps == 0 is equivalent to WithExactZero.
//   - Entries the policy treats as zero in a pivot column are snapped to the
//     exact additive identity during elimination.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - For float64 data scaled around 1, 1e-10..1e-9 is a sensible bound.
//     Larger eps makes near-singular matrices report lower rank.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithExactZero forces exact comparison against the additive identity,
// regardless of the scalar type's advertised tolerance.
func WithExactZero() Option {
	return func(o *Options) { o.eps = 0 }
}

// WithLogger routes the engine's debug traces to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Exposed mainly for tests and for callers that want to inspect a configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the configured tolerance; negative means "scalar default".
func (o Options) Epsilon() float64 { return o.eps }

// Logger reports the configured logger.
func (o Options) Logger() *slog.Logger { return o.logger }

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: fill the logger from slog.Default() when unset.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
