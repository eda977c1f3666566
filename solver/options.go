// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the iterative solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package solver

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotCheck rejects a zero diagonal before the first sweep.
	DefaultPivotCheck = true

	// DefaultTolerance disables early stopping: exactly `iterations` sweeps run.
	DefaultTolerance = -1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "solver: WithTolerance: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotCheck bool    // DefaultPivotCheck
	tolerance  float64 // < 0 disables early stop; DefaultTolerance
}

// WithPivotCheck enables the zero-pivot guard (the default).
func WithPivotCheck() Option {
	return func(o *Options) { o.pivotCheck = true }
}

// WithoutPivotCheck disables the zero-pivot guard: a zero diagonal then yields
// ±Inf/NaN entries in the result instead of ErrZeroPivot.
func WithoutPivotCheck() Option {
	return func(o *Options) { o.pivotCheck = false }
}

// WithTolerance stops sweeping early once the largest absolute update made
// during a sweep is <= eps. Panics if eps is NaN, Inf or negative.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

// NewOptions resolves opts over the defaults. Useful for inspection in tests
// and for callers (the CLI) that build options from configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotCheck reports whether the zero-pivot guard is enabled.
func (o Options) PivotCheck() bool { return o.pivotCheck }

// Tolerance returns the early-stop threshold and whether it is enabled.
func (o Options) Tolerance() (float64, bool) { return o.tolerance, o.tolerance >= 0 }

func defaultOptions() Options {
	return Options{
		pivotCheck: DefaultPivotCheck,
		tolerance:  DefaultTolerance,
	}
}

// gatherOptions applies user options in order; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
