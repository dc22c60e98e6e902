// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative tolerance used by Inverse (pivot
	// threshold against the largest |entry|) and EigenvaluesSym (off-diagonal
	// Frobenius norm against the total norm).
	DefaultEpsilon = 1e-12

	// DefaultMaxSweeps caps the number of cyclic Jacobi sweeps. Jacobi
	// converges quadratically; well-conditioned inputs need 6..12 sweeps.
	DefaultMaxSweeps = 64
)

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	maxSweeps int     // > 0; DefaultMaxSweeps
}

// WithEpsilon sets the relative numeric tolerance.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxSweeps sets the Jacobi sweep cap. Panics when sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// gatherOptions applies user-provided Option setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
