// SPDX-License-Identifier: MIT

package bands

import (
	"math"
	"runtime"

	"go.uber.org/zap"
)

// DefaultTolerance is the relative bound below which a negative ω² is
// treated as round-off and clamped to zero.
const DefaultTolerance = 1e-9

const (
	panicWorkersInvalid   = "bands: WithWorkers: n must be > 0"
	panicSolverNil        = "bands: WithEigensolver: nil backend"
	panicToleranceInvalid = "bands: WithTolerance: tol must be finite and > 0"
)

// Option configures a Solver.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
	solver  Eigensolver
	tol     float64
}

// WithWorkers bounds the number of k-points solved concurrently.
// Panics when n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger for stage transitions. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithEigensolver selects the backend. Panics on nil.
func WithEigensolver(e Eigensolver) Option {
	if e == nil {
		panic(panicSolverNil)
	}

	return func(o *options) { o.solver = e }
}

// WithTolerance sets the negative-eigenvalue clamp bound relative to the
// largest |ω²| of the k-point. Panics when tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

func gatherOptions(user ...Option) options {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
		solver:  LAPACK(),
		tol:     DefaultTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
