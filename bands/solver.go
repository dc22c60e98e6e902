// SPDX-License-Identifier: MIT

package bands

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/pwe/brillouin"
	"github.com/katalvlaran/pwe/dielectric"
	"github.com/katalvlaran/pwe/lattice"
	"github.com/katalvlaran/pwe/matrix"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Solver is one band-structure job with its coupling matrix factored.
// SolvePoint is safe for concurrent use; Run is not.
type Solver struct {
	params Params
	opts   options
	log    *zap.Logger

	lat    lattice.Lattice
	basis  lattice.Basis
	gvecs  []lattice.Vec2 // Cartesian basis[i]
	model  *dielectric.Model
	factor Factor
	path   brillouin.Path

	stage Stage
	start time.Time
}

// NewSolver validates p and runs the structure-only stages: basis
// enumeration, coupling-matrix assembly and factoring.
//
// Errors:
//   - ErrUnsupportedLattice, ErrInvalidParameter (validation, path sampling).
//   - ErrNumericalInstability (complex coupling, C singular or not positive
//     definite).
func NewSolver(p Params, opts ...Option) (*Solver, error) {
	s := &Solver{params: p, opts: gatherOptions(opts...), start: time.Now()}
	s.log = s.opts.logger.With(
		zap.Stringer("lattice", p.Lattice),
		zap.Int("order", p.Order),
		zap.String("backend", s.opts.solver.Name()),
	)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var err error
	if s.lat, err = lattice.New(p.Lattice); err != nil {
		return nil, err
	}
	if s.basis, err = lattice.NewBasis(p.Order); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	s.gvecs = make([]lattice.Vec2, len(s.basis))
	for i, g := range s.basis {
		s.gvecs[i] = s.lat.Vector(g)
	}
	pts := p.Path
	if pts == nil {
		if pts, err = lattice.HighSymmetry(p.Lattice); err != nil {
			return nil, err
		}
	}
	if s.path, err = brillouin.Interpolate(pts, p.PointsPerSegment); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	s.enter(StageBasisBuilt, zap.Int("plane_waves", len(s.basis)), zap.Int("k_points", s.path.Len()))

	if s.model, err = dielectric.NewModel(p.rod(), s.lat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	c, err := dielectric.Couple(s.basis, s.model)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumericalInstability, err)
	}
	if c, err = matrix.Symmetrize(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumericalInstability, err)
	}
	if s.factor, err = s.opts.solver.Factor(c); err != nil {
		return nil, err
	}
	s.enter(StageMatrixBuilt,
		zap.Float64("filling_fraction", s.model.FillingFraction()),
		zap.Float64("epsilon_avg", s.model.Average()),
	)

	return s, nil
}

// Stage returns the last stage reached.
func (s *Solver) Stage() Stage { return s.stage }

// Path returns the sampled k-path of the job.
func (s *Solver) Path() brillouin.Path { return s.path }

// Model returns the permittivity model of the job.
func (s *Solver) Model() *dielectric.Model { return s.model }

func (s *Solver) enter(st Stage, fields ...zap.Field) {
	s.stage = st
	fields = append(fields, zap.String("stage", st.String()), zap.Duration("elapsed", time.Since(s.start)))
	s.log.Debug("band solver stage", fields...)
}

// SolvePoint returns the lowest NumBands normalized frequencies at k,
// ascending.
//
// Implementation:
//   - Stage 1: d[i] = |k + G_i|, the square root of the kinetic diagonal.
//   - Stage 2: eigenvalues of D·C⁻¹·D from the backend.
//   - Stage 3: sort, clamp round-off negatives, ω = √λ.
//
// Errors:
//   - ErrNumericalInstability when the backend fails, an eigenvalue is not
//     finite, or one lies below −tol·max|λ|.
func (s *Solver) SolvePoint(k lattice.Vec2) ([]float64, error) {
	d := make([]float64, len(s.gvecs))
	for i, g := range s.gvecs {
		d[i] = k.Add(g).Norm()
	}
	vals, err := s.factor.Eigenvalues(d)
	if err != nil {
		return nil, err
	}

	return frequencies(vals, s.params.NumBands, s.opts.tol)
}

// frequencies sorts vals in place and returns √λ of the first n.
func frequencies(vals []float64, n int, tol float64) ([]float64, error) {
	if len(vals) < n {
		return nil, fmt.Errorf("%w: %d eigenvalues for %d bands", ErrNumericalInstability, len(vals), n)
	}
	if floats.HasNaN(vals) {
		return nil, fmt.Errorf("%w: NaN eigenvalue", ErrNumericalInstability)
	}
	sort.Float64s(vals)
	scale := math.Max(math.Abs(vals[0]), math.Abs(vals[len(vals)-1]))
	if math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: infinite eigenvalue", ErrNumericalInstability)
	}
	floor := -tol * scale

	out := make([]float64, n)
	for i := range out {
		v := vals[i]
		if v < floor {
			return nil, fmt.Errorf("%w: ω² = %g below %g", ErrNumericalInstability, v, floor)
		}
		if v < 0 {
			v = 0
		}
		out[i] = math.Sqrt(v)
	}

	return out, nil
}

// Run solves every k-point of the path on a bounded worker pool and
// assembles the Table in path order.
//
// Errors: the first SolvePoint error, annotated with its k-index, or the
// context error when ctx ends first.
func (s *Solver) Run(ctx context.Context) (*Table, error) {
	s.enter(StageSolving, zap.Int("workers", s.opts.workers))

	rows := make([][]float64, s.path.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.workers)
	for i, k := range s.path.KPoints {
		if gctx.Err() != nil {
			break
		}
		i, k := i, k // per-iteration copies for the goroutine (go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := s.SolvePoint(k)
			if err != nil {
				return fmt.Errorf("k-point %d (%.4f, %.4f): %w", i, k.X, k.Y, err)
			}
			rows[i] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Debug("band solve failed", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := newTable(s.path, rows, s.params.NumBands)
	s.enter(StageDone)

	return t, nil
}

// Solve validates p, builds the solver and runs it over the k-path.
// It is the one-shot entry point; see NewSolver and Run for the stages.
func Solve(ctx context.Context, p Params, opts ...Option) (*Table, error) {
	s, err := NewSolver(p, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(ctx)
}
