// SPDX-License-Identifier: MIT

package bands

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pwe/matrix"
	"gonum.org/v1/gonum/mat"
)

// Eigensolver factors a symmetric coupling matrix C once per solve.
type Eigensolver interface {
	// Name identifies the backend in logs.
	Name() string
	// Factor checks that c is positive definite and inverts it.
	// Failures wrap ErrNumericalInstability.
	Factor(c *matrix.Dense) (Factor, error)
}

// Factor holds C⁻¹ for one solve. Implementations are read-only after
// construction and safe for concurrent use.
type Factor interface {
	// Eigenvalues returns the eigenvalues of D·C⁻¹·D with D = diag(d),
	// in no particular order. d[i] = |k + G_i|.
	Eigenvalues(d []float64) ([]float64, error)
}

// LAPACK returns the gonum/mat backend: Cholesky inverse and symmetric QR
// eigen decomposition. It is the default.
func LAPACK() Eigensolver { return lapackSolver{} }

// Jacobi returns the in-module backend: a Jacobi spectrum of C for the
// definiteness check, Gauss–Jordan inverse and cyclic Jacobi sweeps from
// package matrix. Slower, with no cgo or assembly paths.
func Jacobi(opts ...matrix.Option) Eigensolver { return jacobiSolver{opts: opts} }

type lapackSolver struct{}

func (lapackSolver) Name() string { return "lapack" }

func (lapackSolver) Factor(c *matrix.Dense) (Factor, error) {
	if err := checkCoupling(c); err != nil {
		return nil, err
	}
	n := c.Rows()
	sym := mat.NewSymDense(n, append([]float64(nil), c.RawRowMajor()...))
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, errIndefinite()
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, fmt.Errorf("%w: coupling matrix: %w", ErrNumericalInstability, err)
	}

	return &lapackFactor{n: n, inv: symmetricCopy(n, inv.At)}, nil
}

type lapackFactor struct {
	n   int
	inv []float64 // row-major, exactly symmetric
}

func (f *lapackFactor) Eigenvalues(d []float64) ([]float64, error) {
	s := mat.NewSymDense(f.n, scaled(f.n, f.inv, d))
	var es mat.EigenSym
	if ok := es.Factorize(s, false); !ok {
		return nil, fmt.Errorf("%w: symmetric eigen decomposition failed", ErrNumericalInstability)
	}

	return es.Values(nil), nil
}

type jacobiSolver struct {
	opts []matrix.Option
}

func (jacobiSolver) Name() string { return "jacobi" }

func (j jacobiSolver) Factor(c *matrix.Dense) (Factor, error) {
	if err := checkCoupling(c); err != nil {
		return nil, err
	}
	spec, err := matrix.EigenvaluesSym(c, j.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: coupling matrix: %w", ErrNumericalInstability, err)
	}
	// ascending: spec[0] is the smallest eigenvalue
	if spec[0] <= definiteTolerance*math.Abs(spec[len(spec)-1]) {
		return nil, errIndefinite()
	}
	inv, err := matrix.Inverse(c, j.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: coupling matrix: %w", ErrNumericalInstability, err)
	}
	n := inv.Rows()
	at := func(i, k int) float64 {
		v, _ := inv.At(i, k)
		return v
	}

	return &jacobiFactor{n: n, inv: symmetricCopy(n, at), opts: j.opts}, nil
}

type jacobiFactor struct {
	n    int
	inv  []float64
	opts []matrix.Option
}

func (f *jacobiFactor) Eigenvalues(d []float64) ([]float64, error) {
	m, err := matrix.NewDenseFrom(f.n, f.n, scaled(f.n, f.inv, d))
	if err != nil {
		return nil, err
	}
	vals, err := matrix.EigenvaluesSym(m, f.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumericalInstability, err)
	}

	return vals, nil
}

// definiteTolerance is the smallest accepted λ_min/λ_max of C for the
// Jacobi backend.
const definiteTolerance = 1e-12

// checkCoupling rejects a non-square or non-finite coupling matrix.
func checkCoupling(c *matrix.Dense) error {
	if err := matrix.ValidateSquare(c); err != nil {
		return fmt.Errorf("%w: coupling matrix: %w", ErrNumericalInstability, err)
	}
	if err := matrix.ValidateFinite(c); err != nil {
		return fmt.Errorf("%w: coupling matrix: %w", ErrNumericalInstability, err)
	}

	return nil
}

// errIndefinite reports a coupling matrix that is not positive definite.
// The sinc kernel produces one at high index contrast or large r/a.
func errIndefinite() error {
	return fmt.Errorf("%w: coupling matrix is not positive definite; "+
		"the sinc kernel is indefinite at this contrast, use the bessel kernel", ErrNumericalInstability)
}

// symmetricCopy returns ½(X + Xᵀ) of an n×n matrix read through at.
func symmetricCopy(n int, at func(i, j int) float64) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = at(i, i)
		for j := i + 1; j < n; j++ {
			v := 0.5 * (at(i, j) + at(j, i))
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	return out
}

// scaled returns D·S·D for symmetric row-major s and D = diag(d), mirroring
// the upper triangle so the result is exactly symmetric.
func scaled(n int, s, d []float64) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := d[i] * s[i*n+j] * d[j]
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	return out
}
