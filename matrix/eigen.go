// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"
)

// EigenvaluesSym computes the eigenvalues of a symmetric matrix via cyclic
// Jacobi sweeps.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, eps·‖m‖_max); copy m into a work buffer.
//   - Stage 2: sweep all (p,q), p<q, in row-cyclic order; each rotation zeroes
//     A[p,q]. Stop when the off-diagonal Frobenius norm drops to eps·‖A‖_F.
//   - Stage 3: read the diagonal and sort ascending.
//
// Behavior highlights:
//   - Fixed sweep order produces bit-identical results for identical inputs.
//   - Rotations whose off-diagonal entry is negligible against both diagonal
//     entries are replaced by an exact zero.
//
// Inputs:
//   - m: symmetric Matrix; n := m.Rows().
//   - opts: WithEpsilon (relative tolerance), WithMaxSweeps (cap).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry (validation).
//   - ErrMatrixEigenFailed (not converged after maxSweeps).
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
//
// AI-Hints:
//   - Symmetrize inputs that come out of numerically noisy ops first.
func EigenvaluesSym(m Matrix, opts ...Option) ([]float64, error) {
	a, o, err := prepareSym(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	if err = jacobiSweeps(a.data, n, o); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}
	sort.Float64s(vals)

	return vals, nil
}

// prepareSym validates m and returns a private working copy plus options.
func prepareSym(m Matrix, opts ...Option) (*Dense, Options, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, o, err
	}
	a, err := toDense(m)
	if err != nil {
		return nil, o, err
	}
	scale := 0.0
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, o, ErrNaNInf
		}
		scale = math.Max(scale, math.Abs(v))
	}
	if err = ValidateSymmetric(a, math.Max(o.eps*scale, 0)); err != nil {
		return nil, o, err
	}

	return a, o, nil
}

// jacobiSweeps diagonalizes the symmetric n×n row-major buffer a in place.
func jacobiSweeps(a []float64, n int, o Options) error {
	total := frobenius(a)
	if total == 0 || n == 1 {
		return nil
	}
	target := o.eps * total

	var (
		sweep, p, q, k    int
		app, aqq, apq     float64
		akp, akq          float64
		theta, t, c, s, g float64
	)
	for sweep = 0; sweep < o.maxSweeps; sweep++ {
		if offDiagonal(a, n) <= target {
			return nil
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = a[p*n+q]
				if apq == 0 {
					continue
				}
				app, aqq = a[p*n+p], a[q*n+q]
				// J.1: negligible against both diagonals, drop it exactly
				g = 100 * math.Abs(apq)
				if sweep > 3 && math.Abs(app)+g == math.Abs(app) && math.Abs(aqq)+g == math.Abs(aqq) {
					a[p*n+q], a[q*n+p] = 0, 0
					continue
				}
				// J.2: rotation angle, θ = (aqq−app)/(2·apq), t = sign(θ)/(|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c
				// J.3: rotate rows/cols p and q
				for k = 0; k < n; k++ {
					if k == p || k == q {
						continue
					}
					akp, akq = a[k*n+p], a[k*n+q]
					a[k*n+p] = c*akp - s*akq
					a[p*n+k] = a[k*n+p]
					a[k*n+q] = s*akp + c*akq
					a[q*n+k] = a[k*n+q]
				}
				a[p*n+p] = app - t*apq
				a[q*n+q] = aqq + t*apq
				a[p*n+q], a[q*n+p] = 0, 0
			}
		}
	}
	if offDiagonal(a, n) <= target {
		return nil
	}

	return ErrMatrixEigenFailed
}

func frobenius(a []float64) float64 {
	sum := 0.0
	for _, v := range a {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// offDiagonal returns the Frobenius norm of the strictly off-diagonal part.
func offDiagonal(a []float64, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				sum += a[i*n+j] * a[i*n+j]
			}
		}
	}

	return math.Sqrt(sum)
}
