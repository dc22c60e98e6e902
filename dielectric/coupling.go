// SPDX-License-Identifier: MIT

package dielectric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pwe/lattice"
	"github.com/katalvlaran/pwe/matrix"
)

// Coefficienter evaluates a Fourier coefficient at a reciprocal difference.
// *Model implements it.
type Coefficienter interface {
	Coefficient(d lattice.ReciprocalVector) complex128
}

// imagAbsTol and imagRelTol bound |Im c| ≤ imagRelTol·|Re c| + imagAbsTol.
const (
	imagAbsTol = 1e-15
	imagRelTol = 1e-12
)

// Couple assembles the M×M coupling matrix C[i][j] = ε(basis[i] − basis[j]).
//
// Implementation:
//   - Stage 1: reject an empty basis; allocate Dense(M, M).
//   - Stage 2: walk i→j; each distinct difference is evaluated once and
//     memoized, since (2G+1)² vectors only have (4G+1)² differences.
//   - Stage 3: check the imaginary part, store the real part.
//
// Errors:
//   - ErrEmptyBasis, ErrComplexCoupling.
//
// Complexity:
//   - Time O(M²) lookups plus O(G²) coefficient evaluations; Space O(M²).
//
// Notes:
//   - Pure function of its inputs; the result is independent of k and is
//     reused for every k-point of a solve.
func Couple(basis lattice.Basis, eps Coefficienter) (*matrix.Dense, error) {
	n := len(basis)
	if n == 0 {
		return nil, ErrEmptyBasis
	}
	c, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	memo := make(map[lattice.ReciprocalVector]float64, 4*n)
	data := c.RawRowMajor()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := basis[i].Sub(basis[j])
			v, ok := memo[d]
			if !ok {
				z := eps.Coefficient(d)
				if math.Abs(imag(z)) > imagRelTol*math.Abs(real(z))+imagAbsTol {
					return nil, fmt.Errorf("%w: ε(%d,%d) = %v", ErrComplexCoupling, d.Nx, d.Ny, z)
				}
				v = real(z)
				memo[d] = v
			}
			data[i*n+j] = v
		}
	}

	return c, nil
}
