// SPDX-License-Identifier: MIT

package lattice

// Basis is the ordered plane-wave basis of one solve.
type Basis []ReciprocalVector

// BasisSize returns (2·order+1)², the number of plane waves for order ≥ 0.
func BasisSize(order int) int {
	side := 2*order + 1

	return side * side
}

// NewBasis enumerates every (nx, ny) with −order ≤ nx, ny ≤ order exactly
// once, nx outer and ny inner. order = 0 yields the single vector (0,0),
// the effective-medium limit.
//
// Errors: ErrNegativeOrder when order < 0.
// Complexity: O(order²).
func NewBasis(order int) (Basis, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	b := make(Basis, 0, BasisSize(order))
	for nx := -order; nx <= order; nx++ {
		for ny := -order; ny <= order; ny++ {
			b = append(b, ReciprocalVector{Nx: nx, Ny: ny})
		}
	}

	return b, nil
}

// Center returns the index of (0,0) in a basis built by NewBasis.
func (b Basis) Center() int { return len(b) / 2 }
