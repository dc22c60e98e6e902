// SPDX-License-Identifier: MIT

package matrix

import "math"

// Inverse computes A⁻¹ by Gauss–Jordan elimination with partial pivoting.
// The input must be non-nil and square. Produces a new Dense; m is not mutated.
//
// Implementation:
//   - Stage 1: ValidateSquare(m). Copy m into a work buffer, set inv = I.
//     Record scale = max |a_ij| (an all-zero matrix is singular).
//   - Stage 2: for each column col:
//   - pick the row p ≥ col with the largest |a[p,col]|;
//   - fail with ErrSingular when that pivot ≤ eps·scale;
//   - swap rows p and col in both buffers, normalize the pivot row;
//   - eliminate column col from every other row.
//
// Behavior highlights:
//   - Deterministic: ties keep the first (lowest) row index.
//   - Row operations on inv mirror those on the work buffer exactly.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: WithEpsilon sets the relative pivot threshold.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular (no pivot above threshold).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - When one matrix is reused against many right-hand sides (e.g. a fixed
//     coupling matrix against many diagonal operators), invert it once.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := a.r
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	scale := 0.0
	for _, v := range a.data {
		scale = math.Max(scale, math.Abs(v))
	}
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	threshold := o.eps * scale

	var (
		col, row, k, p int
		best, v, f     float64
		pivotInv       float64
		ad, id         = a.data, inv.data
	)
	for col = 0; col < n; col++ {
		// P.1: partial pivot search in column col
		p, best = col, math.Abs(ad[col*n+col])
		for row = col + 1; row < n; row++ {
			if v = math.Abs(ad[row*n+col]); v > best {
				p, best = row, v
			}
		}
		if best <= threshold {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		// P.2: swap rows p and col
		if p != col {
			for k = 0; k < n; k++ {
				ad[p*n+k], ad[col*n+k] = ad[col*n+k], ad[p*n+k]
				id[p*n+k], id[col*n+k] = id[col*n+k], id[p*n+k]
			}
		}
		// P.3: normalize pivot row
		pivotInv = 1 / ad[col*n+col]
		for k = 0; k < n; k++ {
			ad[col*n+k] *= pivotInv
			id[col*n+k] *= pivotInv
		}
		// P.4: eliminate column col from all other rows
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			f = ad[row*n+col]
			if f == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				ad[row*n+k] -= f * ad[col*n+k]
				id[row*n+k] -= f * id[col*n+k]
			}
		}
	}

	return inv, nil
}
