// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels used by the
// plane-wave band solver.
//
// What & Why:
//
//	The coupling matrix of a plane-wave expansion is a small-to-medium dense
//	symmetric matrix (M = (2G+1)² rows, a few hundred at most). This package
//	keeps it in a flat row-major Dense, and offers the handful of kernels the
//	solver needs to stay independent of any external LAPACK:
//	  • Symmetrize / MaxAsymmetry: remove floating-point asymmetry.
//	  • Inverse: Gauss–Jordan elimination with partial pivoting.
//	  • EigenvaluesSym: cyclic Jacobi sweeps for symmetric matrices.
//
// Errors:
//
//	All kernels return package sentinels (ErrBadShape, ErrNonSquare,
//	ErrAsymmetry, ErrSingular, ErrMatrixEigenFailed, ...) wrapped with the
//	operation tag; match them with errors.Is.
//
// Complexity:
//
//	At is O(1); Symmetrize is O(n²); Inverse is O(n³);
//	EigenvaluesSym is O(sweeps·n³).
package matrix
