// SPDX-License-Identifier: MIT

// Package bands computes TM photonic band structures of 2D rod lattices by
// the plane-wave expansion method.
//
// What & Why:
//
//	For a k-point k and a plane-wave basis {G_i}, the TM master equation
//	becomes the generalized eigenproblem A·x = ω²·C·x, where A is diagonal
//	with A[i][i] = |k + G_i|² and C[i][j] = ε(G_i − G_j) is the coupling
//	matrix. C depends only on the structure, so a Solver builds and factors
//	it once and reuses it for every k-point of the path.
//
// Pipeline:
//
//	Idle → BasisBuilt → MatrixBuilt → Solving → Done
//
//	  • NewSolver validates Params, enumerates the basis, assembles C and
//	    hands it to the Eigensolver backend for factoring.
//	  • Run fans the k-points out over a bounded errgroup; each worker writes
//	    one row of the Table. The first error cancels the rest.
//
// Reduction:
//
//	With D = A^½ the pencil (A, C) has the spectrum of the symmetric matrix
//	D·C⁻¹·D, so both backends only need a symmetric eigensolver and the
//	inverse of C. Tiny negative eigenvalues are clamped to zero; larger ones
//	are reported as ErrNumericalInstability.
//
// Units:
//
//	k and G are Cartesian in units of 2π/a. Frequencies are normalized,
//	ωa/2πc. Package units converts them to GHz.
//
// Errors:
//
//	ErrInvalidParameter, ErrUnsupportedLattice and ErrNumericalInstability
//	cover every failure of a solve; Kind maps an error to a stable code.
package bands
