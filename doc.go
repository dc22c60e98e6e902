// Package pwe is a plane-wave expansion band solver for two-dimensional
// photonic crystals: square and triangular lattices of dielectric rods in
// air, TM polarization.
//
// 🚀 What does it compute?
//
//	For a rod permittivity εr, a radius ratio r/a and a truncation order G,
//	pwe expands the field in (2G+1)² plane waves, assembles the Fourier
//	coupling matrix of the permittivity once, and solves one symmetric
//	eigenproblem per k-point along the Brillouin-zone tour:
//		• Square lattice:     Γ → X → M → Γ
//		• Triangular lattice: Γ → M → K → Γ
//	The result is a band table of normalized frequencies ωa/2πc.
//
// ✨ Highlights
//
//   - Two eigensolver backends: gonum LAPACK (default) and in-module Jacobi.
//   - Bounded worker pool over k-points; rows are reassembled in path order.
//   - Closed-form sinc kernel or exact J1 disk transform for ε(G).
//   - Stable error kinds for callers: invalid_parameter,
//     unsupported_lattice, numerical_instability.
//
// Under the hood:
//
//	lattice/    — reciprocal vectors, plane-wave basis, high-symmetry points
//	brillouin/  — k-path interpolation with tick indices
//	dielectric/ — rod permittivity Fourier coefficients, coupling matrix
//	matrix/     — dense kernels: inverse, symmetrize, Jacobi eigen
//	bands/      — the solver pipeline and the band table
//	units/      — normalized frequency ↔ GHz
//	config/     — YAML job files
//	cmd/pwe/    — command-line front end
//
// Quick example:
//
//	tbl, err := bands.Solve(ctx, bands.Params{
//		Lattice: lattice.Square, Epsilon: 8.9, RadiusRatio: 0.2,
//		Order: 5, NumBands: 4, PointsPerSegment: 20,
//	})
//	// tbl.Frequencies has 61 rows of 4 ascending values.
//
//	go install github.com/katalvlaran/pwe/cmd/pwe@latest
package pwe
