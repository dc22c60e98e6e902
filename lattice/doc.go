// SPDX-License-Identifier: MIT

// Package lattice describes the 2D Bravais lattices supported by the band
// solver and the truncated reciprocal-lattice basis used by the plane-wave
// expansion.
//
// Conventions:
//
//	The lattice constant a is 1. Reciprocal vectors and wavevectors are
//	Cartesian in units of 2π/a, so the empty-lattice dispersion is simply
//	ω = |k + G| in normalized frequency ωa/2πc.
//
//	  square:      b1 = (1, 0),      b2 = (0, 1),     cell area 1
//	  triangular:  b1 = (1, −1/√3),  b2 = (0, 2/√3),  cell area √3/2
//
// A ReciprocalVector is the integer pair (nx, ny) of nx·b1 + ny·b2. The
// Basis of truncation order G holds every pair with |nx|,|ny| ≤ G exactly
// once, in row-major order (nx outer, ny inner), so index i names the same
// vector for the coupling matrix and for every kinetic operator.
//
// High-symmetry point tables are explicit per Kind (no global state):
//
//	square:      Γ(0,0) → X(½,0) → M(½,½) → Γ
//	triangular:  Γ(0,0) → M(½, 1/(2√3)) → K(⅓, 1/√3) → Γ
package lattice
