// SPDX-License-Identifier: MIT

// Package brillouin samples piecewise-linear paths through the Brillouin zone.
//
// Sampling policy:
//
//	Each segment P_s → P_{s+1} contributes n samples: P_s itself and n−1
//	interior points, excluding P_{s+1}. The final vertex of the last segment
//	is appended once. A path of V vertices therefore has n·(V−1)+1 k-points
//	and vertex i sits at k-index i·n (Path.Ticks). Γ-X-M-Γ with n = 20
//	gives 61 k-points with ticks 0, 20, 40, 60.
//
// Usage:
//
//	p, err := brillouin.ForLattice(lattice.Square, 16)
//	for i, k := range p.KPoints { ... }
package brillouin
