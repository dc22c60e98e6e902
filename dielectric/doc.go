// SPDX-License-Identifier: MIT

// Package dielectric turns a circular rod in a unit cell into plane-wave
// coupling coefficients.
//
// What & Why:
//
//	The plane-wave expansion needs ε(G − G') for every pair of basis vectors.
//	For a single rod of permittivity εr and radius r (lattice constant a = 1)
//	in a background of permittivity 1, with filling fraction f = πr²/A_cell:
//
//	  ε(0) = εr·f + (1 − f)                         (cell average)
//	  ε(G) = (εr − 1)·2f·sinc(|G|r) / (π|G|²)        KernelSinc (default)
//	  ε(G) = (εr − 1)·2f·J1(2π|G|r) / (2π|G|r)       KernelBessel
//
//	sinc is the normalized form, sinc(x) = sin(πx)/(πx), sinc(0) = 1; |G| is
//	the Cartesian magnitude in units of 2π/a, which for the square lattice
//	is sqrt(Δnx² + Δny²). KernelBessel is the exact Fourier transform of a
//	uniform disk. Mixing sinc conventions shifts every band by a factor
//	tied to π, so Sinc is the only sinc used by this package.
//
//	A centred rod is real and even in G, so every coefficient is real and
//	the coupling matrix is symmetric. Couple still checks the imaginary part
//	of each coefficient before dropping it.
package dielectric
