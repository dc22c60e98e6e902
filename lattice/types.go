// SPDX-License-Identifier: MIT

package lattice

import "math"

// Vec2 is a Cartesian 2D vector in units of 2π/a.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v − w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns s·v.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{s * v.X, s * v.Y} }

// Norm2 returns |v|².
func (v Vec2) Norm2() float64 { return v.X*v.X + v.Y*v.Y }

// Norm returns |v|.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// ReciprocalVector is the integer pair (Nx, Ny) indexing Nx·b1 + Ny·b2.
type ReciprocalVector struct {
	Nx, Ny int
}

// Sub returns the integer difference v − w.
func (v ReciprocalVector) Sub(w ReciprocalVector) ReciprocalVector {
	return ReciprocalVector{Nx: v.Nx - w.Nx, Ny: v.Ny - w.Ny}
}

// IsZero reports whether v is the zero vector.
func (v ReciprocalVector) IsZero() bool { return v.Nx == 0 && v.Ny == 0 }

// Point is a labelled wavevector, typically a high-symmetry point.
type Point struct {
	Label string
	K     Vec2
}
