// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
)

// Lattice holds the primitive reciprocal vectors and unit-cell area of a Kind.
type Lattice struct {
	Kind     Kind
	B1, B2   Vec2    // primitive reciprocal vectors, units of 2π/a
	CellArea float64 // real-space unit cell area, units of a²
}

// New returns the Lattice for kind, or ErrUnsupportedLattice.
func New(kind Kind) (Lattice, error) {
	switch kind {
	case Square:
		return Lattice{
			Kind:     Square,
			B1:       Vec2{1, 0},
			B2:       Vec2{0, 1},
			CellArea: 1,
		}, nil
	case Triangular:
		return Lattice{
			Kind:     Triangular,
			B1:       Vec2{1, -1 / math.Sqrt(3)},
			B2:       Vec2{0, 2 / math.Sqrt(3)},
			CellArea: math.Sqrt(3) / 2,
		}, nil
	default:
		return Lattice{}, fmt.Errorf("%w: %s", ErrUnsupportedLattice, kind)
	}
}

// Vector returns the Cartesian reciprocal vector v.Nx·b1 + v.Ny·b2.
func (l Lattice) Vector(v ReciprocalVector) Vec2 {
	return l.B1.Scale(float64(v.Nx)).Add(l.B2.Scale(float64(v.Ny)))
}

// HighSymmetry returns the closed high-symmetry tour of kind.
//
//	square:      Γ, X, M, Γ
//	triangular:  Γ, M, K, Γ
//
// The returned slice is freshly allocated; callers may modify it.
func HighSymmetry(kind Kind) ([]Point, error) {
	switch kind {
	case Square:
		return []Point{
			{Label: "Γ", K: Vec2{0, 0}},
			{Label: "X", K: Vec2{0.5, 0}},
			{Label: "M", K: Vec2{0.5, 0.5}},
			{Label: "Γ", K: Vec2{0, 0}},
		}, nil
	case Triangular:
		s3 := math.Sqrt(3)
		return []Point{
			{Label: "Γ", K: Vec2{0, 0}},
			{Label: "M", K: Vec2{0.5, 0.5 / s3}},
			{Label: "K", K: Vec2{1.0 / 3, 1 / s3}},
			{Label: "Γ", K: Vec2{0, 0}},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLattice, kind)
	}
}
