// SPDX-License-Identifier: MIT

package dielectric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pwe/lattice"
)

// MaxRadiusRatio is the exclusive upper bound on r/a: rods touch at 0.5.
const MaxRadiusRatio = 0.5

// Rod is a circular dielectric inclusion centred in the unit cell.
type Rod struct {
	Epsilon     float64 // relative permittivity εr ≥ 1; background is 1
	RadiusRatio float64 // r/a in (0, 0.5)
	Kernel      Kernel
}

// Validate reports ErrInvalidRod or ErrUnknownKernel.
func (r Rod) Validate() error {
	if math.IsNaN(r.Epsilon) || math.IsInf(r.Epsilon, 0) || r.Epsilon < 1 {
		return fmt.Errorf("%w: epsilon %v must be finite and >= 1", ErrInvalidRod, r.Epsilon)
	}
	if math.IsNaN(r.RadiusRatio) || r.RadiusRatio <= 0 || r.RadiusRatio >= MaxRadiusRatio {
		return fmt.Errorf("%w: r/a %v must lie in (0, %v)", ErrInvalidRod, r.RadiusRatio, MaxRadiusRatio)
	}
	if r.Kernel != KernelSinc && r.Kernel != KernelBessel {
		return fmt.Errorf("%w: %d", ErrUnknownKernel, int(r.Kernel))
	}

	return nil
}

// Model is a PermittivityModel: a Rod bound to a lattice.
// It is immutable and safe for concurrent use.
type Model struct {
	rod  Rod
	lat  lattice.Lattice
	fill float64
}

// NewModel validates rod and binds it to lat.
func NewModel(rod Rod, lat lattice.Lattice) (*Model, error) {
	if err := rod.Validate(); err != nil {
		return nil, err
	}
	if lat.CellArea <= 0 {
		return nil, fmt.Errorf("%w: %s", lattice.ErrUnsupportedLattice, lat.Kind)
	}

	return &Model{
		rod:  rod,
		lat:  lat,
		fill: math.Pi * rod.RadiusRatio * rod.RadiusRatio / lat.CellArea,
	}, nil
}

// Rod returns the bound rod.
func (m *Model) Rod() Rod { return m.rod }

// FillingFraction returns f = πr²/A_cell.
func (m *Model) FillingFraction() float64 { return m.fill }

// Average returns the cell-averaged permittivity εr·f + (1 − f).
func (m *Model) Average() float64 {
	return m.rod.Epsilon*m.fill + (1 - m.fill)
}

// Coefficient returns the Fourier coefficient of ε(r) at the reciprocal
// lattice difference d. The zero vector has its own branch, so there is no
// division by |G| = 0. The imaginary part is zero for a centred rod.
func (m *Model) Coefficient(d lattice.ReciprocalVector) complex128 {
	if d.IsZero() {
		return complex(m.Average(), 0)
	}

	return complex(m.at(m.lat.Vector(d).Norm()), 0)
}

// at evaluates the non-zero branch at Cartesian magnitude g > 0.
func (m *Model) at(g float64) float64 {
	contrast := (m.rod.Epsilon - 1) * 2 * m.fill
	r := m.rod.RadiusRatio
	switch m.rod.Kernel {
	case KernelBessel:
		return contrast * besselForm(2*math.Pi*g*r)
	default:
		return contrast * Sinc(g*r) / (math.Pi * g * g)
	}
}
