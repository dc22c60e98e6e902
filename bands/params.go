// SPDX-License-Identifier: MIT

package bands

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pwe/dielectric"
	"github.com/katalvlaran/pwe/lattice"
)

// MaxOrder caps the truncation order: (2·30+1)² = 3721 plane waves.
const MaxOrder = 30

// Params describes one band-structure job.
type Params struct {
	Lattice     lattice.Kind
	Epsilon     float64 // rod permittivity εr ≥ 1
	RadiusRatio float64 // r/a in (0, 0.5)
	Order       int     // truncation order G ≥ 0
	NumBands    int     // 1..(2G+1)²

	// Path lists the high-symmetry vertices; nil selects the standard tour
	// of Lattice (Γ-X-M-Γ or Γ-M-K-Γ).
	Path             []lattice.Point
	PointsPerSegment int

	Kernel dielectric.Kernel
}

// Validate reports the first violated constraint. Lattice problems wrap
// ErrUnsupportedLattice, everything else wraps ErrInvalidParameter.
func (p Params) Validate() error {
	if _, err := lattice.New(p.Lattice); err != nil {
		return err
	}
	rod := p.rod()
	if err := rod.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if p.Order < 0 || p.Order > MaxOrder {
		return fmt.Errorf("%w: truncation order %d outside [0, %d]", ErrInvalidParameter, p.Order, MaxOrder)
	}
	if m := lattice.BasisSize(p.Order); p.NumBands < 1 || p.NumBands > m {
		return fmt.Errorf("%w: num_bands %d outside [1, %d]", ErrInvalidParameter, p.NumBands, m)
	}
	if p.PointsPerSegment < 1 {
		return fmt.Errorf("%w: k_points_per_segment %d < 1", ErrInvalidParameter, p.PointsPerSegment)
	}
	if p.Path != nil && len(p.Path) < 2 {
		return fmt.Errorf("%w: k-path has %d points, need >= 2", ErrInvalidParameter, len(p.Path))
	}
	for i, pt := range p.Path {
		if math.IsNaN(pt.K.X) || math.IsNaN(pt.K.Y) || math.IsInf(pt.K.X, 0) || math.IsInf(pt.K.Y, 0) {
			return fmt.Errorf("%w: k-path point %d (%s) is not finite", ErrInvalidParameter, i, pt.Label)
		}
	}

	return nil
}

func (p Params) rod() dielectric.Rod {
	return dielectric.Rod{Epsilon: p.Epsilon, RadiusRatio: p.RadiusRatio, Kernel: p.Kernel}
}
