// SPDX-License-Identifier: MIT

// Package units converts normalized frequencies ωa/2πc to and from GHz for
// a lattice constant given in millimetres.
package units

import (
	"errors"
	"fmt"
	"math"
)

// C0 is the speed of light in vacuum, m/s.
const C0 = 299_792_458.0

// ErrLatticeConstant indicates a lattice constant that is not finite and positive.
var ErrLatticeConstant = errors.New("units: lattice constant must be finite and > 0")

func checkA(aMM float64) error {
	if math.IsNaN(aMM) || math.IsInf(aMM, 0) || aMM <= 0 {
		return fmt.Errorf("%w: a = %v mm", ErrLatticeConstant, aMM)
	}

	return nil
}

// NormalizedFrequency returns a/λ = a·f/c0 for a in mm and f in GHz.
func NormalizedFrequency(aMM, fGHz float64) (float64, error) {
	if err := checkA(aMM); err != nil {
		return 0, err
	}

	return aMM * 1e-3 * fGHz * 1e9 / C0, nil
}

// GHz is the inverse of NormalizedFrequency.
func GHz(aMM, fNorm float64) (float64, error) {
	if err := checkA(aMM); err != nil {
		return 0, err
	}

	return fNorm * C0 / (aMM * 1e-3) / 1e9, nil
}

// TableGHz converts every entry of a band table. The input is not modified.
func TableGHz(freqs [][]float64, aMM float64) ([][]float64, error) {
	if err := checkA(aMM); err != nil {
		return nil, err
	}
	scale := C0 / (aMM * 1e-3) / 1e9
	out := make([][]float64, len(freqs))
	for k, row := range freqs {
		out[k] = make([]float64, len(row))
		for b, v := range row {
			out[k][b] = v * scale
		}
	}

	return out, nil
}
