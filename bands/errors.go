// SPDX-License-Identifier: MIT

package bands

import (
	"context"
	"errors"

	"github.com/katalvlaran/pwe/lattice"
)

var (
	// ErrInvalidParameter indicates an out-of-range input: εr, r/a,
	// truncation order, band count, path or sample count.
	ErrInvalidParameter = errors.New("bands: invalid parameter")

	// ErrNumericalInstability indicates a singular or indefinite coupling
	// matrix, an eigensolver failure, a complex coupling coefficient or a
	// significantly negative ω².
	ErrNumericalInstability = errors.New("bands: numerical instability")

	// ErrUnsupportedLattice indicates a lattice other than square or
	// triangular. It is the lattice package sentinel.
	ErrUnsupportedLattice = lattice.ErrUnsupportedLattice
)

// Stable error codes returned by Kind.
const (
	CodeInvalidParameter     = "invalid_parameter"
	CodeNumericalInstability = "numerical_instability"
	CodeUnsupportedLattice   = "unsupported_lattice"
	CodeCanceled             = "canceled"
	CodeInternal             = "internal"
)

// Kind classifies err into one of the Code constants, or "" for nil.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedLattice):
		return CodeUnsupportedLattice
	case errors.Is(err, ErrInvalidParameter):
		return CodeInvalidParameter
	case errors.Is(err, ErrNumericalInstability):
		return CodeNumericalInstability
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCanceled
	default:
		return CodeInternal
	}
}
