// SPDX-License-Identifier: MIT

package dielectric

import "errors"

var (
	// ErrInvalidRod indicates εr < 1, a non-finite εr, or r/a outside (0, 0.5).
	ErrInvalidRod = errors.New("dielectric: invalid rod parameters")

	// ErrUnknownKernel indicates an unrecognized Fourier kernel.
	ErrUnknownKernel = errors.New("dielectric: unknown kernel")

	// ErrEmptyBasis indicates Couple was given no plane waves.
	ErrEmptyBasis = errors.New("dielectric: empty basis")

	// ErrComplexCoupling indicates a coefficient with a non-negligible
	// imaginary part, which a real symmetric solver cannot represent.
	ErrComplexCoupling = errors.New("dielectric: coupling coefficient is not real")
)
