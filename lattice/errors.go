// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrUnsupportedLattice indicates an unrecognized lattice keyword or Kind.
	ErrUnsupportedLattice = errors.New("lattice: unsupported lattice type")

	// ErrNegativeOrder indicates a negative truncation order.
	ErrNegativeOrder = errors.New("lattice: truncation order must be >= 0")
)
