// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels MUST return these sentinels (optionally wrapped with the
// operation tag) and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0)
	// or when a backing slice does not match the requested shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixEigenFailed indicates that the Jacobi routine failed to converge
	// within the configured number of sweeps.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSingular is returned when no usable pivot exists during inversion.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags for unified error wrapping.
const (
	opAt         = "At"
	opSymmetrize = "Symmetrize"
	opInverse    = "Inverse"
	opEigen      = "EigenvaluesSym"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
