// SPDX-License-Identifier: MIT

package matrix

// Matrix is a read-only view of a two-dimensional array of float64 values.
// Kernels accept the interface and take a flat fast path for *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (float64, error)
}
