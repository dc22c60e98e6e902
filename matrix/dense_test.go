// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pwe/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseFrom checks copy semantics and length validation.
func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 99 // must not leak into m

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRowsCols verifies the reported dimensions.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Len(t, m.RawRowMajor(), 12)
}

// TestAtOutOfBounds ensures At() returns ErrOutOfRange on invalid access.
func TestAtOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestIdentity checks NewIdentity layout and shape validation.
func TestIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1}, id.RawRowMajor())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
