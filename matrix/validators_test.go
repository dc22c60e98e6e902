// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pwe/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(mustDenseFrom(t, 1, 1, 0)))
}

func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquare(mustDenseFrom(t, 1, 2, 0, 0)), matrix.ErrNonSquare)
	assert.NoError(t, matrix.ValidateSquare(mustDenseFrom(t, 2, 2, 0, 0, 0, 0)))
}

func TestValidateFinite(t *testing.T) {
	assert.NoError(t, matrix.ValidateFinite(mustDenseFrom(t, 1, 2, 1, 2)))
	assert.ErrorIs(t, matrix.ValidateFinite(mustDenseFrom(t, 1, 2, 1, math.NaN())), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite(hide{mustDenseFrom(t, 1, 2, math.Inf(-1), 0)}), matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	sym := mustDenseFrom(t, 2, 2, 1, 2, 2, 1)
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	skew := mustDenseFrom(t, 2, 2, 1, 2, 2.1, 1)
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, 0.05), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(skew, 0.2))
	require.ErrorIs(t, matrix.ValidateSymmetric(mustDenseFrom(t, 1, 2, 0, 0), 1), matrix.ErrNonSquare)
}
