// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pwe/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEigenvaluesSymTridiagonal checks the closed-form spectrum 2−√2, 2, 2+√2
// of the 1D discrete Laplacian.
func TestEigenvaluesSymTridiagonal(t *testing.T) {
	a := mustDenseFrom(t, 3, 3,
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
	)
	vals, err := matrix.EigenvaluesSym(a)
	require.NoError(t, err)
	want := []float64{2 - math.Sqrt2, 2, 2 + math.Sqrt2}
	require.Len(t, vals, 3)
	for i := range want {
		assert.InDelta(t, want[i], vals[i], 1e-10)
	}
}

// TestEigenvaluesSymRandomSPD checks ordering, positivity and trace on a
// random SPD matrix.
func TestEigenvaluesSymRandomSPD(t *testing.T) {
	a := randomSPD(t, 16, 42)

	vals, err := matrix.EigenvaluesSym(a)
	require.NoError(t, err)
	require.Len(t, vals, 16)
	assert.Greater(t, vals[0], 0.0)
	for i := 1; i < len(vals); i++ {
		assert.LessOrEqual(t, vals[i-1], vals[i])
	}

	// trace is preserved by similarity transforms
	trace, sum := 0.0, 0.0
	for i := 0; i < 16; i++ {
		trace += a.RawRowMajor()[i*16+i]
		sum += vals[i]
	}
	assert.InDelta(t, trace, sum, 1e-9)
}

func TestEigenvaluesSymTrivialInputs(t *testing.T) {
	vals, err := matrix.EigenvaluesSym(mustDenseFrom(t, 1, 1, 5))
	require.NoError(t, err)
	require.Equal(t, []float64{5}, vals)

	vals, err = matrix.EigenvaluesSym(mustDenseFrom(t, 2, 2, 0, 0, 0, 0))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, vals)

	vals, err = matrix.EigenvaluesSym(hide{mustDenseFrom(t, 2, 2, 3, 0, 0, 1)})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, vals)
}

func TestEigenvaluesSymErrors(t *testing.T) {
	_, err := matrix.EigenvaluesSym(mustDenseFrom(t, 2, 2, 1, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = matrix.EigenvaluesSym(mustDenseFrom(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.EigenvaluesSym(mustDenseFrom(t, 2, 2, math.NaN(), 0, 0, 1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.EigenvaluesSym(randomSPD(t, 20, 3), matrix.WithMaxSweeps(1))
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}
