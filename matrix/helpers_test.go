// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Force the interface (non-*Dense) fallback paths where needed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pwe/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so kernels under test take their fallback path.
type hide struct{ matrix.Matrix }

// mustDenseFrom allocates an r×c *Dense from row-major data or fails the test.
func mustDenseFrom(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// randomSPD returns a deterministic symmetric positive-definite n×n matrix
// built as BᵀB + n·I from a seeded generator.
func randomSPD(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := make([]float64, n*n)
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += b[k*n+i] * b[k*n+j]
			}
			a[i*n+j] = sum
		}
		a[i*n+i] += float64(n)
	}

	return mustDenseFrom(tb, n, n, a...)
}

// mul returns the product a·b of two square row-major matrices.
func mul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	n := a.Rows()
	ad, bd := a.RawRowMajor(), b.RawRowMajor()
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				out[i*n+j] += ad[i*n+k] * bd[k*n+j]
			}
		}
	}

	return mustDenseFrom(tb, n, n, out...)
}

// requireIdentity asserts m ≈ I element-wise within tol.
func requireIdentity(tb testing.TB, m *matrix.Dense, tol float64) {
	tb.Helper()
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, err := m.At(i, j)
			require.NoError(tb, err)
			require.InDelta(tb, want, got, tol, "entry (%d,%d)", i, j)
		}
	}
}
