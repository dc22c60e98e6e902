// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/pwe/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBasisCoverage checks size (2G+1)², uniqueness and full coverage.
func TestNewBasisCoverage(t *testing.T) {
	for _, order := range []int{0, 1, 2, 5} {
		b, err := lattice.NewBasis(order)
		require.NoError(t, err)
		require.Len(t, b, lattice.BasisSize(order))

		seen := make(map[lattice.ReciprocalVector]bool, len(b))
		for _, v := range b {
			assert.LessOrEqual(t, abs(v.Nx), order)
			assert.LessOrEqual(t, abs(v.Ny), order)
			assert.False(t, seen[v], "duplicate %v", v)
			seen[v] = true
		}
		assert.Len(t, seen, (2*order+1)*(2*order+1))
		assert.True(t, b[b.Center()].IsZero())
	}
}

// TestNewBasisOrder pins the row-major enumeration order.
func TestNewBasisOrder(t *testing.T) {
	b, err := lattice.NewBasis(1)
	require.NoError(t, err)
	want := lattice.Basis{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("basis order mismatch (-want +got):\n%s", diff)
	}

	again, err := lattice.NewBasis(1)
	require.NoError(t, err)
	require.Equal(t, b, again)
}

func TestNewBasisTrivialAndNegative(t *testing.T) {
	b, err := lattice.NewBasis(0)
	require.NoError(t, err)
	require.Equal(t, lattice.Basis{{0, 0}}, b)

	_, err = lattice.NewBasis(-1)
	require.ErrorIs(t, err, lattice.ErrNegativeOrder)
}

func TestParseKind(t *testing.T) {
	cases := map[string]lattice.Kind{
		"square":      lattice.Square,
		"SQUARE":      lattice.Square,
		" triangular": lattice.Triangular,
		"hexagonal":   lattice.Triangular,
	}
	for in, want := range cases {
		got, err := lattice.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := lattice.ParseKind("honeycomb")
	require.ErrorIs(t, err, lattice.ErrUnsupportedLattice)
}

func TestKindText(t *testing.T) {
	var k lattice.Kind
	require.NoError(t, k.UnmarshalText([]byte("triangular")))
	assert.Equal(t, lattice.Triangular, k)

	text, err := lattice.Square.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "square", string(text))

	_, err = lattice.Kind(9).MarshalText()
	require.ErrorIs(t, err, lattice.ErrUnsupportedLattice)
	assert.Equal(t, "Kind(9)", lattice.Kind(9).String())
}

// TestTriangularReciprocity checks a_i·b_j = δ_ij (in units of 2π) and the
// Brillouin-zone geometry of the triangular high-symmetry points.
func TestTriangularReciprocity(t *testing.T) {
	l, err := lattice.New(lattice.Triangular)
	require.NoError(t, err)
	a1 := lattice.Vec2{X: 1, Y: 0}
	a2 := lattice.Vec2{X: 0.5, Y: math.Sqrt(3) / 2}
	dot := func(u, v lattice.Vec2) float64 { return u.X*v.X + u.Y*v.Y }

	assert.InDelta(t, 1, dot(a1, l.B1), 1e-12)
	assert.InDelta(t, 0, dot(a1, l.B2), 1e-12)
	assert.InDelta(t, 0, dot(a2, l.B1), 1e-12)
	assert.InDelta(t, 1, dot(a2, l.B2), 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, l.CellArea, 1e-15)

	pts, err := lattice.HighSymmetry(lattice.Triangular)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	// M is half of the shortest reciprocal vector, K is a zone corner.
	assert.InDelta(t, l.Vector(lattice.ReciprocalVector{Nx: 1, Ny: 1}).Norm()/2, pts[1].K.Norm(), 1e-12)
	assert.InDelta(t, 2.0/3, pts[2].K.Norm(), 1e-12)
}

func TestSquareLattice(t *testing.T) {
	l, err := lattice.New(lattice.Square)
	require.NoError(t, err)
	g := l.Vector(lattice.ReciprocalVector{Nx: 3, Ny: -4})
	assert.Equal(t, lattice.Vec2{X: 3, Y: -4}, g)
	assert.Equal(t, 5.0, g.Norm())

	pts, err := lattice.HighSymmetry(lattice.Square)
	require.NoError(t, err)
	labels := make([]string, len(pts))
	for i, p := range pts {
		labels[i] = p.Label
	}
	assert.Equal(t, []string{"Γ", "X", "M", "Γ"}, labels)

	_, err = lattice.New(lattice.Kind(7))
	require.ErrorIs(t, err, lattice.ErrUnsupportedLattice)
	_, err = lattice.HighSymmetry(lattice.Kind(7))
	require.ErrorIs(t, err, lattice.ErrUnsupportedLattice)
}

func TestReciprocalVectorSub(t *testing.T) {
	d := lattice.ReciprocalVector{Nx: 2, Ny: -1}.Sub(lattice.ReciprocalVector{Nx: -1, Ny: 3})
	assert.Equal(t, lattice.ReciprocalVector{Nx: 3, Ny: -4}, d)
	assert.False(t, d.IsZero())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
