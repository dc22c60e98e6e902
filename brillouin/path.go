// SPDX-License-Identifier: MIT

package brillouin

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pwe/lattice"
	"gonum.org/v1/gonum/floats"
)

// Path is a sampled k-path.
type Path struct {
	// Vertices are the input high-symmetry points, in order.
	Vertices []lattice.Point
	// Labels holds Vertices[i].Label; convenient for axis labelling.
	Labels []string
	// KPoints are the sampled wavevectors, units of 2π/a.
	KPoints []lattice.Vec2
	// Ticks[i] is the k-index of Vertices[i].
	Ticks []int
	// Distance[j] is the cumulative arc length up to KPoints[j].
	Distance []float64
}

// Len returns the number of k-points.
func (p Path) Len() int { return len(p.KPoints) }

// Interpolate samples points with perSegment samples per segment.
//
// Implementation:
//   - Stage 1: validate (≥ 2 points, n ≥ 1, finite, no zero-length segment).
//   - Stage 2: per segment, floats.Span the X and Y coordinates over n+1 nodes
//     and keep the first n; append the last vertex once.
//   - Stage 3: accumulate arc length.
//
// Errors:
//   - ErrTooFewPoints, ErrBadSampleCount, ErrNonFinitePoint, ErrDegenerateSegment.
//
// Complexity:
//   - Time O(n·V), Space O(n·V).
func Interpolate(points []lattice.Point, perSegment int) (Path, error) {
	if len(points) < 2 {
		return Path{}, ErrTooFewPoints
	}
	if perSegment < 1 {
		return Path{}, ErrBadSampleCount
	}
	for i, p := range points {
		if !isFinite(p.K.X) || !isFinite(p.K.Y) {
			return Path{}, fmt.Errorf("point %d (%s): %w", i, p.Label, ErrNonFinitePoint)
		}
		if i > 0 && p.K == points[i-1].K {
			return Path{}, fmt.Errorf("points %d and %d: %w", i-1, i, ErrDegenerateSegment)
		}
	}

	total := perSegment*(len(points)-1) + 1
	out := Path{
		Vertices: append([]lattice.Point(nil), points...),
		Labels:   make([]string, len(points)),
		KPoints:  make([]lattice.Vec2, 0, total),
		Ticks:    make([]int, len(points)),
		Distance: make([]float64, 0, total),
	}
	xs := make([]float64, perSegment+1)
	ys := make([]float64, perSegment+1)
	for s := 0; s < len(points)-1; s++ {
		a, b := points[s].K, points[s+1].K
		floats.Span(xs, a.X, b.X)
		floats.Span(ys, a.Y, b.Y)
		for j := 0; j < perSegment; j++ {
			out.KPoints = append(out.KPoints, lattice.Vec2{X: xs[j], Y: ys[j]})
		}
	}
	out.KPoints = append(out.KPoints, points[len(points)-1].K)

	for i, p := range points {
		out.Labels[i] = p.Label
		out.Ticks[i] = i * perSegment
	}

	dist := 0.0
	for j, k := range out.KPoints {
		if j > 0 {
			dist += k.Sub(out.KPoints[j-1]).Norm()
		}
		out.Distance = append(out.Distance, dist)
	}

	return out, nil
}

// ForLattice samples the standard high-symmetry tour of kind.
// Errors: lattice.ErrUnsupportedLattice plus those of Interpolate.
func ForLattice(kind lattice.Kind, perSegment int) (Path, error) {
	pts, err := lattice.HighSymmetry(kind)
	if err != nil {
		return Path{}, err
	}

	return Interpolate(pts, perSegment)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
