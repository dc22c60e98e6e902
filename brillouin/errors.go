// SPDX-License-Identifier: MIT

package brillouin

import "errors"

var (
	// ErrTooFewPoints indicates a path with fewer than two vertices.
	ErrTooFewPoints = errors.New("brillouin: path needs at least two points")

	// ErrBadSampleCount indicates a per-segment sample count below 1.
	ErrBadSampleCount = errors.New("brillouin: samples per segment must be >= 1")

	// ErrDegenerateSegment indicates two consecutive identical vertices,
	// which would produce duplicate adjacent k-points.
	ErrDegenerateSegment = errors.New("brillouin: consecutive path points coincide")

	// ErrNonFinitePoint indicates a vertex with a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("brillouin: path point is not finite")
)
