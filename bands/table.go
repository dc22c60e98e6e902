// SPDX-License-Identifier: MIT

package bands

import (
	"fmt"

	"github.com/katalvlaran/pwe/brillouin"
	"gonum.org/v1/gonum/floats"
)

// Table is the band structure of one solve. Frequencies[k][b] is band b at
// k-point k in units of ωa/2πc; each row is ascending. Band indices are per
// k-point, so a band label can swap between neighbouring rows where bands
// cross.
type Table struct {
	Labels      []string     `json:"k_path_labels"`
	Frequencies [][]float64  `json:"frequencies"`
	KCount      int          `json:"k_count"`
	NumBands    int          `json:"num_bands"`
	Ticks       []int        `json:"ticks"`
	KPoints     [][2]float64 `json:"k_points"`
	Distance    []float64    `json:"distance"`
}

func newTable(p brillouin.Path, rows [][]float64, numBands int) *Table {
	t := &Table{
		Labels:      append([]string(nil), p.Labels...),
		Frequencies: rows,
		KCount:      len(rows),
		NumBands:    numBands,
		Ticks:       append([]int(nil), p.Ticks...),
		KPoints:     make([][2]float64, len(p.KPoints)),
		Distance:    append([]float64(nil), p.Distance...),
	}
	for i, k := range p.KPoints {
		t.KPoints[i] = [2]float64{k.X, k.Y}
	}

	return t
}

// Band returns column b: the b-th lowest frequency at every k-point.
func (t *Table) Band(b int) ([]float64, error) {
	if b < 0 || b >= t.NumBands {
		return nil, fmt.Errorf("%w: band %d outside [0, %d)", ErrInvalidParameter, b, t.NumBands)
	}
	out := make([]float64, len(t.Frequencies))
	for k, row := range t.Frequencies {
		out[k] = row[b]
	}

	return out, nil
}

// Range returns the lowest and highest frequency of band b over the path.
// A gap between bands b and b+1 exists when Range(b+1).min > Range(b).max.
func (t *Table) Range(b int) (lo, hi float64, err error) {
	col, err := t.Band(b)
	if err != nil {
		return 0, 0, err
	}
	if len(col) == 0 {
		return 0, 0, nil
	}

	return floats.Min(col), floats.Max(col), nil
}
