// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/pwe/bands"
	"github.com/katalvlaran/pwe/brillouin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type pathOutput struct {
	Labels   []string     `json:"k_path_labels"`
	Ticks    []int        `json:"ticks"`
	KPoints  [][2]float64 `json:"k_points"`
	Distance []float64    `json:"distance"`
}

func newPathCmd(a *app) *cobra.Command {
	var (
		lattice    string
		perSegment int
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the sampled k-path without solving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("lattice") {
				a.cfg.Job.Lattice = lattice
			}
			if cmd.Flags().Changed("k-points-per-segment") {
				a.cfg.Job.KPointsPerSegment = perSegment
			}
			params, err := a.cfg.Params()
			if err != nil {
				return err
			}

			var p brillouin.Path
			if params.Path != nil {
				p, err = brillouin.Interpolate(params.Path, params.PointsPerSegment)
			} else {
				p, err = brillouin.ForLattice(params.Lattice, params.PointsPerSegment)
			}
			if err != nil {
				return fmt.Errorf("%w: %w", bands.ErrInvalidParameter, err)
			}
			a.logger.Debug("path sampled", zap.Strings("labels", p.Labels), zap.Int("k_points", p.Len()))

			out := pathOutput{Labels: p.Labels, Ticks: p.Ticks, Distance: p.Distance}
			out.KPoints = make([][2]float64, p.Len())
			for i, k := range p.KPoints {
				out.KPoints[i] = [2]float64{k.X, k.Y}
			}

			return writeJSON(cmd.OutOrStdout(), out, pretty)
		},
	}
	cmd.Flags().StringVar(&lattice, "lattice", "", "lattice type: square or triangular")
	cmd.Flags().IntVarP(&perSegment, "k-points-per-segment", "k", 0, "samples per segment")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")

	return cmd
}
