// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/pwe/bands"
	"github.com/katalvlaran/pwe/units"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// jobFlags override the job section of the configuration when set.
type jobFlags struct {
	lattice    string
	epsilon    float64
	rOverA     float64
	order      int
	numBands   int
	perSegment int
	kernel     string
	backend    string
	workers    int
	aMM        float64
	pretty     bool
}

func (f *jobFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.lattice, "lattice", "", "lattice type: square or triangular")
	fs.Float64Var(&f.epsilon, "epsilon", 0, "rod permittivity εr (>= 1)")
	fs.Float64Var(&f.rOverA, "r-over-a", 0, "rod radius over lattice constant, in (0, 0.5)")
	fs.IntVarP(&f.order, "order", "G", 0, "truncation order G; (2G+1)² plane waves")
	fs.IntVarP(&f.numBands, "num-bands", "n", 0, "number of bands to report")
	fs.IntVarP(&f.perSegment, "k-points-per-segment", "k", 0, "samples per k-path segment")
	fs.StringVar(&f.kernel, "kernel", "", "Fourier kernel: sinc or bessel")
	fs.StringVar(&f.backend, "backend", "", "eigensolver: lapack or jacobi")
	fs.IntVarP(&f.workers, "workers", "j", 0, "concurrent k-points (0 = GOMAXPROCS)")
	fs.Float64Var(&f.aMM, "a-mm", 0, "lattice constant in mm; adds frequencies_ghz")
	fs.BoolVar(&f.pretty, "pretty", false, "indent JSON output")
}

// apply copies every changed flag into the configuration.
func (f *jobFlags) apply(cmd *cobra.Command, a *app) {
	fs := cmd.Flags()
	job, solver := &a.cfg.Job, &a.cfg.Solver
	if fs.Changed("lattice") {
		job.Lattice = f.lattice
	}
	if fs.Changed("epsilon") {
		job.Epsilon = f.epsilon
	}
	if fs.Changed("r-over-a") {
		job.ROverA = f.rOverA
	}
	if fs.Changed("order") {
		job.TruncationOrder = f.order
	}
	if fs.Changed("num-bands") {
		job.NumBands = f.numBands
	}
	if fs.Changed("k-points-per-segment") {
		job.KPointsPerSegment = f.perSegment
	}
	if fs.Changed("kernel") {
		job.Kernel = f.kernel
	}
	if fs.Changed("backend") {
		solver.Backend = f.backend
	}
	if fs.Changed("workers") {
		solver.Workers = f.workers
	}
	if fs.Changed("a-mm") {
		job.AMM = f.aMM
	}
}

// bandsOutput is the Table plus the optional GHz view.
type bandsOutput struct {
	*bands.Table
	AMM            float64     `json:"a_mm,omitempty"`
	FrequenciesGHz [][]float64 `json:"frequencies_ghz,omitempty"`
}

func newBandsCmd(a *app) *cobra.Command {
	f := &jobFlags{}
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Compute the band structure along the high-symmetry path",
		Long: `Computes the lowest --num-bands TM frequencies at every k-point of the
lattice's high-symmetry tour (Γ-X-M-Γ or Γ-M-K-Γ) or of the path given in the
configuration file, and prints them as JSON:

  {"k_path_labels": [...], "frequencies": [[...], ...], ...}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.apply(cmd, a)
			return runBands(cmd, a, f.pretty)
		},
	}
	f.register(cmd)

	return cmd
}

func runBands(cmd *cobra.Command, a *app, pretty bool) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", bands.ErrInvalidParameter, err)
	}
	params, err := a.cfg.Params()
	if err != nil {
		return err
	}
	opts, err := a.cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, bands.WithLogger(a.logger))

	start := time.Now()
	tbl, err := bands.Solve(cmd.Context(), params, opts...)
	if err != nil {
		a.logger.Error("band solve failed", zap.String("kind", bands.Kind(err)), zap.Error(err))
		return err
	}
	a.logger.Info("bands solved",
		zap.Int("k_count", tbl.KCount),
		zap.Int("num_bands", tbl.NumBands),
		zap.Duration("took", time.Since(start)),
	)
	logGaps(a.logger, tbl)

	out := bandsOutput{Table: tbl}
	if a.cfg.Job.AMM > 0 {
		if out.FrequenciesGHz, err = units.TableGHz(tbl.Frequencies, a.cfg.Job.AMM); err != nil {
			return fmt.Errorf("%w: %w", bands.ErrInvalidParameter, err)
		}
		out.AMM = a.cfg.Job.AMM
	}

	return writeJSON(cmd.OutOrStdout(), out, pretty)
}

// logGaps reports every complete gap between consecutive bands.
func logGaps(log *zap.Logger, tbl *bands.Table) {
	for b := 0; b+1 < tbl.NumBands; b++ {
		_, top, err := tbl.Range(b)
		if err != nil {
			return
		}
		bottom, _, err := tbl.Range(b + 1)
		if err != nil {
			return
		}
		if bottom > top {
			log.Info("band gap",
				zap.Int("lower_band", b+1),
				zap.Float64("from", top),
				zap.Float64("to", bottom),
				zap.Float64("midgap_ratio", 2*(bottom-top)/(bottom+top)),
			)
		}
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(v)
}
