// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/pwe/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pwe",
		Short: "Plane-wave expansion band solver for 2D photonic crystals",
		Long: `pwe computes TM band structures of square and triangular lattices of
dielectric rods by the plane-wave expansion method.

Frequencies are normalized (ωa/2πc). Pass --a-mm to also get GHz.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "pwe.yaml", "job configuration file (missing file uses defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log solver stages at debug level")

	root.AddCommand(newBandsCmd(a), newPathCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("cmd", cmd.Name()))

	return nil
}
