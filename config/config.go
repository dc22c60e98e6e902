// SPDX-License-Identifier: MIT

// Package config loads band-structure jobs from YAML.
//
// A missing file yields DefaultConfig. Environment variables PWE_LOG_LEVEL
// and PWE_WORKERS override the file in both cases.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pwe/bands"
	"github.com/katalvlaran/pwe/dielectric"
	"github.com/katalvlaran/pwe/lattice"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvLogLevel = "PWE_LOG_LEVEL"
	EnvWorkers  = "PWE_WORKERS"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk job description.
type Config struct {
	Job     JobConfig     `yaml:"job"`
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
}

// JobConfig mirrors the band request: structure, truncation and k-path.
type JobConfig struct {
	Lattice           string      `yaml:"lattice"` // square, triangular
	Epsilon           float64     `yaml:"epsilon"`
	ROverA            float64     `yaml:"r_over_a"`
	TruncationOrder   int         `yaml:"truncation_order"`
	NumBands          int         `yaml:"num_bands"`
	KPointsPerSegment int         `yaml:"k_points_per_segment"`
	Kernel            string      `yaml:"kernel"` // sinc, bessel
	Path              []PathPoint `yaml:"path,omitempty"`
	AMM               float64     `yaml:"a_mm,omitempty"` // lattice constant; 0 disables GHz output
}

// PathPoint is one vertex of a custom k-path, Cartesian in units of 2π/a.
type PathPoint struct {
	Label string     `yaml:"label"`
	K     [2]float64 `yaml:"k,flow"`
}

// SolverConfig selects the backend and the pool size.
type SolverConfig struct {
	Backend   string  `yaml:"backend"`   // lapack, jacobi
	Workers   int     `yaml:"workers"`   // 0 = GOMAXPROCS
	Tolerance float64 `yaml:"tolerance"` // 0 = bands.DefaultTolerance
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the reference job: εr = 8.9 rods with r/a = 0.2 on
// a square lattice, G = 5, 8 bands, 16 k-points per segment.
func DefaultConfig() *Config {
	return &Config{
		Job: JobConfig{
			Lattice:           lattice.Square.String(),
			Epsilon:           8.9,
			ROverA:            0.2,
			TruncationOrder:   5,
			NumBands:          8,
			KPointsPerSegment: 16,
			Kernel:            dielectric.KernelSinc.String(),
		},
		Solver: SolverConfig{
			Backend: "lapack",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over DefaultConfig and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if raw := os.Getenv(EnvWorkers); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvWorkers, raw, err)
		}
		c.Solver.Workers = n
	}

	return nil
}

// Validate checks the fields config owns: keywords, pool size, logging.
// Numeric job ranges are checked by bands.Params.Validate.
func (c *Config) Validate() error {
	if _, err := lattice.ParseKind(c.Job.Lattice); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.kernel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Eigensolver(); err != nil {
		return err
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfig, c.Solver.Workers)
	}
	if t := c.Solver.Tolerance; math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("%w: tolerance %v < 0", ErrInvalidConfig, c.Solver.Tolerance)
	}
	if c.Job.AMM < 0 {
		return fmt.Errorf("%w: a_mm %v < 0", ErrInvalidConfig, c.Job.AMM)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("%w: logging format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// kernel parses job.kernel; an unset key selects the sinc kernel.
func (c *Config) kernel() (dielectric.Kernel, error) {
	if strings.TrimSpace(c.Job.Kernel) == "" {
		return dielectric.KernelSinc, nil
	}

	return dielectric.ParseKernel(c.Job.Kernel)
}

// Params converts the job section into solver parameters.
func (c *Config) Params() (bands.Params, error) {
	kind, err := lattice.ParseKind(c.Job.Lattice)
	if err != nil {
		return bands.Params{}, err
	}
	kernel, err := c.kernel()
	if err != nil {
		return bands.Params{}, fmt.Errorf("%w: %w", bands.ErrInvalidParameter, err)
	}
	p := bands.Params{
		Lattice:          kind,
		Epsilon:          c.Job.Epsilon,
		RadiusRatio:      c.Job.ROverA,
		Order:            c.Job.TruncationOrder,
		NumBands:         c.Job.NumBands,
		PointsPerSegment: c.Job.KPointsPerSegment,
		Kernel:           kernel,
	}
	if len(c.Job.Path) > 0 {
		p.Path = make([]lattice.Point, len(c.Job.Path))
		for i, pt := range c.Job.Path {
			p.Path[i] = lattice.Point{Label: pt.Label, K: lattice.Vec2{X: pt.K[0], Y: pt.K[1]}}
		}
	}

	return p, nil
}

// Eigensolver maps Solver.Backend to a bands backend.
func (c *Config) Eigensolver() (bands.Eigensolver, error) {
	switch strings.ToLower(c.Solver.Backend) {
	case "lapack", "":
		return bands.LAPACK(), nil
	case "jacobi":
		return bands.Jacobi(), nil
	default:
		return nil, fmt.Errorf("%w: backend %q", ErrInvalidConfig, c.Solver.Backend)
	}
}

// Options returns the bands options implied by the solver section.
func (c *Config) Options() ([]bands.Option, error) {
	e, err := c.Eigensolver()
	if err != nil {
		return nil, err
	}
	opts := []bands.Option{bands.WithEigensolver(e)}
	if c.Solver.Workers > 0 {
		opts = append(opts, bands.WithWorkers(c.Solver.Workers))
	}
	if c.Solver.Tolerance > 0 {
		opts = append(opts, bands.WithTolerance(c.Solver.Tolerance))
	}

	return opts, nil
}
