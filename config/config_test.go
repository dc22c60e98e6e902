// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pwe/bands"
	"github.com/katalvlaran/pwe/dielectric"
	"github.com/katalvlaran/pwe/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, lattice.Square, p.Lattice)
	assert.Equal(t, 8, p.NumBands)
	assert.Equal(t, 16, p.PointsPerSegment)
	assert.Equal(t, dielectric.KernelSinc, p.Kernel)
	assert.Nil(t, p.Path)
	require.NoError(t, p.Validate())
}

func TestEmptyKernelSelectsSinc(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Job.Kernel = ""
	require.NoError(t, cfg.Validate())

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, dielectric.KernelSinc, p.Kernel)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvWorkers, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAML(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvWorkers, "")

	path := filepath.Join(t.TempDir(), "job.yaml")
	body := `
job:
  lattice: triangular
  epsilon: 12
  r_over_a: 0.3
  truncation_order: 4
  num_bands: 6
  kernel: bessel
  path:
    - {label: Γ, k: [0, 0]}
    - {label: M, k: [0.5, 0.2886751345948129]}
solver:
  backend: jacobi
  workers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 16, cfg.Job.KPointsPerSegment, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Logging.Format)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, lattice.Triangular, p.Lattice)
	assert.Equal(t, 12.0, p.Epsilon)
	assert.Equal(t, dielectric.KernelBessel, p.Kernel)
	require.Len(t, p.Path, 2)
	assert.Equal(t, "M", p.Path[1].Label)
	assert.InDelta(t, 0.2886751345948129, p.Path[1].K.Y, 1e-15)

	e, err := cfg.Eigensolver()
	require.NoError(t, err)
	assert.Equal(t, "jacobi", e.Name())
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("job: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("level and workers", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvWorkers, "3")

		cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 3, cfg.Solver.Workers)
	})

	t.Run("bad workers", func(t *testing.T) {
		t.Setenv(EnvWorkers, "many")

		cfg := DefaultConfig()
		assert.ErrorIs(t, cfg.applyEnvOverrides(), ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"lattice":   func(c *Config) { c.Job.Lattice = "cubic" },
		"kernel":    func(c *Config) { c.Job.Kernel = "gauss" },
		"backend":   func(c *Config) { c.Solver.Backend = "cuda" },
		"workers":   func(c *Config) { c.Solver.Workers = -1 },
		"tolerance": func(c *Config) { c.Solver.Tolerance = -1e-9 },
		"a_mm":      func(c *Config) { c.Job.AMM = -2 },
		"format":    func(c *Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParamsUnsupportedLattice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Job.Lattice = "cubic"
	_, err := cfg.Params()
	assert.ErrorIs(t, err, bands.ErrUnsupportedLattice)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvWorkers, "")

	cfg := DefaultConfig()
	cfg.Job.Path = []PathPoint{{Label: "X", K: [2]float64{0.5, 0}}, {Label: "M", K: [2]float64{0.5, 0.5}}}
	cfg.Job.AMM = 10
	path := filepath.Join(t.TempDir(), "nested", "job.yaml")
	require.NoError(t, cfg.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
