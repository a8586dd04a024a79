package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Operands.Left, 3)
	require.Equal(t, DefaultPower, cfg.Power)
	require.True(t, cfg.Style.Color)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	body := `
power: 3
render:
  delimiter: ", "
  precision: 4
  brackets: true
style:
  color: false
operands:
  left:  [[1, 2], [3, 4]]
  right: [[5, 6], [7, 8]]
  special: [[4, 6], [3, 8]]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Power)
	require.Equal(t, ", ", cfg.Render.Delimiter)
	require.True(t, cfg.Render.Brackets)
	require.False(t, cfg.Style.Color)
	require.Equal(t, [][]float64{{4, 6}, {3, 8}}, cfg.Operands.Special)
	// Untouched fields keep their defaults.
	require.Equal(t, DefaultModulus, cfg.Modulus)
	require.Equal(t, DefaultScalar, cfg.Scalar)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("power: [nope"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)

	mixed := filepath.Join(t.TempDir(), "mixed.yaml")
	require.NoError(t, os.WriteFile(mixed, []byte("operands:\n  right: [[1, 2], [3, 4]]\n"), 0o644))
	_, err = Load(mixed)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty left", func(c *Config) { c.Operands.Left = nil }},
		{"ragged special", func(c *Config) { c.Operands.Special[1] = []float64{1} }},
		{"empty delimiter", func(c *Config) { c.Render.Delimiter = "" }},
		{"bad precision", func(c *Config) { c.Render.Precision = -5 }},
		{"negative power", func(c *Config) { c.Power = -1 }},
		{"zero scalar", func(c *Config) { c.Scalar = 0 }},
		{"zero modulus", func(c *Config) { c.Modulus = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Power = 5
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
