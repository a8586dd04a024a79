// SPDX-License-Identifier: MIT

// Package config holds the demo configuration: operand matrices, scalar
// arguments and rendering choices. Defaults reproduce the classic operator
// walkthrough; a YAML file may override any subset of fields.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used by DefaultConfig and kept for fields a YAML file leaves out.
const (
	// DefaultDelimiter separates elements in rendered rows.
	DefaultDelimiter = " "
	// DefaultPrecision selects the shortest %g form.
	DefaultPrecision = -1
	// DefaultPower is the exponent of the power step.
	DefaultPower = 2
	// DefaultScalar is the right-hand scalar for multiply and divide.
	DefaultScalar = 2.0
	// DefaultLeftScale is the left-hand scalar for multiply.
	DefaultLeftScale = 3.0
	// DefaultModulus is the integer modulus for the modulo steps.
	DefaultModulus = 3
	// DefaultColor enables styled headings.
	DefaultColor = true
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full demo configuration. Validate rejects a zero Scalar or
// Modulus and an empty Delimiter, so start from DefaultConfig rather than a literal.
type Config struct {
	Render    RenderConfig   `yaml:"render"`
	Style     StyleConfig    `yaml:"style"`
	Operands  OperandsConfig `yaml:"operands"`
	Power     int            `yaml:"power"`
	Scalar    float64        `yaml:"scalar"`
	LeftScale float64        `yaml:"left_scale"`
	Modulus   int            `yaml:"modulus"`
}

// RenderConfig maps onto the matrix render options.
type RenderConfig struct {
	Delimiter string `yaml:"delimiter"`
	Precision int    `yaml:"precision"`
	Brackets  bool   `yaml:"brackets"`
}

// StyleConfig controls terminal styling of the walkthrough.
type StyleConfig struct {
	Color bool `yaml:"color"`
}

// OperandsConfig lists the matrices the demo works on. Left and Right feed the
// binary operators; Special is the matrix used for decrements, compound
// operators and the final determinant.
type OperandsConfig struct {
	Left    [][]float64 `yaml:"left"`
	Right   [][]float64 `yaml:"right"`
	Special [][]float64 `yaml:"special"`
}

// DefaultConfig returns the classic walkthrough: two 3×3 operands summing to
// 45 each and a symmetric special matrix.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Delimiter: DefaultDelimiter,
			Precision: DefaultPrecision,
		},
		Style: StyleConfig{Color: DefaultColor},
		Operands: OperandsConfig{
			Left:    [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			Right:   [][]float64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}},
			Special: [][]float64{{2, 0, 1}, {0, 1, 0}, {1, 0, 2}},
		},
		Power:     DefaultPower,
		Scalar:    DefaultScalar,
		LeftScale: DefaultLeftScale,
		Modulus:   DefaultModulus,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks that every operand is square, all three share one size,
// and the scalar arguments are usable by the demo.
func (c *Config) Validate() error {
	n := len(c.Operands.Left)
	if n == 0 {
		return fmt.Errorf("%w: operands.left is empty", ErrInvalidConfig)
	}
	named := []struct {
		name string
		rows [][]float64
	}{
		{"left", c.Operands.Left},
		{"right", c.Operands.Right},
		{"special", c.Operands.Special},
	}
	for _, op := range named {
		if len(op.rows) != n {
			return fmt.Errorf("%w: operands.%s has %d rows, want %d", ErrInvalidConfig, op.name, len(op.rows), n)
		}
		for i, r := range op.rows {
			if len(r) != n {
				return fmt.Errorf("%w: operands.%s row %d has %d values, want %d", ErrInvalidConfig, op.name, i, len(r), n)
			}
		}
	}
	if c.Render.Delimiter == "" {
		return fmt.Errorf("%w: render.delimiter is empty", ErrInvalidConfig)
	}
	if c.Render.Precision < -1 {
		return fmt.Errorf("%w: render.precision must be >= -1", ErrInvalidConfig)
	}
	if c.Power < 0 {
		return fmt.Errorf("%w: power must be >= 0", ErrInvalidConfig)
	}
	if c.Scalar == 0 {
		return fmt.Errorf("%w: scalar must be non-zero", ErrInvalidConfig)
	}
	if c.Modulus == 0 {
		return fmt.Errorf("%w: modulus must be non-zero", ErrInvalidConfig)
	}

	return nil
}
