// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Calibrator CalibratorConfig `yaml:"calibrator"`
}

// ---- CALIBRATOR ----

type CalibratorConfig struct {
	// PollIntervalMs paces the live sample reads. 0 means default.
	PollIntervalMs int `yaml:"poll_interval_ms"`

	// DeadzoneFormula is "axis" or "diagonal". Two field variants of the
	// center-phase deadzone exist; neither is documented, so the choice
	// is explicit. Empty means default ("axis").
	DeadzoneFormula string `yaml:"deadzone_formula"`

	// OuterPadding is the inward range shrink (raw 12-bit units) applied
	// when the user enables the outer deadzone. Opt-in override; nil
	// means the stock 0x050.
	OuterPadding *int `yaml:"outer_padding"`
}

// ---- DEFAULTS ----

const (
	DefaultPollIntervalMs = 16
	DefaultFormula        = "axis"
	DefaultOuterPadding   = 0x050
)

// Default returns the configuration used when no file is given.
// Already normalized.
func Default() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}

// Load reads and decodes a YAML config file. The result must still be
// passed through Validate and Normalize.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
