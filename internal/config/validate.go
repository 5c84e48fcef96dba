// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	c := cfg.Calibrator

	if c.PollIntervalMs < 0 {
		return fmt.Errorf("calibrator: poll_interval_ms must be >= 0, got %d", c.PollIntervalMs)
	}

	switch c.DeadzoneFormula {
	case "", "axis", "diagonal":
	default:
		return fmt.Errorf("calibrator: deadzone_formula must be \"axis\" or \"diagonal\", got %q",
			c.DeadzoneFormula)
	}

	if c.OuterPadding != nil {
		if *c.OuterPadding < 0 || *c.OuterPadding > 0xFFF {
			return fmt.Errorf("calibrator: outer_padding must be within 0..0xFFF, got %d",
				*c.OuterPadding)
		}
	}

	return nil
}
