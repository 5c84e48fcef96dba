// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	c := &cfg.Calibrator

	if c.PollIntervalMs == 0 {
		c.PollIntervalMs = DefaultPollIntervalMs
	}
	if c.DeadzoneFormula == "" {
		c.DeadzoneFormula = DefaultFormula
	}
	if c.OuterPadding == nil {
		padding := DefaultOuterPadding
		c.OuterPadding = &padding
	}
}
