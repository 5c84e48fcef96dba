// internal/config/validate_test.go
package config

import "testing"

func intPtr(v int) *int { return &v }

func TestValidate_AcceptsEmptyConfig(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		t.Fatalf("empty config must validate (defaults come later): %v", err)
	}
}

func TestValidate_RejectsNegativeInterval(t *testing.T) {
	cfg := &Config{}
	cfg.Calibrator.PollIntervalMs = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for negative poll interval")
	}
}

func TestValidate_Formula(t *testing.T) {
	for _, ok := range []string{"", "axis", "diagonal"} {
		cfg := &Config{}
		cfg.Calibrator.DeadzoneFormula = ok
		if err := Validate(cfg); err != nil {
			t.Fatalf("formula %q: unexpected error %v", ok, err)
		}
	}

	cfg := &Config{}
	cfg.Calibrator.DeadzoneFormula = "euclidean"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for unknown formula")
	}
}

func TestValidate_PaddingRange(t *testing.T) {
	cfg := &Config{}
	cfg.Calibrator.OuterPadding = intPtr(0xFFF)
	if err := Validate(cfg); err != nil {
		t.Fatalf("padding 0xFFF: unexpected error %v", err)
	}

	cfg.Calibrator.OuterPadding = intPtr(0x1000)
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for padding above 12-bit range")
	}

	cfg.Calibrator.OuterPadding = intPtr(-1)
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for negative padding")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{}
	Normalize(cfg)

	c := cfg.Calibrator
	if c.PollIntervalMs != DefaultPollIntervalMs {
		t.Fatalf("interval: got %d, want %d", c.PollIntervalMs, DefaultPollIntervalMs)
	}
	if c.DeadzoneFormula != DefaultFormula {
		t.Fatalf("formula: got %q, want %q", c.DeadzoneFormula, DefaultFormula)
	}
	if c.OuterPadding == nil || *c.OuterPadding != DefaultOuterPadding {
		t.Fatalf("padding: got %v, want %d", c.OuterPadding, DefaultOuterPadding)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Calibrator.PollIntervalMs = 8
	cfg.Calibrator.DeadzoneFormula = "diagonal"
	cfg.Calibrator.OuterPadding = intPtr(0)
	Normalize(cfg)

	c := cfg.Calibrator
	if c.PollIntervalMs != 8 || c.DeadzoneFormula != "diagonal" {
		t.Fatalf("explicit values overwritten: %+v", c)
	}
	if c.OuterPadding == nil || *c.OuterPadding != 0 {
		t.Fatalf("explicit zero padding overwritten: %v", c.OuterPadding)
	}
}
