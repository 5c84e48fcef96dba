// internal/calibration/remap_test.go
package calibration

import "testing"

func TestRemap_Boundaries(t *testing.T) {
	const (
		min    = 0x150
		center = 0x800
		max    = 0xEB0
	)

	if got := Remap(center, min, center, max, 0); got != 0.5 {
		t.Fatalf("center: got %v, want 0.5", got)
	}
	if got := Remap(max, min, center, max, 0); got != 1.0 {
		t.Fatalf("max: got %v, want 1.0", got)
	}
	if got := Remap(min, min, center, max, 0); got != 0.0 {
		t.Fatalf("min: got %v, want 0.0", got)
	}
}

func TestRemap_DeadzonePlateau(t *testing.T) {
	for _, raw := range []uint16{0x780, 0x800, 0x880} {
		if got := Remap(raw, 0x100, 0x800, 0xF00, 0x080); got != 0.5 {
			t.Fatalf("raw %#03x inside deadzone: got %v, want 0.5", raw, got)
		}
	}
	// Just outside the plateau lands on either side of 0.5.
	if got := Remap(0x77F, 0x100, 0x800, 0xF00, 0x080); got >= 0.5 {
		t.Fatalf("below deadzone: got %v, want < 0.5", got)
	}
	if got := Remap(0x881, 0x100, 0x800, 0xF00, 0x080); got <= 0.5 {
		t.Fatalf("above deadzone: got %v, want > 0.5", got)
	}
}

func TestRemap_ClampsOutOfRangeReadings(t *testing.T) {
	if got := Remap(0x000, 0x150, 0x800, 0xEB0, 0x050); got != 0.0 {
		t.Fatalf("below min: got %v, want 0.0", got)
	}
	if got := Remap(0xFFF, 0x150, 0x800, 0xEB0, 0x050); got != 1.0 {
		t.Fatalf("above max: got %v, want 1.0", got)
	}
}

func TestRemap_DegenerateDenominatorsSaturate(t *testing.T) {
	// center-deadzone == min: anything below the plateau is full low.
	if got := Remap(0x0FF, 0x100, 0x150, 0xF00, 0x050); got != 0.0 {
		t.Fatalf("degenerate low side: got %v, want 0.0", got)
	}
	// max == center+deadzone: anything above the plateau is full high.
	if got := Remap(0xF01, 0x100, 0xEB0, 0xF00, 0x050); got != 1.0 {
		t.Fatalf("degenerate high side: got %v, want 1.0", got)
	}
}
