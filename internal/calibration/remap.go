// internal/calibration/remap.go
package calibration

// Remap maps a raw 12-bit reading onto [0,1] the way the console applies
// a calibration: [min, center-deadzone] onto [0, 0.5], the deadzone onto
// exactly 0.5, and [center+deadzone, max] onto [0.5, 1.0]. Preview only,
// never written to the device. Degenerate denominators saturate instead
// of dividing by zero.
func Remap(raw, min, center, max, deadzone uint16) float64 {
	v := float64(raw)
	lo := float64(center) - float64(deadzone)
	hi := float64(center) + float64(deadzone)

	switch {
	case v < lo:
		den := lo - float64(min)
		if den <= 0 {
			return 0
		}
		return clamp01((v - float64(min)) / den / 2)
	case v > hi:
		den := float64(max) - hi
		if den <= 0 {
			return 1
		}
		return clamp01((v-float64(deadzone)-float64(center))/den/2 + 0.5)
	default:
		return 0.5
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
