// internal/calibration/extent.go
package calibration

import (
	"fmt"
	"math"

	"github.com/tamzrod/joycal/internal/joycon"
)

// DeadzoneFormula selects how the center-phase deadzone is derived from
// the observed extent. Two variants exist in the wild and they disagree
// for non-square extents, so the choice is configuration, not code.
type DeadzoneFormula int

const (
	// DeadzoneAxis: half the x-axis linear extent, (maxX-minX)/2.
	DeadzoneAxis DeadzoneFormula = iota
	// DeadzoneDiagonal: half the distance between the extreme corners
	// (minX,minY) and (maxX,maxY).
	DeadzoneDiagonal
)

func (f DeadzoneFormula) String() string {
	switch f {
	case DeadzoneAxis:
		return "axis"
	case DeadzoneDiagonal:
		return "diagonal"
	}
	return fmt.Sprintf("DeadzoneFormula(%d)", int(f))
}

func ParseDeadzoneFormula(s string) (DeadzoneFormula, error) {
	switch s {
	case "axis":
		return DeadzoneAxis, nil
	case "diagonal":
		return DeadzoneDiagonal, nil
	}
	return 0, fmt.Errorf("calibration: unknown deadzone formula %q", s)
}

// Extent is the running min/max accumulator for one calibration phase.
// Seeded inverted (min=0xFFF, max=0x000) so the first sample always
// narrows the range. Centers and provisional deadzones are recomputed on
// every Update; the recomputation is idempotent and order-independent.
type Extent struct {
	MinLX, MaxLX uint16
	MinLY, MaxLY uint16
	MinRX, MaxRX uint16
	MinRY, MaxRY uint16

	CenterLX, CenterLY uint16
	CenterRX, CenterRY uint16

	DeadzoneL, DeadzoneR uint16

	formula DeadzoneFormula
}

func NewExtent(formula DeadzoneFormula) *Extent {
	return &Extent{
		MinLX: 0xFFF, MinLY: 0xFFF, MinRX: 0xFFF, MinRY: 0xFFF,
		formula: formula,
	}
}

// Update widens every min/max field monotonically and rederives the
// centers and deadzones.
func (e *Extent) Update(s joycon.StickSample) {
	e.MinLX = min16(e.MinLX, s.LX)
	e.MaxLX = max16(e.MaxLX, s.LX)
	e.MinLY = min16(e.MinLY, s.LY)
	e.MaxLY = max16(e.MaxLY, s.LY)
	e.MinRX = min16(e.MinRX, s.RX)
	e.MaxRX = max16(e.MaxRX, s.RX)
	e.MinRY = min16(e.MinRY, s.RY)
	e.MaxRY = max16(e.MaxRY, s.RY)

	e.CenterLX = (e.MinLX + e.MaxLX) / 2
	e.CenterLY = (e.MinLY + e.MaxLY) / 2
	e.CenterRX = (e.MinRX + e.MaxRX) / 2
	e.CenterRY = (e.MinRY + e.MaxRY) / 2

	switch e.formula {
	case DeadzoneDiagonal:
		e.DeadzoneL = cornerDistance(e.MinLX, e.MinLY, e.MaxLX, e.MaxLY) / 2
		e.DeadzoneR = cornerDistance(e.MinRX, e.MinRY, e.MaxRX, e.MaxRY) / 2
	default:
		e.DeadzoneL = (e.MaxLX - e.MinLX) / 2
		e.DeadzoneR = (e.MaxRX - e.MinRX) / 2
	}
}

func cornerDistance(x0, y0, x1, y1 uint16) uint16 {
	dx := float64(x1) - float64(x0)
	dy := float64(y1) - float64(y0)
	return uint16(math.Sqrt(dx*dx + dy*dy))
}

func min16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
