// internal/calibration/wizard.go
package calibration

import (
	"errors"
	"fmt"

	"github.com/tamzrod/joycal/internal/joycon"
)

// Step is the wizard's position in the calibration flow. Done is
// terminal; a commit failure returns to StepReview.
type Step int

const (
	StepIdle Step = iota
	StepConnected
	StepCenter
	StepRange
	StepOuterDeadzone
	StepReview
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepConnected:
		return "connected"
	case StepCenter:
		return "center"
	case StepRange:
		return "range"
	case StepOuterDeadzone:
		return "outer-deadzone"
	case StepReview:
		return "review"
	case StepDone:
		return "done"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Controller is the slice of the device session the wizard drives.
// The wizard never touches the device handle itself.
type Controller interface {
	Identity() joycon.Identity
	EnableStandardInput() error
	WriteCalibration(left, right joycon.StickCalibration, leftDeadzone, rightDeadzone uint16) error
}

// Config is the tunable part of the wizard.
type Config struct {
	Formula DeadzoneFormula

	// OuterPadding is the inward shrink applied to the measured range
	// when the user opts in. Trades a little circularity error for
	// protection against undershoot at the physical limit.
	OuterPadding uint16
}

// Wizard drives the two-phase stick calibration: center+deadzone first,
// then physical range, then an outer-deadzone choice, review, commit.
type Wizard struct {
	cfg  Config
	ctrl Controller

	step   Step
	extent *Extent

	left, right   joycon.StickCalibration
	leftDeadzone  uint16
	rightDeadzone uint16
	outer         bool

	last joycon.StickSample
}

func New(cfg Config, ctrl Controller) (*Wizard, error) {
	if ctrl == nil {
		return nil, errors.New("calibration: controller required")
	}
	if cfg.OuterPadding > 0xFFF {
		return nil, errors.New("calibration: outer padding out of 12-bit range")
	}
	return &Wizard{
		cfg:    cfg,
		ctrl:   ctrl,
		step:   StepIdle,
		extent: NewExtent(cfg.Formula),
		last:   joycon.CenteredSample(),
	}, nil
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Identity() joycon.Identity {
	return w.ctrl.Identity()
}

// Connect acknowledges the established session.
func (w *Wizard) Connect() error {
	if w.step != StepIdle {
		return w.stepError("connect")
	}
	w.step = StepConnected
	return nil
}

// StartCalibration switches the device into continuous reporting and
// opens the center phase with a fresh extent.
func (w *Wizard) StartCalibration() error {
	if w.step != StepConnected {
		return w.stepError("start calibration")
	}
	if err := w.ctrl.EnableStandardInput(); err != nil {
		return err
	}
	w.extent = NewExtent(w.cfg.Formula)
	w.step = StepCenter
	return nil
}

// Observe feeds one live sample. During an active phase it widens the
// extent; outside a phase it only refreshes the preview sample.
func (w *Wizard) Observe(s joycon.StickSample) {
	w.last = s
	if w.step == StepCenter || w.step == StepRange {
		w.extent.Update(s)
	}
}

// LastSample is the most recent observed reading, for preview rendering.
func (w *Wizard) LastSample() joycon.StickSample {
	return w.last
}

// Extent is a snapshot of the accumulator for the active phase.
func (w *Wizard) Extent() Extent {
	return *w.extent
}

// Advance leaves the current phase. Leaving the center phase derives
// centers and deadzones and resets the extent for the range phase;
// leaving the range phase keeps the extent for the outer-deadzone step.
func (w *Wizard) Advance() error {
	switch w.step {
	case StepCenter:
		e := w.extent
		w.left.XCenter = e.CenterLX
		w.left.YCenter = e.CenterLY
		w.right.XCenter = e.CenterRX
		w.right.YCenter = e.CenterRY
		w.leftDeadzone = e.DeadzoneL
		w.rightDeadzone = e.DeadzoneR

		w.extent = NewExtent(w.cfg.Formula)
		w.step = StepRange
		return nil
	case StepRange:
		w.step = StepOuterDeadzone
		return nil
	}
	return w.stepError("advance")
}

// ChooseOuterDeadzone fixes the final range bounds, padded inward when
// enabled, and moves to review.
func (w *Wizard) ChooseOuterDeadzone(enable bool) error {
	if w.step != StepOuterDeadzone {
		return w.stepError("choose outer deadzone")
	}
	w.outer = enable

	var padding uint16
	if enable {
		padding = w.cfg.OuterPadding
	}

	e := w.extent
	w.left.XMin = padUp(e.MinLX, padding)
	w.left.YMin = padUp(e.MinLY, padding)
	w.left.XMax = padDown(e.MaxLX, padding)
	w.left.YMax = padDown(e.MaxLY, padding)

	w.right.XMin = padUp(e.MinRX, padding)
	w.right.YMin = padUp(e.MinRY, padding)
	w.right.XMax = padDown(e.MaxRX, padding)
	w.right.YMax = padDown(e.MaxRY, padding)

	w.step = StepReview
	return nil
}

func (w *Wizard) OuterDeadzone() bool {
	return w.outer
}

// Results are the derived per-stick records, valid from StepReview on.
func (w *Wizard) Results() (left, right joycon.StickCalibration) {
	return w.left, w.right
}

// Deadzones are the per-stick center-phase deadzones.
func (w *Wizard) Deadzones() (left, right uint16) {
	return w.leftDeadzone, w.rightDeadzone
}

// Commit validates the records for every physically present stick and
// writes them to flash. On failure the wizard stays in review; writes
// already on the device stay there (flash is not transactional).
func (w *Wizard) Commit() error {
	if w.step != StepReview {
		return w.stepError("commit")
	}

	id := w.ctrl.Identity()
	if id.HasLeftStick() {
		if err := w.left.Validate(); err != nil {
			return fmt.Errorf("calibration: left stick: %w", err)
		}
	}
	if id.HasRightStick() {
		if err := w.right.Validate(); err != nil {
			return fmt.Errorf("calibration: right stick: %w", err)
		}
	}

	if err := w.ctrl.WriteCalibration(w.left, w.right, w.leftDeadzone, w.rightDeadzone); err != nil {
		return err
	}
	w.step = StepDone
	return nil
}

func (w *Wizard) stepError(op string) error {
	return fmt.Errorf("calibration: cannot %s from step %s", op, w.step)
}

// padUp/padDown apply the inward shrink with 12-bit clamping.
func padUp(v, padding uint16) uint16 {
	v += padding
	if v > 0xFFF {
		return 0xFFF
	}
	return v
}

func padDown(v, padding uint16) uint16 {
	if padding > v {
		return 0
	}
	return v - padding
}
