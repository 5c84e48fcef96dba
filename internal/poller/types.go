// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/joycal/internal/joycon"
)

// Result is the outcome of one poll tick. A quiet device surfaces as
// Err (joycon.ErrNoStickData); the consumer decides whether that
// matters for the current wizard step.
type Result struct {
	At     time.Time
	Sample joycon.StickSample
	Err    error // non-nil means this tick produced no usable sample
}
