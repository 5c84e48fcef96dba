// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/joycal/internal/joycon"
)

// Client abstracts the one session operation the poller needs.
// Serialization against other device traffic is the session's job; the
// poller only paces reads.
type Client interface {
	ReadStickSample() (joycon.StickSample, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
}

// Poller is a dumb, clock-driven sample reader.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one read.
func (p *Poller) PollOnce() Result {
	res := Result{At: time.Now()}
	res.Sample, res.Err = p.client.ReadStickSample()
	return res
}
