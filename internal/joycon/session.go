// internal/joycon/session.go
package joycon

import (
	"fmt"
	"sync"
)

const (
	// Every command is a fixed-size output report with id 0x01.
	commandLen = 49
	commandID  = 0x01

	// Largest input report the device emits.
	inputLen = 0x170
)

// Session owns the only reference to the open device handle. The device
// is strictly half-duplex with no request ids, so every command/response
// exchange runs under one mutex: an in-flight stick poll must never
// interleave with a flash write's response stream.
type Session struct {
	mu       sync.Mutex
	dev      Device
	identity Identity
	info     HIDInfo

	// 4-bit rolling counter stamped into byte 1 of every command. The
	// device rejects out-of-sequence counters; incremented exactly once
	// per command, never reset mid-session.
	counter uint8
}

// NewSession wraps an already open device. Used by tests; Connect is the
// production path.
func NewSession(dev Device, identity Identity) *Session {
	return &Session{dev: dev, identity: identity}
}

func (s *Session) Identity() Identity {
	return s.identity
}

func (s *Session) Info() HIDInfo {
	return s.info
}

func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dev.Close()
}

// writeCommand stamps the command id and rolling counter into cmd and
// sends it. cmd must be commandLen bytes. Caller must hold s.mu.
func (s *Session) writeCommand(cmd []byte) error {
	cmd[0] = commandID
	cmd[1] = s.counter
	s.counter = (s.counter + 1) & 0xF

	if _, err := s.dev.Write(cmd); err != nil {
		return fmt.Errorf("joycon: command write: %w", err)
	}
	return nil
}
