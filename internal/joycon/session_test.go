// internal/joycon/session_test.go
package joycon

import (
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/joycal/internal/codec"
)

// ---- fake device ----

// fakeDevice records every command frame and serves scripted responses.
// An empty queue behaves like a silent device: reads time out with no
// data and no error.
type fakeDevice struct {
	writes [][]byte
	queue  [][]byte

	// respond, when set, queues responses as a reaction to each write.
	respond func(cmd []byte) [][]byte

	// quiet makes the next n reads time out even if responses are queued.
	quiet int

	writeErr error
	closed   bool
}

func (f *fakeDevice) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	cmd := make([]byte, len(p))
	copy(cmd, p)
	f.writes = append(f.writes, cmd)
	if f.respond != nil {
		f.queue = append(f.queue, f.respond(cmd)...)
	}
	return len(p), nil
}

func (f *fakeDevice) ReadWithTimeout(p []byte, timeout time.Duration) (int, error) {
	if f.quiet > 0 {
		f.quiet--
		return 0, nil
	}
	if len(f.queue) == 0 {
		return 0, nil
	}
	resp := f.queue[0]
	f.queue = f.queue[1:]
	return copy(p, resp), nil
}

func (f *fakeDevice) Close() error {
	f.closed = true
	return nil
}

// deviceInfoResponse builds a valid device-info report.
func deviceInfoResponse() []byte {
	resp := make([]byte, commandLen)
	resp[offRespClass] = respDeviceInfo
	resp[offRespSubcmd] = subcmdRequestInfo
	resp[0x0F] = 0x03
	resp[0x10] = 0x48
	copy(resp[0x13:0x19], []byte{0xDC, 0x68, 0xEB, 0x01, 0x02, 0x03})
	return resp
}

func spiAckResponse() []byte {
	resp := make([]byte, commandLen)
	resp[offRespClass] = respAck
	resp[offRespSubcmd] = subcmdWriteSPI
	return resp
}

// stickReport builds a standard input report carrying one stick block.
func stickReport(lx, ly, rx, ry uint16) []byte {
	report := make([]byte, commandLen)
	left := codec.EncodePair(lx, ly)
	right := codec.EncodePair(rx, ry)
	copy(report[offStickBlock:], left[:])
	copy(report[offStickBlock+3:], right[:])
	return report
}

// ---- connect ----

func TestConnect_TriesIdentitiesInOrder(t *testing.T) {
	var tried []uint16
	s, err := connectWith(func(vid, pid uint16) (Device, error) {
		tried = append(tried, pid)
		if pid == ProductProController {
			return &fakeDevice{}, nil
		}
		return nil, errors.New("not present")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Identity() != ProController {
		t.Fatalf("expected ProController, got %v", s.Identity())
	}
	want := []uint16{ProductJoyConL, ProductJoyConR, ProductProController}
	if len(tried) != len(want) {
		t.Fatalf("expected %d open attempts, got %d", len(want), len(tried))
	}
	for i := range want {
		if tried[i] != want[i] {
			t.Fatalf("attempt %d: expected pid %#04x, got %#04x", i, want[i], tried[i])
		}
	}
}

func TestConnect_FirstMatchWins(t *testing.T) {
	var tried []uint16
	s, err := connectWith(func(vid, pid uint16) (Device, error) {
		tried = append(tried, pid)
		return &fakeDevice{}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Identity() != JoyConL {
		t.Fatalf("expected JoyConL, got %v", s.Identity())
	}
	if len(tried) != 1 {
		t.Fatalf("expected 1 open attempt, got %d", len(tried))
	}
}

func TestConnect_NoneFound(t *testing.T) {
	_, err := connectWith(func(vid, pid uint16) (Device, error) {
		return nil, errors.New("not present")
	})
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
}

// ---- command framing ----

func TestWriteCommand_RollingCounterWraps(t *testing.T) {
	fake := &fakeDevice{respond: func(cmd []byte) [][]byte {
		return [][]byte{deviceInfoResponse()}
	}}
	s := NewSession(fake, ProController)

	// 17 commands: counters 0..15 then back to 0.
	for i := 0; i < 17; i++ {
		if _, err := s.ReadDeviceInfo(); err != nil {
			t.Fatalf("command %d: %v", i, err)
		}
	}

	if len(fake.writes) != 17 {
		t.Fatalf("expected 17 frames, got %d", len(fake.writes))
	}
	for i, frame := range fake.writes {
		if len(frame) != commandLen {
			t.Fatalf("frame %d: length %d, want %d", i, len(frame), commandLen)
		}
		if frame[0] != commandID {
			t.Fatalf("frame %d: command byte %#02x, want %#02x", i, frame[0], commandID)
		}
		if frame[1] != byte(i&0xF) {
			t.Fatalf("frame %d: counter %d, want %d", i, frame[1], i&0xF)
		}
	}
}
