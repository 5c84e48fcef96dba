// internal/joycon/spi.go
package joycon

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/joycal/internal/codec"
)

// Subcommand ids, sent in byte 10 of the command envelope.
const (
	subcmdRequestInfo  = 0x02
	subcmdSetInputMode = 0x03
	subcmdWriteSPI     = 0x11
)

// Continuous analog/button reporting mode, argument to subcmdSetInputMode.
const inputModeStandard = 0x30

// Input report offsets. Bytes 0x0D/0x0E echo the response class and the
// subcommand being acknowledged.
const (
	offSubcmd     = 10
	offSubcmdArg  = 11
	offRespClass  = 0x0D
	offRespSubcmd = 0x0E

	respDeviceInfo = 0x82
	respAck        = 0x80

	// Stick block: bytes 6-11, two codec groups.
	offStickBlock  = 6
	minStickReport = 13
)

// Retry and timing discipline. The settle sleeps are hardware-tuned
// constants observed on real units, not derived from any documentation.
const (
	maxAttempts     = 20
	pollsPerAttempt = 8
	pollTimeout     = 64 * time.Millisecond
	attemptGap      = 10 * time.Millisecond
	settleDelay     = 100 * time.Millisecond

	sampleTimeout = 20 * time.Millisecond
)

// maxSPIPayload is the largest payload one SPI write command can carry.
const maxSPIPayload = 25

var (
	ErrDeviceInfoUnavailable = errors.New("joycon: no valid device info response")
	ErrSPIWriteFailed        = errors.New("joycon: spi write not acknowledged")
	ErrNoStickData           = errors.New("joycon: no stick data")
)

// DeviceInfo is the firmware/MAC pair reported by the controller.
type DeviceInfo struct {
	Firmware string
	MAC      string
}

// ReadDeviceInfo queries the controller for firmware version and MAC
// address. Each attempt re-sends the request and polls for the matching
// response; short or unrelated reports count as no data.
func (s *Session) ReadDeviceInfo() (DeviceInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := make([]byte, inputLen)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		cmd := make([]byte, commandLen)
		cmd[offSubcmd] = subcmdRequestInfo
		if err := s.writeCommand(cmd); err != nil {
			return DeviceInfo{}, err
		}

		for poll := 0; poll < pollsPerAttempt; poll++ {
			n, err := s.dev.ReadWithTimeout(resp, pollTimeout)
			if err != nil {
				break
			}
			if n < 0x19 {
				continue
			}
			if resp[offRespClass] == respDeviceInfo && resp[offRespSubcmd] == subcmdRequestInfo {
				return DeviceInfo{
					Firmware: fmt.Sprintf("%X.%02X", resp[0x0F], resp[0x10]),
					MAC: fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
						resp[0x13], resp[0x14], resp[0x15], resp[0x16], resp[0x17], resp[0x18]),
				}, nil
			}
		}
	}
	return DeviceInfo{}, ErrDeviceInfoUnavailable
}

// EnableStandardInput switches the controller into continuous
// analog/button reporting. Fire-and-forget: the protocol defines no
// acknowledgment, and the device needs settleDelay before its reports
// are trustworthy.
func (s *Session) EnableStandardInput() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := make([]byte, commandLen)
	cmd[offSubcmd] = subcmdSetInputMode
	cmd[offSubcmdArg] = inputModeStandard
	if err := s.writeCommand(cmd); err != nil {
		return err
	}
	time.Sleep(settleDelay)
	return nil
}

// WriteSPI writes payload to the controller's SPI flash at addr.
// Callers must not pipeline writes; success includes the mandatory
// post-ack settle.
func (s *Session) WriteSPI(addr uint32, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSPI(addr, payload)
}

// writeSPI is WriteSPI with s.mu already held, so a multi-write commit
// sequence stays one critical section.
func (s *Session) writeSPI(addr uint32, payload []byte) error {
	if len(payload) > maxSPIPayload {
		return fmt.Errorf("joycon: spi payload %d bytes exceeds %d", len(payload), maxSPIPayload)
	}

	resp := make([]byte, inputLen)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		cmd := make([]byte, commandLen)
		cmd[offSubcmd] = subcmdWriteSPI
		binary.LittleEndian.PutUint32(cmd[offSubcmdArg:offSubcmdArg+4], addr)
		cmd[offSubcmdArg+4] = byte(len(payload))
		copy(cmd[offSubcmdArg+5:], payload)
		if err := s.writeCommand(cmd); err != nil {
			return err
		}

		for poll := 0; poll < pollsPerAttempt; poll++ {
			n, err := s.dev.ReadWithTimeout(resp, pollTimeout)
			if err != nil {
				break
			}
			if n <= offRespSubcmd {
				continue
			}
			if resp[offRespClass] == respAck && resp[offRespSubcmd] == subcmdWriteSPI {
				// Flash flush latency; reported success only after the
				// device has had time to persist.
				time.Sleep(settleDelay)
				return nil
			}
		}
		time.Sleep(attemptGap)
	}
	return ErrSPIWriteFailed
}

// ReadStickSample drains every buffered input report with zero-timeout
// reads and keeps the most recent decodable one, so a backlog of stale
// reports never adds latency. An empty buffer falls back to one short
// blocking read to keep a quiet device making progress.
func (s *Session) ReadStickSample() (StickSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, inputLen)

	var last StickSample
	have := false
	for {
		n, err := s.dev.ReadWithTimeout(buf, 0)
		if err != nil || n <= 0 {
			break
		}
		if n >= minStickReport {
			last = decodeStickSample(buf)
			have = true
		}
	}
	if have {
		return last, nil
	}

	n, err := s.dev.ReadWithTimeout(buf, sampleTimeout)
	if err != nil {
		return StickSample{}, fmt.Errorf("joycon: stick read: %w", err)
	}
	if n < minStickReport {
		return StickSample{}, ErrNoStickData
	}
	return decodeStickSample(buf), nil
}

func decodeStickSample(report []byte) StickSample {
	var sample StickSample
	sample.LX, sample.LY = codec.DecodePair(report[offStickBlock : offStickBlock+3])
	sample.RX, sample.RY = codec.DecodePair(report[offStickBlock+3 : offStickBlock+6])
	return sample
}
