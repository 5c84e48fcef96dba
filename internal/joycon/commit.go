// internal/joycon/commit.go
package joycon

import (
	"fmt"

	"github.com/tamzrod/joycal/internal/codec"
)

// SPI flash addresses of the factory stick calibration.
const (
	AddrLeftCalibration  = 0x603D // 9 bytes
	AddrRightCalibration = 0x6046 // 9 bytes
	AddrLeftParameters   = 0x6089 // 3 bytes
	AddrRightParameters  = 0x609B // 3 bytes
)

// rangeRatio is the stick parameter written alongside the deadzone.
// Hardware-tuned constant, never derived from measurement.
const rangeRatio = 0xF80

// StickCalibration is the per-stick record committed to SPI flash, in
// raw 12-bit units.
type StickCalibration struct {
	XMin, XCenter, XMax uint16
	YMin, YCenter, YMax uint16
}

// Validate rejects degenerate records (a stick that never moved during
// a phase leaves min above max). The encoded record stores unsigned
// center-relative deltas, so an out-of-order record would silently wrap.
func (c StickCalibration) Validate() error {
	if c.XMin > c.XCenter || c.XCenter > c.XMax {
		return fmt.Errorf("joycon: degenerate x calibration min=%#03x center=%#03x max=%#03x",
			c.XMin, c.XCenter, c.XMax)
	}
	if c.YMin > c.YCenter || c.YCenter > c.YMax {
		return fmt.Errorf("joycon: degenerate y calibration min=%#03x center=%#03x max=%#03x",
			c.YMin, c.YCenter, c.YMax)
	}
	return nil
}

// encodeLeftRecord packs a left-stick record. Field order on flash:
// (xmax-xcenter, ymax-ycenter), (xcenter, ycenter), (xcenter-xmin, ycenter-ymin).
func encodeLeftRecord(c StickCalibration) [9]byte {
	var rec [9]byte
	copyGroup(rec[0:3], codec.EncodePair(c.XMax-c.XCenter, c.YMax-c.YCenter))
	copyGroup(rec[3:6], codec.EncodePair(c.XCenter, c.YCenter))
	copyGroup(rec[6:9], codec.EncodePair(c.XCenter-c.XMin, c.YCenter-c.YMin))
	return rec
}

// encodeRightRecord packs a right-stick record. The right slot rotates
// the group order: (xcenter, ycenter), (xcenter-xmin, ycenter-ymin),
// (xmax-xcenter, ymax-ycenter).
func encodeRightRecord(c StickCalibration) [9]byte {
	var rec [9]byte
	copyGroup(rec[0:3], codec.EncodePair(c.XCenter, c.YCenter))
	copyGroup(rec[3:6], codec.EncodePair(c.XCenter-c.XMin, c.YCenter-c.YMin))
	copyGroup(rec[6:9], codec.EncodePair(c.XMax-c.XCenter, c.YMax-c.YCenter))
	return rec
}

func copyGroup(dst []byte, group [codec.GroupSize]byte) {
	copy(dst, group[:])
}

// WriteCalibration commits both stick records and parameter blocks to
// flash. Single-stick units mirror their one physical stick into both
// slots; the protocol always addresses two. The write order is fixed for
// reproducibility only. Flash writes are not transactional: a failure
// mid-sequence leaves earlier writes on the device, and the returned
// error says how many were already committed.
func (s *Session) WriteCalibration(left, right StickCalibration, leftDeadzone, rightDeadzone uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leftParams := codec.EncodePair(leftDeadzone, rangeRatio)
	rightParams := codec.EncodePair(rangeRatio, rightDeadzone)

	switch s.identity {
	case JoyConL:
		right = left
		rightParams = leftParams
	case JoyConR:
		left = right
		leftParams = rightParams
	}

	leftRec := encodeLeftRecord(left)
	rightRec := encodeRightRecord(right)

	writes := []struct {
		name string
		addr uint32
		data []byte
	}{
		{"right calibration", AddrRightCalibration, rightRec[:]},
		{"right parameters", AddrRightParameters, rightParams[:]},
		{"left calibration", AddrLeftCalibration, leftRec[:]},
		{"left parameters", AddrLeftParameters, leftParams[:]},
	}

	for i, w := range writes {
		if err := s.writeSPI(w.addr, w.data); err != nil {
			if i == 0 {
				return fmt.Errorf("joycon: %s write failed, nothing committed: %w", w.name, err)
			}
			return fmt.Errorf("joycon: %s write failed, %d earlier write(s) already on flash: %w",
				w.name, i, err)
		}
	}
	return nil
}
