// internal/joycon/device.go
package joycon

import (
	"errors"
	"log"
	"time"

	"github.com/sstallion/go-hid"
)

// ErrDeviceNotFound means none of the recognized controllers could be
// opened. Fatal to the session; the caller re-runs Connect.
var ErrDeviceNotFound = errors.New("joycon: no supported controller found")

// Device is the raw HID contract the session needs. *hid.Device
// satisfies it; tests inject scripted fakes.
type Device interface {
	Write(p []byte) (int, error)
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)
	Close() error
}

// HIDInfo carries the enumeration strings of the opened handle,
// best-effort, for display only.
type HIDInfo struct {
	Path         string
	Manufacturer string
	Product      string
}

type openFunc func(vid, pid uint16) (Device, error)

// Connect opens the first recognized controller, trying Joy-Con (L),
// Joy-Con (R), then Pro Controller in that fixed order.
func Connect() (*Session, error) {
	if err := hid.Init(); err != nil {
		return nil, err
	}

	s, err := connectWith(func(vid, pid uint16) (Device, error) {
		return hid.OpenFirst(vid, pid)
	})
	if err != nil {
		return nil, err
	}

	if dev, ok := s.dev.(*hid.Device); ok {
		info, err := dev.GetDeviceInfo()
		if err != nil {
			log.Printf("joycon: device info strings unavailable: %v", err)
		} else {
			s.info = HIDInfo{
				Path:         info.Path,
				Manufacturer: info.MfrStr,
				Product:      info.ProductStr,
			}
			log.Printf("%s: ID %04x:%04x %s %s",
				info.Path,
				info.VendorID,
				info.ProductID,
				info.MfrStr,
				info.ProductStr)
		}
	}
	return s, nil
}

func connectWith(open openFunc) (*Session, error) {
	candidates := []struct {
		pid      uint16
		identity Identity
	}{
		{ProductJoyConL, JoyConL},
		{ProductJoyConR, JoyConR},
		{ProductProController, ProController},
	}

	for _, c := range candidates {
		dev, err := open(VendorNintendo, c.pid)
		if err != nil {
			continue
		}
		return &Session{dev: dev, identity: c.identity}, nil
	}
	return nil, ErrDeviceNotFound
}
