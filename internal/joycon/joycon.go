// internal/joycon/joycon.go
package joycon

import "fmt"

// Nintendo Switch controller identity table.
const VendorNintendo = 0x057E

const (
	ProductJoyConL       = 0x2006
	ProductJoyConR       = 0x2007
	ProductProController = 0x2009
)

// Identity is the controller family a session was opened against. The
// set is fixed by hardware; mirroring and record layout dispatch on it.
type Identity int

const (
	JoyConL Identity = iota
	JoyConR
	ProController
)

func (i Identity) String() string {
	switch i {
	case JoyConL:
		return "Joy-Con (L)"
	case JoyConR:
		return "Joy-Con (R)"
	case ProController:
		return "Pro Controller"
	}
	return fmt.Sprintf("Identity(%d)", int(i))
}

// HasLeftStick reports whether the unit carries a physical left stick.
func (i Identity) HasLeftStick() bool {
	return i == JoyConL || i == ProController
}

// HasRightStick reports whether the unit carries a physical right stick.
func (i Identity) HasRightStick() bool {
	return i == JoyConR || i == ProController
}

// StickSample is one decoded analog reading. All four axes are 12-bit
// values; a single Joy-Con only populates its own pair, the other pair
// decodes as whatever the report carried.
type StickSample struct {
	LX, LY uint16
	RX, RY uint16
}

// CenteredSample is the at-rest reading used before any report has been
// decoded: mid-scale on every axis.
func CenteredSample() StickSample {
	return StickSample{LX: 0x800, LY: 0x800, RX: 0x800, RY: 0x800}
}
