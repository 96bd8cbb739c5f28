package eir

import "strings"

// Flags is the capability flag set carried in a 0x01 block.
// See Supplement to Bluetooth Core Specification, Part A 1.3.2.
type Flags uint8

const (
	// LELimitedDiscoverable - LE Limited Discoverable Mode.
	LELimitedDiscoverable Flags = 1 << iota
	// LEGeneralDiscoverable - LE General Discoverable Mode.
	LEGeneralDiscoverable
	// BREDRNotSupported - BR/EDR Not Supported.
	BREDRNotSupported
	// ControllerSimultaneousLEBREDR - controller supports LE and BR/EDR simultaneously.
	ControllerSimultaneousLEBREDR
	// HostSimultaneousLEBREDR - host supports LE and BR/EDR simultaneously.
	HostSimultaneousLEBREDR
)

const flagsMask = LELimitedDiscoverable |
	LEGeneralDiscoverable |
	BREDRNotSupported |
	ControllerSimultaneousLEBREDR |
	HostSimultaneousLEBREDR

var flagNames = []struct {
	bit  Flags
	name string
}{
	{LELimitedDiscoverable, "LELimitedDiscoverable"},
	{LEGeneralDiscoverable, "LEGeneralDiscoverable"},
	{BREDRNotSupported, "BREDRNotSupported"},
	{ControllerSimultaneousLEBREDR, "ControllerSimultaneousLEBREDR"},
	{HostSimultaneousLEBREDR, "HostSimultaneousLEBREDR"},
}

// FlagsFromByte truncates a raw flags octet into the recognized set.
// Bits outside the set are dropped, never an error.
func FlagsFromByte(b byte) Flags {
	return Flags(b) & flagsMask
}

// Has reports whether every flag in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

func (f Flags) String() string {
	var ss []string
	for _, fn := range flagNames {
		if f&fn.bit != 0 {
			ss = append(ss, fn.name)
		}
	}
	return strings.Join(ss, "|")
}
