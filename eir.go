// Package eir decodes Bluetooth Extended Inquiry Response (EIR) and
// Advertising Data buffers into typed records.
//
// The wire format is a sequence of [Length][Type][Data...] structures as
// defined by the Bluetooth Core Specification (Vol 3, Part C, 8) and the
// Core Specification Supplement.
package eir

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// Assigned data type codes:
// https://www.bluetooth.com/specifications/assigned-numbers/generic-access-profile/
const (
	typeFlags        = 0x01
	typeUUID16Inc    = 0x02
	typeUUID16Comp   = 0x03
	typeUUID32Inc    = 0x04
	typeUUID32Comp   = 0x05
	typeUUID128Inc   = 0x06
	typeUUID128Comp  = 0x07
	typeNameShort    = 0x08
	typeNameComplete = 0x09
	typeTxPower      = 0x0a
	typeURI          = 0x24
	typeMfgData      = 0xff
)

// Decode parses an EIR / advertising data buffer into its records, in order
// of first appearance. A zero length octet terminates the decode; anything
// after it is padding and ignored. Unknown data types are skipped.
//
// On a malformed buffer Decode returns a nil record slice together with the
// classifying error; it never returns partial results. Decode holds no state
// between calls, so concurrent callers need no synchronization.
func Decode(p []byte) ([]Record, error) {
	var out []Record
	hasFlags := false
	hasName := false
	uuid16Idx := -1

	// Every bound below derives from len(p); a declared record length is
	// never trusted beyond the bytes actually present.
	for i := 0; i+1 < len(p); {
		length := int(p[i])
		if length == 0 {
			break
		}
		typ := p[i+1]

		// The type octet counts against length, leaving length-1 octets of
		// payload, clamped to what the buffer actually holds.
		start := i + 2
		end := start + length - 1
		if end > len(p) {
			end = len(p)
		}
		data := p[start:end]
		i = end

		switch typ {
		case typeFlags:
			if hasFlags {
				return nil, ErrRepeatedFlag
			}
			if len(data) != 1 {
				return nil, &UnexpectedDataLengthError{Len: len(data)}
			}
			hasFlags = true
			out = append(out, FlagsFromByte(data[0]))

		case typeUUID16Inc, typeUUID16Comp:
			if len(data)%2 != 0 {
				return nil, &UnexpectedDataLengthError{Len: len(data)}
			}
			if uuid16Idx < 0 {
				uuid16Idx = len(out)
				out = append(out, UUID16List(nil))
			}
			list := out[uuid16Idx].(UUID16List)
			for j := 0; j+1 < len(data); j += 2 {
				list = append(list, binary.LittleEndian.Uint16(data[j:]))
			}
			out[uuid16Idx] = list

		case typeNameShort, typeNameComplete:
			if hasName {
				return nil, ErrRepeatedName
			}
			hasName = true
			out = append(out, Name{
				Text:     strings.ToValidUTF8(string(data), string(utf8.RuneError)),
				Complete: typ == typeNameComplete,
			})

		case typeUUID32Inc, typeUUID32Comp, typeUUID128Inc, typeUUID128Comp,
			typeTxPower, typeURI, typeMfgData:
			// Recognized but not decoded yet. Decoders for these codes slot
			// in here; until then the payload is discarded like an unknown
			// type's.
			GetLogger().Debugf("skipped undecoded adv type 0x%02x (%d bytes)", typ, len(data))

		default:
			GetLogger().Debugf("skipped unknown adv type 0x%02x (%d bytes)", typ, len(data))
		}
	}

	return out, nil
}
