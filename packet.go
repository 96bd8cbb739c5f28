package eir

import "encoding/binary"

// MaxEIRPacketLength is the maximum advertising / EIR payload size.
const MaxEIRPacketLength = 31

// Packet crafts an EIR / advertising data buffer out of typed fields. It is
// the encode-side complement to Decode, mostly useful for building test and
// scan-response payloads.
type Packet struct {
	b []byte
}

// Field is an advertising field which can be appended to a packet.
type Field func(p *Packet) error

// NewPacket returns a packet assembled from the given fields.
func NewPacket(fields ...Field) (*Packet, error) {
	p := &Packet{b: make([]byte, 0, MaxEIRPacketLength)}
	for _, f := range fields {
		if err := f(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Bytes returns the bytes of the packet.
func (p *Packet) Bytes() []byte {
	return p.b
}

// Len returns the length of the packet.
func (p *Packet) Len() int {
	return len(p.b)
}

// Append appends a field to the packet. It returns ErrNotFit if the field
// doesn't fit, and leaves the packet intact.
func (p *Packet) Append(f Field) error {
	return f(p)
}

// Records decodes the packet's current bytes back into records.
func (p *Packet) Records() ([]Record, error) {
	return Decode(p.b)
}

func (p *Packet) append(typ byte, b []byte) error {
	if p.Len()+1+1+len(b) > MaxEIRPacketLength {
		return ErrNotFit
	}
	p.b = append(p.b, byte(len(b)+1), typ)
	p.b = append(p.b, b...)
	return nil
}

// AppendRaw appends raw bytes to the packet, for splicing prebuilt
// structures into a new one.
func AppendRaw(b []byte) Field {
	return func(p *Packet) error {
		if p.Len()+len(b) > MaxEIRPacketLength {
			return ErrNotFit
		}
		p.b = append(p.b, b...)
		return nil
	}
}

// AppendFlags appends a capability flags block.
func AppendFlags(f Flags) Field {
	return func(p *Packet) error {
		return p.append(typeFlags, []byte{byte(f)})
	}
}

// AppendShortName appends a shortened local name block.
func AppendShortName(n string) Field {
	return func(p *Packet) error {
		return p.append(typeNameShort, []byte(n))
	}
}

// AppendCompleteName appends a complete local name block.
func AppendCompleteName(n string) Field {
	return func(p *Packet) error {
		return p.append(typeNameComplete, []byte(n))
	}
}

// AppendUUID16 appends a 16-bit service UUID list block, complete or
// incomplete, with the ids in little-endian on-air order.
func AppendUUID16(complete bool, ids ...uint16) Field {
	return func(p *Packet) error {
		typ := byte(typeUUID16Comp)
		if !complete {
			typ = typeUUID16Inc
		}
		b := make([]byte, 2*len(ids))
		for j, id := range ids {
			binary.LittleEndian.PutUint16(b[2*j:], id)
		}
		return p.append(typ, b)
	}
}

// AppendTxPower appends a transmit power level block.
func AppendTxPower(pwr int8) Field {
	return func(p *Packet) error {
		return p.append(typeTxPower, []byte{uint8(pwr)})
	}
}

// AppendManufacturerData appends a vendor-specific block for the given
// company identifier.
func AppendManufacturerData(id uint16, b []byte) Field {
	return func(p *Packet) error {
		d := append([]byte{uint8(id), uint8(id >> 8)}, b...)
		return p.append(typeMfgData, d)
	}
}
