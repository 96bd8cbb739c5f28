package eir

import "fmt"

// Addr is a 6-byte Bluetooth device address, stored in the little-endian
// order it arrives on air. The zero value is the all-zero address.
type Addr [6]byte

// AddrFromBytes copies a 6-byte slice into an Addr. The length is a caller
// contract, not untrusted input: anything other than 6 bytes panics.
func AddrFromBytes(b []byte) Addr {
	if len(b) != 6 {
		panic(fmt.Sprintf("eir: bluetooth address must be 6 bytes, got %d", len(b)))
	}
	var a Addr
	copy(a[:], b)
	return a
}

// AddrFromArray converts a fixed 6-byte array into an Addr.
func AddrFromArray(b [6]byte) Addr {
	return Addr(b)
}

// Array returns the address as a fixed 6-byte array in stored order.
func (a Addr) Array() [6]byte {
	return a
}

// Bytes returns a copy of the address bytes in stored order.
func (a Addr) Bytes() []byte {
	b := make([]byte, len(a))
	copy(b, a[:])
	return b
}

// String renders the address as colon-separated lowercase hex octets,
// most-significant octet first, the reverse of the stored order.
func (a Addr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		a[5], a[4], a[3], a[2], a[1], a[0])
}
