package eir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddrRoundTrip(t *testing.T) {
	in := [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}

	a := AddrFromArray(in)
	require.Equal(t, in, a.Array())

	b := AddrFromBytes(in[:])
	require.Equal(t, a, b)
	require.Equal(t, in[:], b.Bytes())
}

func TestAddrString(t *testing.T) {
	a := AddrFromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	require.Equal(t, "06:05:04:03:02:01", a.String())
}

func TestAddrZero(t *testing.T) {
	var a Addr
	require.Equal(t, "00:00:00:00:00:00", a.String())
}

func TestAddrBytesIsACopy(t *testing.T) {
	a := AddrFromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	b := a.Bytes()
	b[0] = 0xff
	require.Equal(t, byte(0x01), a[0])
}

func TestAddrFromBytesPanicsOnBadLength(t *testing.T) {
	require.Panics(t, func() { AddrFromBytes([]byte{0x01, 0x02, 0x03}) })
	require.Panics(t, func() { AddrFromBytes(nil) })
	require.Panics(t, func() { AddrFromBytes(make([]byte, 7)) })
}
