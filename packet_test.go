package eir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketRoundTrip(t *testing.T) {
	p, err := NewPacket(
		AppendFlags(LEGeneralDiscoverable|BREDRNotSupported),
		AppendUUID16(true, 0xacab, 0x1234),
		AppendCompleteName("Hi"),
	)
	require.NoError(t, err)

	recs, err := p.Records()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, LEGeneralDiscoverable|BREDRNotSupported, recs[0])
	require.Equal(t, UUID16List{0xacab, 0x1234}, recs[1])
	require.Equal(t, Name{Text: "Hi", Complete: true}, recs[2])
}

func TestPacketNotFit(t *testing.T) {
	p, err := NewPacket(AppendFlags(LEGeneralDiscoverable))
	require.NoError(t, err)
	before := p.Len()

	err = p.Append(AppendCompleteName(strings.Repeat("a", MaxEIRPacketLength)))
	require.ErrorIs(t, err, ErrNotFit)
	require.Equal(t, before, p.Len(), "failed append must leave the packet intact")
}

func TestPacketRawNotFit(t *testing.T) {
	_, err := NewPacket(AppendRaw(make([]byte, MaxEIRPacketLength+1)))
	require.ErrorIs(t, err, ErrNotFit)
}

func TestPacketManufacturerDataBytes(t *testing.T) {
	p, err := NewPacket(AppendManufacturerData(0x004c, []byte{0xaa, 0xbb}))
	require.NoError(t, err)
	// company id is little-endian on the wire
	require.Equal(t, []byte{0x05, 0xff, 0x4c, 0x00, 0xaa, 0xbb}, p.Bytes())
}

func TestPacketTxPowerBytes(t *testing.T) {
	p, err := NewPacket(AppendTxPower(-12))
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x0a, 0xf4}, p.Bytes())
}

func TestPacketShortNameBytes(t *testing.T) {
	p, err := NewPacket(AppendShortName("Hi"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x08, 'H', 'i'}, p.Bytes())
}

func TestPacketRawSplice(t *testing.T) {
	src, err := NewPacket(AppendFlags(LELimitedDiscoverable))
	require.NoError(t, err)

	p, err := NewPacket(AppendRaw(src.Bytes()), AppendCompleteName("Hi"))
	require.NoError(t, err)

	recs, err := p.Records()
	require.NoError(t, err)
	require.Len(t, recs, 2)
}
