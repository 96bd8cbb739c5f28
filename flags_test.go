package eir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagsFromByteTruncates(t *testing.T) {
	require.Equal(t, flagsMask, FlagsFromByte(0xff))
	require.Equal(t, Flags(0), FlagsFromByte(0xe0))
	require.Equal(t, LELimitedDiscoverable|BREDRNotSupported, FlagsFromByte(0x05))
}

func TestFlagsHas(t *testing.T) {
	f := LEGeneralDiscoverable | BREDRNotSupported
	require.True(t, f.Has(LEGeneralDiscoverable))
	require.True(t, f.Has(LEGeneralDiscoverable|BREDRNotSupported))
	require.False(t, f.Has(HostSimultaneousLEBREDR))
	require.False(t, f.Has(LEGeneralDiscoverable|HostSimultaneousLEBREDR))
}

func TestFlagsString(t *testing.T) {
	require.Equal(t, "", Flags(0).String())
	require.Equal(t, "BREDRNotSupported", BREDRNotSupported.String())
	require.Equal(t,
		"LEGeneralDiscoverable|BREDRNotSupported",
		(LEGeneralDiscoverable | BREDRNotSupported).String())
}
