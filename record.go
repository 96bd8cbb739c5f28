package eir

// Record is one decoded EIR / advertising data structure. The set of
// variants is closed: every recognized data type code maps to exactly one
// variant, so a dispatch site switching over Record covers the whole model.
type Record interface {
	isRecord()
}

// UUID16List holds 16-bit service UUIDs. All 0x02/0x03 blocks in a buffer
// accumulate into the single list emitted at the first block's position.
type UUID16List []uint16

// Name is the device local name together with whether it was complete
// (0x09) or shortened (0x08).
type Name struct {
	Text     string
	Complete bool
}

// The variants below are recognized by Decode but their payloads are not
// decoded yet; the blocks are skipped. They exist so extending the decoder
// is a single-site change to the dispatch switch.

// UUID32List holds 32-bit service UUIDs.
type UUID32List []uint32

// UUID128List holds 128-bit service UUIDs in on-air (little-endian) order.
type UUID128List [][16]byte

// TxPower is the advertised transmit power level in dBm.
type TxPower int8

// URI is an advertised URI (0x24).
type URI string

// ManufacturerData is a vendor-specific block (0xFF).
type ManufacturerData struct {
	CompanyID uint16
	Data      []byte
}

func (Flags) isRecord()            {}
func (UUID16List) isRecord()       {}
func (Name) isRecord()             {}
func (UUID32List) isRecord()       {}
func (UUID128List) isRecord()      {}
func (TxPower) isRecord()          {}
func (URI) isRecord()              {}
func (ManufacturerData) isRecord() {}
