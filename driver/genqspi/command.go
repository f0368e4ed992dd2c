package genqspi

import "fmt"

// Command is a packed flash command setting, as written to FCSR.
type Command uint32

const (
	opcodeShift = 0
	addrShift   = 8
	dirShift    = 11
	dataShift   = 12
	dummyShift  = 16

	opcodeMask = 0xff
	addrMask   = 0b111
	dirMask    = 0b1
	dataMask   = 0b1111
	dummyMask  = 0b1_1111
)

// Data directions.
const (
	DataWrite = 0
	DataRead  = 1
)

// Encode packs a command setting. Values wider than their field
// are truncated.
func Encode(opcode, addrBytes, dir, dataBytes, dummyCycles uint32) Command {
	return Command(opcode&opcodeMask<<opcodeShift |
		addrBytes&addrMask<<addrShift |
		dir&dirMask<<dirShift |
		dataBytes&dataMask<<dataShift |
		dummyCycles&dummyMask<<dummyShift)
}

// Flash commands issued by the controller.
const (
	ReadJEDECID           = Command(0x9f | 0<<addrShift | DataRead<<dirShift | 4<<dataShift | 0<<dummyShift)
	ReadSR                = Command(0x05 | 0<<addrShift | DataRead<<dirShift | 2<<dataShift | 0<<dummyShift)
	WriteEnable           = Command(0x06 | 0<<addrShift | DataWrite<<dirShift | 0<<dataShift | 0<<dummyShift)
	WriteEnableVolatileSR = Command(0x50 | 0<<addrShift | DataWrite<<dirShift | 0<<dataShift | 0<<dummyShift)
	WriteSR               = Command(0x01 | 0<<addrShift | DataWrite<<dirShift | 2<<dataShift | 0<<dummyShift)
	SectorErase           = Command(0x20 | 3<<addrShift | DataWrite<<dirShift | 0<<dataShift | 0<<dummyShift)
	EnableQPI             = Command(0x38 | 0<<addrShift | DataWrite<<dirShift | 0<<dataShift | 0<<dummyShift)
)

func (c Command) Opcode() uint8 {
	return uint8(c >> opcodeShift & opcodeMask)
}

func (c Command) AddrBytes() int {
	return int(c >> addrShift & addrMask)
}

// Read reports whether the data phase transfers from the flash.
func (c Command) Read() bool {
	return c>>dirShift&dirMask == DataRead
}

func (c Command) DataBytes() int {
	return int(c >> dataShift & dataMask)
}

func (c Command) DummyCycles() int {
	return int(c >> dummyShift & dummyMask)
}

func (c Command) String() string {
	dir := "write"
	if c.Read() {
		dir = "read"
	}
	return fmt.Sprintf("op=%#02x addr=%d %s data=%d dummy=%d",
		c.Opcode(), c.AddrBytes(), dir, c.DataBytes(), c.DummyCycles())
}
