// Package genqspi implements a driver for the generic QSPI flash
// controller soft IP, as paired with Nios II cores.
package genqspi

import "fmt"

// Reg is the byte offset of a controller register.
type Reg uintptr

// Controller registers, in hardware order. All are 32 bits wide.
const (
	CR      Reg = 0x00 // Control.
	SPI_CBR Reg = 0x04 // SPI clock baud rate.
	CS_DSR  Reg = 0x08 // Chip select and delay setting.
	RCR     Reg = 0x0c // Read capturing.
	OPSR    Reg = 0x10 // Operating protocols.
	RIR     Reg = 0x14 // Read instruction.
	WIR     Reg = 0x18 // Write instruction.
	FCSR    Reg = 0x1c // Flash command setting.
	FCCR    Reg = 0x20 // Flash command control.
	FCAR    Reg = 0x24 // Flash command address.
	FCWD0R  Reg = 0x28 // Flash command write data 0.
	FCWD1R  Reg = 0x2c // Flash command write data 1.
	FCRD0R  Reg = 0x30 // Flash command read data 0.
	FCRD1R  Reg = 0x34 // Flash command read data 1.

	// BlockSize is the size in bytes of the register block.
	BlockSize = 0x38
	numRegs   = BlockSize / 4
)

var regNames = [numRegs]string{
	"CR", "SPI_CBR", "CS_DSR", "RCR", "OPSR", "RIR", "WIR",
	"FCSR", "FCCR", "FCAR", "FCWD0R", "FCWD1R", "FCRD0R", "FCRD1R",
}

func (r Reg) String() string {
	if i := r / 4; r%4 == 0 && i < numRegs {
		return regNames[i]
	}
	return fmt.Sprintf("Reg(%#x)", uintptr(r))
}

// Regs is a handle to the register block. Writes must reach the
// device in program order, uncached.
type Regs interface {
	Write32(r Reg, v uint32)
	Read32(r Reg) uint32
}

type Device struct {
	regs Regs
}

func New(regs Regs) *Device {
	return &Device{regs: regs}
}
