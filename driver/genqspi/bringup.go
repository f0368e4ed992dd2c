package genqspi

import "io"

// Greeting is printed before the controller is touched.
const Greeting = "Hello from Nios II!\r\n"

// Controller settings programmed by Bringup.
const (
	// wirPageProgram selects write opcode 0x02 (page program)
	// and polling opcode 0x05 (read status).
	wirPageProgram = 0x00000502
	// cbrDiv4 divides the controller clock by 2*2.
	cbrDiv4 = 0x00000002
	// opsrQuad selects 4 lines for every transfer phase.
	opsrQuad = 0x00022222
	// rirQuadFastRead selects read opcode 0x0b (fast read) with
	// 2 dummy cycles for memory-mapped reads.
	rirQuadFastRead = 0x0000020b

	// sr2QuadEnable is the WriteSR payload: status register 1
	// cleared, quad-enable (bit 1) set in status register 2.
	sr2QuadEnable = 0x0200

	// strayFCSR is stored to FCSR right before
	// WriteEnableVolatileSR overwrites it. It has no effect, but
	// the store sequence must not change.
	strayFCSR = 0x00000050

	trigger = 0x00000001
)

// Bringup writes the greeting to w and switches the controller
// and flash into quad I/O mode. Every step is a single store;
// completion is never polled and nothing is read back.
func (d *Device) Bringup(w io.Writer) {
	io.WriteString(w, Greeting)

	r := d.regs
	r.Write32(CS_DSR, 0)
	r.Write32(WIR, wirPageProgram)
	r.Write32(SPI_CBR, cbrDiv4)

	d.issue(ReadJEDECID)
	d.issue(ReadSR)

	r.Write32(FCSR, strayFCSR)
	d.issue(WriteEnableVolatileSR)

	r.Write32(FCSR, uint32(WriteSR))
	r.Write32(FCWD0R, sr2QuadEnable)
	r.Write32(FCCR, trigger)

	d.issue(WriteEnable)
	d.issue(EnableQPI)

	r.Write32(OPSR, opsrQuad)
	r.Write32(RIR, rirQuadFastRead)
}

// Run performs Bringup and halts.
func (d *Device) Run(w io.Writer, brk func()) {
	d.Bringup(w)
	Halt(brk)
}

// Halt calls brk forever. It never returns.
func Halt(brk func()) {
	for {
		brk()
	}
}

// SectorErase erases the 4KB sector containing addr. It does not
// wait for the erase to finish.
func (d *Device) SectorErase(addr uint32) {
	d.issue(WriteEnable)
	d.regs.Write32(FCSR, uint32(SectorErase))
	d.regs.Write32(FCAR, addr&0xff_ffff)
	d.regs.Write32(FCCR, trigger)
}

func (d *Device) issue(c Command) {
	d.regs.Write32(FCSR, uint32(c))
	d.regs.Write32(FCCR, trigger)
}

// ReadData returns the data registers of the last read command.
func (d *Device) ReadData() (lo, hi uint32) {
	return d.regs.Read32(FCRD0R), d.regs.Read32(FCRD1R)
}
