package genqspi

// Recorder is an in-memory register block that records every
// access, in order.
type Recorder struct {
	// Stores lists every write.
	Stores []Store
	// Loads lists every read register.
	Loads []Reg

	regs [numRegs]uint32
}

// Store is a single register write.
type Store struct {
	Reg   Reg
	Value uint32
}

func NewRecorder() *Recorder {
	return new(Recorder)
}

func (r *Recorder) Write32(reg Reg, v uint32) {
	r.Stores = append(r.Stores, Store{Reg: reg, Value: v})
	r.regs[index(reg)] = v
}

func (r *Recorder) Read32(reg Reg) uint32 {
	r.Loads = append(r.Loads, reg)
	return r.regs[index(reg)]
}

// Preset sets the value of a register without recording
// a store, as if set by the controller.
func (r *Recorder) Preset(reg Reg, v uint32) {
	r.regs[index(reg)] = v
}

// Value returns the last value of a register, without
// recording a load.
func (r *Recorder) Value(reg Reg) uint32 {
	return r.regs[index(reg)]
}

func index(r Reg) int {
	if r%4 != 0 || r >= BlockSize {
		panic("genqspi: invalid register " + r.String())
	}
	return int(r / 4)
}
