package genqspi

import (
	"errors"
	"sync/atomic"
)

// Words is a register block over a mapped window of 32-bit words.
// Accesses are atomic, so the compiler neither merges nor reorders
// them.
type Words []uint32

// NewWords returns a register block over w, which must cover
// BlockSize bytes.
func NewWords(w []uint32) (Words, error) {
	if len(w) < numRegs {
		return nil, errors.New("genqspi: register window too small")
	}
	return Words(w[:numRegs]), nil
}

func (w Words) Write32(r Reg, v uint32) {
	atomic.StoreUint32(&w[index(r)], v)
}

func (w Words) Read32(r Reg) uint32 {
	return atomic.LoadUint32(&w[index(r)])
}
