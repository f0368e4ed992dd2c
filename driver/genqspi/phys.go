//go:build !tinygo

package genqspi

import (
	"fmt"

	"periph.io/x/host/v3/pmem"
)

// Mapping is a register block mapped into the process.
type Mapping struct {
	Words
	close func() error
}

func (m *Mapping) Close() error {
	return m.close()
}

// MapPhys maps the register block at the physical address base
// through /dev/mem. It usually requires root.
func MapPhys(base uint64) (*Mapping, error) {
	v, err := pmem.Map(base, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("genqspi: %w", err)
	}
	w, err := NewWords(v.Uint32())
	if err != nil {
		v.Close()
		return nil, err
	}
	return &Mapping{Words: w, close: v.Close}, nil
}
