// Package trace encodes recorded register stores in a compact
// binary form.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"qspiboot.org/driver/genqspi"
)

// Version is the current trace format version.
const Version = 1

// Trace is a recorded sequence of register stores.
type Trace struct {
	Version int `cbor:"1,keyasint"`
	// Base is the physical base address of the register block,
	// or zero if unknown.
	Base   uint64  `cbor:"2,keyasint"`
	Stores []Store `cbor:"3,keyasint"`
}

// Store is a register store, encoded as a [reg, value] pair.
type Store struct {
	_     struct{} `cbor:",toarray"`
	Reg   uint32
	Value uint32
}

// New returns a trace of stores.
func New(base uint64, stores []genqspi.Store) Trace {
	t := Trace{Version: Version, Base: base}
	for _, s := range stores {
		t.Stores = append(t.Stores, Store{Reg: uint32(s.Reg), Value: s.Value})
	}
	return t
}

// Register returns the stores of t.
func (t Trace) Register() []genqspi.Store {
	stores := make([]genqspi.Store, len(t.Stores))
	for i, s := range t.Stores {
		stores[i] = genqspi.Store{Reg: genqspi.Reg(s.Reg), Value: s.Value}
	}
	return stores
}

func Encode(w io.Writer, t Trace) error {
	if err := cbor.NewEncoder(w).Encode(t); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (Trace, error) {
	var t Trace
	if err := cbor.NewDecoder(r).Decode(&t); err != nil {
		return Trace{}, fmt.Errorf("trace: %w", err)
	}
	if t.Version != Version {
		return Trace{}, fmt.Errorf("trace: unsupported version %d", t.Version)
	}
	for _, s := range t.Stores {
		if s.Reg%4 != 0 || s.Reg >= genqspi.BlockSize {
			return Trace{}, errors.New("trace: register out of range")
		}
	}
	return t, nil
}
