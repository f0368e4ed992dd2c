//go:build tinygo

package genqspi

import (
	"runtime/volatile"
	"unsafe"
)

// Volatile is the register block at a fixed address in the
// processor's address space.
type Volatile uintptr

func (base Volatile) Write32(r Reg, v uint32) {
	base.reg(r).Set(v)
}

func (base Volatile) Read32(r Reg) uint32 {
	return base.reg(r).Get()
}

func (base Volatile) reg(r Reg) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(base) + uintptr(index(r))*4))
}
