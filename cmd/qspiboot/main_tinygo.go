//go:build tinygo

// Command qspiboot, built with TinyGo, brings up the controller from
// a core with a TinyGo target, such as a Cortex-M or RISC-V core
// instantiated next to the controller. TinyGo has no Nios II target; Nios II systems
// run the Linux build against the controller through -uio or -base.
package main

import (
	"machine"
	"strconv"

	"qspiboot.org/driver/genqspi"
)

// csrBase is the address of the controller registers, set with
// -ldflags='-X main.csrBase=0x...'.
var csrBase string

func main() {
	base, err := strconv.ParseUint(csrBase, 0, 32)
	if err != nil {
		panic("qspiboot: invalid csrBase: " + csrBase)
	}
	genqspi.New(genqspi.Volatile(base)).Run(machine.Serial, breakpoint)
}
