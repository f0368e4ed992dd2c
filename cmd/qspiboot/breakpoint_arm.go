//go:build tinygo && arm

package main

import "device/arm"

func breakpoint() {
	arm.Asm("bkpt #0")
}
