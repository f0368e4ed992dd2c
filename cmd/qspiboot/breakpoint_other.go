//go:build tinygo && !arm

package main

// breakpoint idles; other targets have no breakpoint instruction
// wired up.
func breakpoint() {}
