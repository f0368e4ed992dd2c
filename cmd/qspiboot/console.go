//go:build !tinygo

package main

import (
	"fmt"
	"io"

	"github.com/tarm/serial"
)

// openConsole opens the serial console, typically the JTAG UART
// bridge of the board.
func openConsole(dev string) (io.WriteCloser, error) {
	const baudRate = 115200
	c := &serial.Config{Name: dev, Baud: baudRate}
	s, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	return s, nil
}
