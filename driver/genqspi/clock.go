package genqspi

import "periph.io/x/conn/v3/physic"

// SCLK returns the serial clock frequency for the SPI_CBR
// divisor cbr, given the controller clock ref. The controller
// divides by twice the divisor; 0 acts as 1.
func SCLK(ref physic.Frequency, cbr uint32) physic.Frequency {
	div := physic.Frequency(cbr & 0b1_1111)
	if div == 0 {
		div = 1
	}
	return ref / (2 * div)
}

// BringupSCLK returns the serial clock frequency Bringup selects.
func BringupSCLK(ref physic.Frequency) physic.Frequency {
	return SCLK(ref, cbrDiv4)
}
