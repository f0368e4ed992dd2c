package genqspi

import (
	"io"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestRegisterLayout(t *testing.T) {
	layout := []Reg{CR, SPI_CBR, CS_DSR, RCR, OPSR, RIR, WIR, FCSR, FCCR, FCAR, FCWD0R, FCWD1R, FCRD0R, FCRD1R}
	for i, r := range layout {
		if want := Reg(i * 4); r != want {
			t.Errorf("%s at offset %#x, expected %#x", r, uintptr(r), uintptr(want))
		}
	}
	if BlockSize != len(layout)*4 {
		t.Errorf("BlockSize = %#x, expected %#x", BlockSize, len(layout)*4)
	}
	if got := FCWD0R.String(); got != "FCWD0R" {
		t.Errorf("FCWD0R.String() = %q", got)
	}
	if got := Reg(0x3a).String(); got != "Reg(0x3a)" {
		t.Errorf("Reg(0x3a).String() = %q", got)
	}
}

func TestWords(t *testing.T) {
	if _, err := NewWords(make([]uint32, 4)); err == nil {
		t.Error("short register window accepted")
	}
	mem := make([]uint32, 1024)
	w, err := NewWords(mem)
	if err != nil {
		t.Fatal(err)
	}
	New(w).Bringup(io.Discard)
	for _, s := range bringupStores[len(bringupStores)-2:] {
		if got := mem[s.Reg/4]; got != s.Value {
			t.Errorf("%s = %#08x, expected %#08x", s.Reg, got, s.Value)
		}
	}
	mem[FCRD0R/4] = 0xc22817
	if lo, _ := New(w).ReadData(); lo != 0xc22817 {
		t.Errorf("ReadData = %#x", lo)
	}
}

func TestInvalidRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unaligned register access didn't panic")
		}
	}()
	NewRecorder().Write32(Reg(0x02), 1)
}

func TestSCLK(t *testing.T) {
	tests := []struct {
		ref  physic.Frequency
		cbr  uint32
		want physic.Frequency
	}{
		{50 * physic.MegaHertz, 2, 12500 * physic.KiloHertz},
		{50 * physic.MegaHertz, 1, 25 * physic.MegaHertz},
		{50 * physic.MegaHertz, 0, 25 * physic.MegaHertz},
		{100 * physic.MegaHertz, 0x25, 10 * physic.MegaHertz},
	}
	for _, test := range tests {
		if got := SCLK(test.ref, test.cbr); got != test.want {
			t.Errorf("SCLK(%v, %d) = %v, expected %v", test.ref, test.cbr, got, test.want)
		}
	}
	if got := BringupSCLK(50 * physic.MegaHertz); got != 12500*physic.KiloHertz {
		t.Errorf("BringupSCLK = %v", got)
	}
}
