package genqspi

import "testing"

func TestCommandTable(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want uint32
		enc  Command
	}{
		{"ReadJEDECID", ReadJEDECID, 0x0000489f, Encode(0x9f, 0, 1, 4, 0)},
		{"ReadSR", ReadSR, 0x00002805, Encode(0x05, 0, 1, 2, 0)},
		{"WriteEnable", WriteEnable, 0x00000006, Encode(0x06, 0, 0, 0, 0)},
		{"WriteEnableVolatileSR", WriteEnableVolatileSR, 0x00000050, Encode(0x50, 0, 0, 0, 0)},
		{"WriteSR", WriteSR, 0x00002001, Encode(0x01, 0, 0, 2, 0)},
		{"SectorErase", SectorErase, 0x00000320, Encode(0x20, 3, 0, 0, 0)},
		{"EnableQPI", EnableQPI, 0x00000038, Encode(0x38, 0, 0, 0, 0)},
	}
	for _, test := range tests {
		if got := uint32(test.cmd); got != test.want {
			t.Errorf("%s = %#08x, expected %#08x", test.name, got, test.want)
		}
		if test.enc != test.cmd {
			t.Errorf("%s: Encode = %#08x, expected %#08x", test.name, uint32(test.enc), uint32(test.cmd))
		}
	}
}

func TestEncodeFields(t *testing.T) {
	c := Encode(0xab, 5, 1, 9, 17)
	if got, want := uint32(c), uint32(0xab|5<<8|1<<11|9<<12|17<<16); got != want {
		t.Fatalf("Encode = %#08x, expected %#08x", got, want)
	}
	if c.Opcode() != 0xab || c.AddrBytes() != 5 || !c.Read() || c.DataBytes() != 9 || c.DummyCycles() != 17 {
		t.Errorf("fields of %v don't match the encoded values", c)
	}
}

func TestEncodeTruncates(t *testing.T) {
	c := Encode(0x1ff, 0b1111, 0b10, 0x1f, 0x3f)
	if got, want := uint32(c), uint32(0xff|0b111<<8|0<<11|0xf<<12|0x1f<<16); got != want {
		t.Errorf("Encode = %#08x, expected %#08x", got, want)
	}
	if c>>21 != 0 {
		t.Errorf("Encode set bits above the dummy cycle field: %#08x", uint32(c))
	}
}

func TestCommandString(t *testing.T) {
	const want = "op=0x9f addr=0 read data=4 dummy=0"
	if got := ReadJEDECID.String(); got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
