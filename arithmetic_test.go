package w65c816emu

import "testing"

func TestAdcBinary8(t *testing.T) {
	tests := []struct {
		name      string
		a         uint16
		operand   uint8
		carryIn   bool
		wantA     uint16
		wantFlags uint8
	}{
		{"simple add", 0x0010, 0x05, false, 0x0015, 0},
		{"carry in", 0x0010, 0x05, true, 0x0016, 0},
		{"carry out", 0x00F0, 0x20, false, 0x0010, flagCarry},
		{"zero result", 0x00FF, 0x01, false, 0x0000, flagCarry | flagZero},
		{"signed overflow", 0x007F, 0x01, false, 0x0080, flagNegative | flagOverflow},
		{"negative no overflow", 0x0080, 0x10, false, 0x0090, flagNegative},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, ram := newEnvironment(t)
			c.regs.A = tc.a
			c.setFlag(flagCarry, tc.carryIn)

			program(t, c, ram, 0x69, tc.operand) // ADC #imm

			c.Step()

			if got := c.regs.A; got != tc.wantA {
				t.Fatalf("expected A=%04x got %04x", tc.wantA, got)
			}
			flags := c.regs.P & (flagNegative | flagOverflow | flagZero | flagCarry)
			if flags != tc.wantFlags {
				t.Fatalf("expected flags %02x got %02x", tc.wantFlags, flags)
			}
		})
	}
}

func TestAdcBinary16(t *testing.T) {
	c, _, ram := newEnvironment(t)
	nativeMode(c)
	c.regs.A = 0x7FFF
	c.setFlag(flagCarry, false)

	program(t, c, ram, 0x69, 0x01, 0x00) // ADC #$0001

	result := c.Step()

	if got := c.regs.A; got != 0x8000 {
		t.Fatalf("expected A=8000 got %04x", got)
	}
	if c.regs.P&flagOverflow == 0 || c.regs.P&flagNegative == 0 {
		t.Fatalf("expected N and V set, got %02x", c.regs.P)
	}
	expectCycles(t, result, 3)
}

func TestAdcPreservesHighByteIn8Bit(t *testing.T) {
	c, _, ram := newEnvironment(t)
	c.regs.A = 0xAB10

	program(t, c, ram, 0x69, 0x05) // ADC #$05

	c.Step()

	if got := c.regs.A; got != 0xAB15 {
		t.Fatalf("expected high byte preserved, got %04x", got)
	}
}

func TestSbcBinary8(t *testing.T) {
	tests := []struct {
		name      string
		a         uint16
		operand   uint8
		carryIn   bool
		wantA     uint16
		wantFlags uint8
	}{
		{"simple sub", 0x0010, 0x05, true, 0x000B, flagCarry},
		{"borrow in", 0x0010, 0x05, false, 0x000A, flagCarry},
		{"borrow out", 0x0005, 0x10, true, 0x00F5, flagNegative},
		{"zero result", 0x0042, 0x42, true, 0x0000, flagCarry | flagZero},
		{"signed overflow", 0x0080, 0x01, true, 0x007F, flagCarry | flagOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, ram := newEnvironment(t)
			c.regs.A = tc.a
			c.setFlag(flagCarry, tc.carryIn)

			program(t, c, ram, 0xE9, tc.operand) // SBC #imm

			c.Step()

			if got := c.regs.A; got != tc.wantA {
				t.Fatalf("expected A=%04x got %04x", tc.wantA, got)
			}
			flags := c.regs.P & (flagNegative | flagOverflow | flagZero | flagCarry)
			if flags != tc.wantFlags {
				t.Fatalf("expected flags %02x got %02x", tc.wantFlags, flags)
			}
		})
	}
}

func TestSbcBinary16(t *testing.T) {
	c, _, ram := newEnvironment(t)
	nativeMode(c)
	c.regs.A = 0x8000
	c.setFlag(flagCarry, true)

	program(t, c, ram, 0xE9, 0x01, 0x00) // SBC #$0001

	c.Step()

	if got := c.regs.A; got != 0x7FFF {
		t.Fatalf("expected A=7FFF got %04x", got)
	}
	if c.regs.P&flagOverflow == 0 {
		t.Fatalf("expected V set, got %02x", c.regs.P)
	}
	if c.regs.P&flagCarry == 0 {
		t.Fatalf("expected C set (no borrow), got %02x", c.regs.P)
	}
}

func TestIncDecAccumulator(t *testing.T) {
	c, _, ram := newEnvironment(t)
	c.regs.A = 0x00FF

	program(t, c, ram,
		0x1A, // INC A
		0x3A, // DEC A
	)

	result := c.Step()
	if got := c.regs.A; got != 0x0000 {
		t.Fatalf("expected A=0000 after INC, got %04x", got)
	}
	if c.regs.P&flagZero == 0 {
		t.Fatalf("expected Z set after 8-bit wrap")
	}
	expectCycles(t, result, 2)

	c.Step()
	if got := c.regs.A; got != 0x00FF {
		t.Fatalf("expected A=00FF after DEC, got %04x", got)
	}
	if c.regs.P&flagNegative == 0 {
		t.Fatalf("expected N set after DEC underflow")
	}
}

func TestIncDecMemory(t *testing.T) {
	c, bus, ram := newEnvironment(t)
	bus.WriteU8(0x2000, 0x7F)

	program(t, c, ram,
		0xEE, 0x00, 0x20, // INC $2000
		0xCE, 0x00, 0x20, // DEC $2000
	)

	result := c.Step()
	if got := bus.ReadU8(0x2000); got != 0x80 {
		t.Fatalf("expected 80 after INC, got %02x", got)
	}
	if c.regs.P&flagNegative == 0 {
		t.Fatalf("expected N set")
	}
	expectCycles(t, result, 6)

	c.Step()
	if got := bus.ReadU8(0x2000); got != 0x7F {
		t.Fatalf("expected 7F after DEC, got %02x", got)
	}
}

func TestIncMemory16(t *testing.T) {
	c, bus, ram := newEnvironment(t)
	nativeMode(c)
	bus.WriteU16(0x2000, 0xFFFF)

	program(t, c, ram, 0xEE, 0x00, 0x20) // INC $2000

	result := c.Step()

	if got := bus.ReadU16(0x2000); got != 0x0000 {
		t.Fatalf("expected 0000, got %04x", got)
	}
	if c.regs.P&flagZero == 0 {
		t.Fatalf("expected Z set")
	}
	expectCycles(t, result, 6)
}
