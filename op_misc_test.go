package w65c816emu

import "testing"

func TestNopAdvancesPCAndLeavesState(t *testing.T) {
	c, _, ram := newEnvironment(t)
	before := c.regs

	program(t, c, ram, 0xEA) // NOP

	result := c.Step()

	if c.regs.PC != before.PC+1 {
		t.Fatalf("expected PC %04x, got %04x", before.PC+1, c.regs.PC)
	}
	before.PC = c.regs.PC
	if c.regs != before {
		t.Fatalf("NOP must not change registers: %+v", c.regs)
	}
	expectCycles(t, result, 2)
}

func TestWdmConsumesOperand(t *testing.T) {
	c, _, ram := newEnvironment(t)

	program(t, c, ram, 0x42, 0xFF) // WDM #$FF

	result := c.Step()

	if c.regs.PC != 0x8002 {
		t.Fatalf("expected PC=8002, got %04x", c.regs.PC)
	}
	expectCycles(t, result, 2)
}

func TestXba(t *testing.T) {
	c, _, ram := newEnvironment(t)
	c.regs.A = 0x12FF

	program(t, c, ram, 0xEB) // XBA

	result := c.Step()

	if c.regs.A != 0xFF12 {
		t.Fatalf("expected A=FF12, got %04x", c.regs.A)
	}
	// Flags come from the new low byte regardless of width.
	if c.regs.P&flagZero != 0 || c.regs.P&flagNegative != 0 {
		t.Fatalf("expected N and Z clear for 12, got %02x", c.regs.P)
	}
	expectCycles(t, result, 3)
}

func TestXbaZeroLowByte(t *testing.T) {
	c, _, ram := newEnvironment(t)
	c.regs.A = 0x0080

	program(t, c, ram, 0xEB) // XBA

	c.Step()

	if c.regs.A != 0x8000 {
		t.Fatalf("expected A=8000, got %04x", c.regs.A)
	}
	if c.regs.P&flagZero == 0 {
		t.Fatalf("expected Z from new low byte, got %02x", c.regs.P)
	}
}

func TestBlockMoveForward(t *testing.T) {
	c, bus, ram := newEnvironment(t)
	nativeMode(c)
	for i := uint32(0); i < 3; i++ {
		bus.WriteU8(0x2000+i, uint8(0xA0+i))
	}
	c.regs.A = 0x0002 // three bytes
	c.regs.X = 0x2000
	c.regs.Y = 0x3000

	program(t, c, ram, 0x54, 0x01, 0x00) // MVN $00,$01

	for c.regs.A != 0xFFFF {
		c.Step()
	}

	for i := uint32(0); i < 3; i++ {
		if got := bus.ReadU8(0x013000 + i); got != uint8(0xA0+i) {
			t.Fatalf("byte %d: expected %02x, got %02x", i, 0xA0+i, got)
		}
	}
	if c.regs.X != 0x2003 || c.regs.Y != 0x3003 {
		t.Fatalf("expected X/Y advanced, got %04x/%04x", c.regs.X, c.regs.Y)
	}
	if c.regs.PC != 0x8003 {
		t.Fatalf("expected PC past operands, got %04x", c.regs.PC)
	}
}

func TestBlockMoveBackward(t *testing.T) {
	c, bus, ram := newEnvironment(t)
	nativeMode(c)
	bus.WriteU8(0x2005, 0x11)
	bus.WriteU8(0x2004, 0x22)
	c.regs.A = 0x0001 // two bytes
	c.regs.X = 0x2005
	c.regs.Y = 0x3005

	program(t, c, ram, 0x44, 0x00, 0x00) // MVP $00,$00

	for c.regs.A != 0xFFFF {
		c.Step()
	}

	if got := bus.ReadU8(0x3005); got != 0x11 {
		t.Fatalf("expected 11 at 3005, got %02x", got)
	}
	if got := bus.ReadU8(0x3004); got != 0x22 {
		t.Fatalf("expected 22 at 3004, got %02x", got)
	}
	if c.regs.X != 0x2003 || c.regs.Y != 0x3003 {
		t.Fatalf("expected X/Y decremented, got %04x/%04x", c.regs.X, c.regs.Y)
	}
}

func TestBlockMoveLeavesDataBank(t *testing.T) {
	c, _, ram := newEnvironment(t)
	nativeMode(c)
	c.regs.DB = 0x00
	c.regs.A = 0x0000
	c.regs.X = 0x2000
	c.regs.Y = 0x3000

	program(t, c, ram, 0x54, 0x01, 0x00) // MVN $00,$01

	c.Step()

	if c.regs.DB != 0x00 {
		t.Fatalf("block move must not touch DB, got %02x", c.regs.DB)
	}
}

func TestTransfers(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		setup  func(c *cpu)
		check  func(t *testing.T, c *cpu)
	}{
		{
			name:   "TCD always 16-bit",
			opcode: 0x5B,
			setup:  func(c *cpu) { c.regs.A = 0x1234 },
			check: func(t *testing.T, c *cpu) {
				if c.regs.DP != 0x1234 {
					t.Fatalf("expected DP=1234, got %04x", c.regs.DP)
				}
			},
		},
		{
			name:   "TDC always 16-bit",
			opcode: 0x7B,
			setup:  func(c *cpu) { c.regs.DP = 0xABCD; c.regs.A = 0 },
			check: func(t *testing.T, c *cpu) {
				if c.regs.A != 0xABCD {
					t.Fatalf("expected A=ABCD, got %04x", c.regs.A)
				}
				if c.regs.P&flagNegative == 0 {
					t.Fatalf("expected N from 16-bit value, got %02x", c.regs.P)
				}
			},
		},
		{
			name:   "TSC always 16-bit",
			opcode: 0x3B,
			setup:  func(c *cpu) { c.regs.SP = 0x01F0 },
			check: func(t *testing.T, c *cpu) {
				if c.regs.A != 0x01F0 {
					t.Fatalf("expected A=01F0, got %04x", c.regs.A)
				}
			},
		},
		{
			name:   "TCS not pinned in emulation",
			opcode: 0x1B,
			setup:  func(c *cpu) { c.regs.A = 0x2345 },
			check: func(t *testing.T, c *cpu) {
				if c.regs.SP != 0x2345 {
					t.Fatalf("expected SP=2345, got %04x", c.regs.SP)
				}
			},
		},
		{
			name:   "TXY respects index width",
			opcode: 0x9B,
			setup:  func(c *cpu) { c.regs.X = 0xAB12; c.regs.Y = 0xCD00 },
			check: func(t *testing.T, c *cpu) {
				if c.regs.Y != 0x0012 {
					t.Fatalf("expected Y=0012, got %04x", c.regs.Y)
				}
			},
		},
		{
			name:   "TSX narrow clears high byte",
			opcode: 0xBA,
			setup:  func(c *cpu) { c.regs.SP = 0x01F7; c.regs.X = 0xFFFF },
			check: func(t *testing.T, c *cpu) {
				if c.regs.X != 0x00F7 {
					t.Fatalf("expected X=00F7, got %04x", c.regs.X)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, ram := newEnvironment(t)
			tc.setup(c)
			program(t, c, ram, tc.opcode)

			result := c.Step()

			tc.check(t, c)
			expectCycles(t, result, 2)
		})
	}
}

func TestPushPullBanksAndDirect(t *testing.T) {
	c, bus, ram := newEnvironment(t)
	nativeMode(c)
	c.regs.DB = 0x01
	c.regs.DP = 0x1234

	program(t, c, ram,
		0x8B, // PHB
		0x0B, // PHD
		0x4B, // PHK
	)

	c.Step()
	if got := bus.ReadU8(0x01FF); got != 0x01 {
		t.Fatalf("expected DB pushed, got %02x", got)
	}

	c.Step()
	if got := bus.ReadU16(0x01FD); got != 0x1234 {
		t.Fatalf("expected DP pushed, got %04x", got)
	}

	c.Step()
	if got := bus.ReadU8(0x01FC); got != 0x00 {
		t.Fatalf("expected PB pushed, got %02x", got)
	}

	// Pull DB back through PLB, which sets flags from the byte.
	c.regs.SP = 0x01FE
	ramByte := bus.ReadU8(0x01FF)
	c.regs.DB = 0x00
	program(t, c, ram, 0xAB) // PLB
	c.Step()
	if c.regs.DB != ramByte {
		t.Fatalf("expected DB=%02x, got %02x", ramByte, c.regs.DB)
	}
}
