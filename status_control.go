package w65c816emu

// Status register manipulation: flag set/clear, REP/SEP, XCE, and the
// push/pull group. Everything that can rewrite P funnels width side effects
// through applyStatusAfterPull or the REP/SEP bodies so the index truncation
// rule lives in as few places as possible.

// applyStatusAfterPull enforces the width rules after P has been replaced
// wholesale (PLP and RTI). Emulation mode re-forces M and X; a 16-to-8 X
// transition clears the index high bytes.
func (c *cpu) applyStatusAfterPull(prevP uint8) {
	if c.regs.EmulationMode {
		c.regs.P |= flagMemory8 | flagIndex8
		return
	}
	if prevP&flagIndex8 == 0 && c.regs.P&flagIndex8 != 0 {
		c.regs.X &= 0x00FF
		c.regs.Y &= 0x00FF
	}
}

// rep clears the masked status bits. Emulation mode keeps M and X pinned,
// so REP can never widen a register there.
func (c *cpu) rep() uint8 {
	mask := c.fetchU8()
	c.regs.P &^= mask
	if c.regs.EmulationMode {
		c.regs.P |= flagMemory8 | flagIndex8
	}
	return 3
}

// sep sets the masked status bits; narrowing X truncates both index
// registers.
func (c *cpu) sep() uint8 {
	mask := c.fetchU8()
	prevP := c.regs.P
	c.regs.P |= mask
	if c.regs.EmulationMode {
		c.regs.P |= flagMemory8 | flagIndex8
	}
	c.applyStatusAfterPull(prevP)
	return 3
}

// xce exchanges the carry with the emulation latch. Entering emulation mode
// forces 8-bit widths and pins the stack to page one.
func (c *cpu) xce() uint8 {
	wasEmulation := c.regs.EmulationMode
	c.regs.EmulationMode = c.regs.P&flagCarry != 0
	c.setFlag(flagCarry, wasEmulation)
	if c.regs.EmulationMode {
		c.regs.P |= flagMemory8 | flagIndex8
		c.regs.X &= 0x00FF
		c.regs.Y &= 0x00FF
		c.regs.SP = 0x0100 | c.regs.SP&0x00FF
	}
	return 2
}

// php pushes P; emulation mode forces the break and unused bits high for
// 6502 compatibility.
func (c *cpu) php() uint8 {
	value := c.regs.P
	if c.regs.EmulationMode {
		value |= 0x30
	}
	c.push8(value)
	return 3
}

func (c *cpu) plp() uint8 {
	prevP := c.regs.P
	c.regs.P = c.pop8()
	c.applyStatusAfterPull(prevP)
	return 4
}

func (c *cpu) pha() uint8 {
	if c.memory8() {
		c.push8(uint8(c.regs.A))
		return 3
	}
	c.push16(c.regs.A)
	return 4
}

func (c *cpu) pla() uint8 {
	if c.memory8() {
		value := c.pop8()
		c.regs.A = c.regs.A&0xFF00 | uint16(value)
		c.setNZ8(value)
		return 4
	}
	c.regs.A = c.pop16()
	c.setNZ16(c.regs.A)
	return 5
}

func (c *cpu) phx() uint8 {
	if c.index8() {
		c.push8(uint8(c.regs.X))
		return 3
	}
	c.push16(c.regs.X)
	return 4
}

func (c *cpu) plx() uint8 {
	if c.index8() {
		value := c.pop8()
		c.regs.X = uint16(value)
		c.setNZ8(value)
		return 4
	}
	c.regs.X = c.pop16()
	c.setNZ16(c.regs.X)
	return 5
}

func (c *cpu) phy() uint8 {
	if c.index8() {
		c.push8(uint8(c.regs.Y))
		return 3
	}
	c.push16(c.regs.Y)
	return 4
}

func (c *cpu) ply() uint8 {
	if c.index8() {
		value := c.pop8()
		c.regs.Y = uint16(value)
		c.setNZ8(value)
		return 4
	}
	c.regs.Y = c.pop16()
	c.setNZ16(c.regs.Y)
	return 5
}

func (c *cpu) phb() uint8 {
	c.push8(c.regs.DB)
	return 3
}

func (c *cpu) plb() uint8 {
	c.regs.DB = c.pop8()
	c.setNZ8(c.regs.DB)
	return 4
}

func (c *cpu) phd() uint8 {
	c.push16(c.regs.DP)
	return 4
}

func (c *cpu) pld() uint8 {
	c.regs.DP = c.pop16()
	c.setNZ16(c.regs.DP)
	return 5
}

func (c *cpu) phk() uint8 {
	c.push8(c.regs.PB)
	return 3
}
