package w65c816emu

// Operand width is never stored: it is derived from the emulation-mode latch
// and the M/X flags at every use. Register accessors below are the only code
// allowed to touch a, x and y partially, so the widening/narrowing rules live
// in one place.

// memory8 reports whether accumulator/memory operands are 8 bits wide.
func (c *cpu) memory8() bool {
	return c.regs.EmulationMode || c.regs.P&flagMemory8 != 0
}

// index8 reports whether index register operands are 8 bits wide.
func (c *cpu) index8() bool {
	return c.regs.EmulationMode || c.regs.P&flagIndex8 != 0
}

// loadA returns the accumulator at its current width.
func (c *cpu) loadA() uint16 {
	if c.memory8() {
		return c.regs.A & 0x00FF
	}
	return c.regs.A
}

// storeA writes the accumulator at its current width. The high byte (B) is
// preserved by 8-bit stores.
func (c *cpu) storeA(value uint16) {
	if c.memory8() {
		c.regs.A = c.regs.A&0xFF00 | value&0x00FF
	} else {
		c.regs.A = value
	}
}

func (c *cpu) loadX() uint16 {
	if c.index8() {
		return c.regs.X & 0x00FF
	}
	return c.regs.X
}

func (c *cpu) loadY() uint16 {
	if c.index8() {
		return c.regs.Y & 0x00FF
	}
	return c.regs.Y
}

// storeX and storeY force the high byte to zero in 8-bit mode, matching the
// truncation the hardware applies whenever the X flag is set.
func (c *cpu) storeX(value uint16) {
	if c.index8() {
		c.regs.X = value & 0x00FF
	} else {
		c.regs.X = value
	}
}

func (c *cpu) storeY(value uint16) {
	if c.index8() {
		c.regs.Y = value & 0x00FF
	} else {
		c.regs.Y = value
	}
}

// Immediate operand fetch. Each helper charges one cycle per byte read and
// advances the program counter within the current bank.

func (c *cpu) fetchU8() uint8 {
	value := c.readU8(c.fullPC())
	c.regs.PC++
	c.addCycles(1)
	return value
}

func (c *cpu) fetchU16() uint16 {
	lo := uint16(c.fetchU8())
	hi := uint16(c.fetchU8())
	return hi<<8 | lo
}

func (c *cpu) fetchU24() uint32 {
	lo := uint32(c.fetchU8())
	mid := uint32(c.fetchU8())
	hi := uint32(c.fetchU8())
	return hi<<16 | mid<<8 | lo
}

// fetchM fetches an immediate operand at the current memory width.
func (c *cpu) fetchM() uint16 {
	if c.memory8() {
		return uint16(c.fetchU8())
	}
	return c.fetchU16()
}

// fetchIdx fetches an immediate operand at the current index width.
func (c *cpu) fetchIdx() uint16 {
	if c.index8() {
		return uint16(c.fetchU8())
	}
	return c.fetchU16()
}

// Data operand access at a resolved address.

func (c *cpu) readM(address uint32) uint16 {
	if c.memory8() {
		return uint16(c.readU8(address))
	}
	return c.readU16(address)
}

func (c *cpu) writeM(address uint32, value uint16) {
	if c.memory8() {
		c.writeU8(address, uint8(value))
	} else {
		c.writeU16(address, value)
	}
}

func (c *cpu) readIdx(address uint32) uint16 {
	if c.index8() {
		return uint16(c.readU8(address))
	}
	return c.readU16(address)
}

func (c *cpu) writeIdx(address uint32, value uint16) {
	if c.index8() {
		c.writeU8(address, uint8(value))
	} else {
		c.writeU16(address, value)
	}
}

// Flag helpers.

func (c *cpu) setFlag(flag uint8, on bool) {
	if on {
		c.regs.P |= flag
	} else {
		c.regs.P &^= flag
	}
}

func (c *cpu) setNZ8(value uint8) {
	c.setFlag(flagZero, value == 0)
	c.setFlag(flagNegative, value&0x80 != 0)
}

func (c *cpu) setNZ16(value uint16) {
	c.setFlag(flagZero, value == 0)
	c.setFlag(flagNegative, value&0x8000 != 0)
}

// setNZM sets N and Z from a value at the current memory width.
func (c *cpu) setNZM(value uint16) {
	if c.memory8() {
		c.setNZ8(uint8(value))
	} else {
		c.setNZ16(value)
	}
}

// setNZIdx sets N and Z from a value at the current index width.
func (c *cpu) setNZIdx(value uint16) {
	if c.index8() {
		c.setNZ8(uint8(value))
	} else {
		c.setNZ16(value)
	}
}

// memCycles selects a base cycle count by memory width, indexCycles by index
// width. Most documented costs are one cycle higher for 16-bit operands.
func (c *cpu) memCycles(narrow, wide uint8) uint8 {
	if c.memory8() {
		return narrow
	}
	return wide
}

func (c *cpu) indexCycles(narrow, wide uint8) uint8 {
	if c.index8() {
		return narrow
	}
	return wide
}
