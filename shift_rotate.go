package w65c816emu

// ASL, LSR, ROL and ROR. Each core transforms a width-masked value and
// reports the new carry; the accumulator and read-modify-write wrappers share
// them.

func (c *cpu) asl(value uint16) uint16 {
	if c.memory8() {
		c.setFlag(flagCarry, value&0x80 != 0)
		value = value << 1 & 0x00FF
	} else {
		c.setFlag(flagCarry, value&0x8000 != 0)
		value <<= 1
	}
	c.setNZM(value)
	return value
}

func (c *cpu) lsr(value uint16) uint16 {
	c.setFlag(flagCarry, value&0x0001 != 0)
	value >>= 1
	c.setNZM(value)
	return value
}

func (c *cpu) rol(value uint16) uint16 {
	carryIn := uint16(c.regs.P & flagCarry)
	if c.memory8() {
		c.setFlag(flagCarry, value&0x80 != 0)
		value = (value<<1 | carryIn) & 0x00FF
	} else {
		c.setFlag(flagCarry, value&0x8000 != 0)
		value = value<<1 | carryIn
	}
	c.setNZM(value)
	return value
}

func (c *cpu) ror(value uint16) uint16 {
	carryIn := uint16(c.regs.P & flagCarry)
	c.setFlag(flagCarry, value&0x0001 != 0)
	if c.memory8() {
		value = value>>1 | carryIn<<7
	} else {
		value = value>>1 | carryIn<<15
	}
	c.setNZM(value)
	return value
}

// shiftA applies a shift core to the accumulator.
func (c *cpu) shiftA(op func(uint16) uint16) {
	c.storeA(op(c.loadA()))
}

// shiftMem applies a shift core to memory in place.
func (c *cpu) shiftMem(address uint32, op func(uint16) uint16) {
	c.writeM(address, op(c.readM(address)))
}
