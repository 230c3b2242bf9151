package w65c816emu

// BIT, TSB and TRB.

// bit tests memory against the accumulator: Z from the AND, N and V copied
// from the two top operand bits.
func (c *cpu) bit(operand uint16) {
	c.setFlag(flagZero, c.loadA()&operand == 0)
	if c.memory8() {
		c.setFlag(flagNegative, operand&0x80 != 0)
		c.setFlag(flagOverflow, operand&0x40 != 0)
	} else {
		c.setFlag(flagNegative, operand&0x8000 != 0)
		c.setFlag(flagOverflow, operand&0x4000 != 0)
	}
}

// bitImmediate is the immediate form, which only affects Z.
func (c *cpu) bitImmediate(operand uint16) {
	c.setFlag(flagZero, c.loadA()&operand == 0)
}

// tsb sets the accumulator bits in memory; Z reflects the pre-write AND.
func (c *cpu) tsb(address uint32) {
	value := c.readM(address)
	a := c.loadA()
	c.setFlag(flagZero, value&a == 0)
	c.writeM(address, value|a)
}

// trb clears the accumulator bits in memory; Z reflects the pre-write AND.
func (c *cpu) trb(address uint32) {
	value := c.readM(address)
	a := c.loadA()
	c.setFlag(flagZero, value&a == 0)
	c.writeM(address, value&^a)
}
