package w65c816emu

// Bitwise accumulator operations. Operands are already width-masked by the
// read helpers; stores preserve the accumulator high byte in 8-bit mode.

func (c *cpu) and(operand uint16) {
	value := c.loadA() & operand
	c.storeA(value)
	c.setNZM(value)
}

func (c *cpu) ora(operand uint16) {
	value := c.loadA() | operand
	c.storeA(value)
	c.setNZM(value)
}

func (c *cpu) eor(operand uint16) {
	value := c.loadA() ^ operand
	c.storeA(value)
	c.setNZM(value)
}
