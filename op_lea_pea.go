package w65c816emu

// The push-effective-address group. All three push a 16-bit value without
// touching flags or registers.

// pea pushes the immediate 16-bit operand.
func (c *cpu) pea() uint8 {
	c.push16(c.fetchU16())
	return 5
}

// pei pushes the 16-bit value found at the direct page address.
func (c *cpu) pei() uint8 {
	offset := uint16(c.fetchU8())
	c.push16(c.readU16(bank0(c.regs.DP + offset)))
	return 6
}

// per pushes the program counter displaced by the signed 16-bit operand.
func (c *cpu) per() uint8 {
	offset := int16(c.fetchU16())
	c.push16(c.regs.PC + uint16(offset))
	return 6
}
