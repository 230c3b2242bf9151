package w65c816emu

// Subroutine control flow: JSR/JSL and their returns. The pushed return
// address is the last operand byte, so the return instructions resume at
// popped address plus one.

// jsr pushes the 16-bit return address and jumps within the program bank.
func (c *cpu) jsr() uint8 {
	target := c.fetchU16()
	c.push16(c.regs.PC - 1)
	c.regs.PC = target
	return 6
}

// jsrIndirectX reads the target from the program bank, indexed by X.
func (c *cpu) jsrIndirectX() uint8 {
	pointer := c.fetchU16() + c.loadX()
	target := c.readU16(uint32(c.regs.PB)<<16 | uint32(pointer))
	c.push16(c.regs.PC - 1)
	c.regs.PC = target
	return 8
}

// jsl pushes the program bank too and performs a long call.
func (c *cpu) jsl() uint8 {
	target := c.fetchU24()
	c.push8(c.regs.PB)
	c.push16(c.regs.PC - 1)
	c.regs.PB = uint8(target >> 16)
	c.regs.PC = uint16(target)
	return 8
}

func (c *cpu) rts() uint8 {
	c.regs.PC = c.pop16() + 1
	return 6
}

func (c *cpu) rtl() uint8 {
	address := c.pop16()
	c.regs.PB = c.pop8()
	c.regs.PC = address + 1
	return 6
}
