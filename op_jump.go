package w65c816emu

// The JMP family. Indirect pointers for JMP (addr) and JMP [addr] live in
// bank zero; JMP (addr,X) reads its pointer from the program bank.

// jmpAbsolute transfers control within the program bank.
func (c *cpu) jmpAbsolute() uint8 {
	c.regs.PC = c.fetchU16()
	return 3
}

// jmpLong (JML) loads both the program bank and the program counter.
func (c *cpu) jmpLong() uint8 {
	target := c.fetchU24()
	c.regs.PB = uint8(target >> 16)
	c.regs.PC = uint16(target)
	return 4
}

// jmpIndirect reads a 16-bit pointer from bank zero. The pointer high byte
// wraps within its page, preserving the classic 6502 quirk.
func (c *cpu) jmpIndirect() uint8 {
	pointer := c.fetchU16()
	lo := uint16(c.readU8(bank0(pointer)))
	hi := uint16(c.readU8(bank0(pointer&0xFF00 | (pointer+1)&0x00FF)))
	c.regs.PC = hi<<8 | lo
	return 5
}

// jmpIndirectX reads its pointer from the program bank, indexed by X.
func (c *cpu) jmpIndirectX() uint8 {
	pointer := c.fetchU16() + c.loadX()
	c.regs.PC = c.readU16(uint32(c.regs.PB)<<16 | uint32(pointer))
	return 6
}

// jmpIndirectLong reads a 24-bit pointer from bank zero and loads PB:PC.
func (c *cpu) jmpIndirectLong() uint8 {
	pointer := c.fetchU16()
	target := c.readPointer24(pointer)
	c.regs.PB = uint8(target >> 16)
	c.regs.PC = uint16(target)
	return 6
}
