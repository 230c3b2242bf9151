package w65c816emu

// Effective address resolution. Each resolver fetches its own operand bytes
// (charging one cycle per byte) and returns the 24-bit data address together
// with the documented extra-cycle penalty for that mode. Data reads at the
// resolved address never charge; the dispatch arm's total covers them.

// dpPenalty is the one-cycle surcharge paid whenever the direct page register
// is not page aligned.
func (c *cpu) dpPenalty() uint8 {
	if c.regs.DP&0x00FF != 0 {
		return 1
	}
	return 0
}

// crossPenalty is the one-cycle surcharge for indexed modes whose low-byte
// addition carries into the high byte.
func crossPenalty(base, index uint16) uint8 {
	if base&0x00FF+index&0x00FF >= 0x100 {
		return 1
	}
	return 0
}

// bank0 confines a 16-bit computed address to bank zero.
func bank0(address uint16) uint32 {
	return uint32(address)
}

// readPointer16 reads a 16-bit pointer from bank zero, wrapping at the bank
// boundary rather than carrying into bank one.
func (c *cpu) readPointer16(address uint16) uint16 {
	lo := uint16(c.readU8(bank0(address)))
	hi := uint16(c.readU8(bank0(address + 1)))
	return hi<<8 | lo
}

// readPointer24 reads a 24-bit pointer from bank zero with the same wrap.
func (c *cpu) readPointer24(address uint16) uint32 {
	lo := uint32(c.readU8(bank0(address)))
	mid := uint32(c.readU8(bank0(address + 1)))
	hi := uint32(c.readU8(bank0(address + 2)))
	return hi<<16 | mid<<8 | lo
}

// eaDirect resolves dp: bank zero, direct page plus offset.
func (c *cpu) eaDirect() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	return bank0(c.regs.DP + offset), c.dpPenalty()
}

// eaDirectX resolves dp,X.
func (c *cpu) eaDirectX() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	return bank0(c.regs.DP + offset + c.loadX()), c.dpPenalty()
}

// eaDirectY resolves dp,Y.
func (c *cpu) eaDirectY() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	return bank0(c.regs.DP + offset + c.loadY()), c.dpPenalty()
}

// eaAbsolute resolves addr: data bank plus 16-bit offset.
func (c *cpu) eaAbsolute() (uint32, uint8) {
	return uint32(c.regs.DB)<<16 | uint32(c.fetchU16()), 0
}

// eaAbsoluteX resolves addr,X. The indexed sum wraps within the data bank.
func (c *cpu) eaAbsoluteX() (uint32, uint8) {
	base := c.fetchU16()
	index := c.loadX()
	return uint32(c.regs.DB)<<16 | uint32(base+index), crossPenalty(base, index)
}

// eaAbsoluteY resolves addr,Y.
func (c *cpu) eaAbsoluteY() (uint32, uint8) {
	base := c.fetchU16()
	index := c.loadY()
	return uint32(c.regs.DB)<<16 | uint32(base+index), crossPenalty(base, index)
}

// eaLong resolves long: a full 24-bit operand address.
func (c *cpu) eaLong() (uint32, uint8) {
	return c.fetchU24(), 0
}

// eaLongX resolves long,X.
func (c *cpu) eaLongX() (uint32, uint8) {
	return (c.fetchU24() + uint32(c.loadX())) & 0xFFFFFF, 0
}

// eaIndirect resolves (dp): 16-bit pointer in bank zero, target in the data
// bank.
func (c *cpu) eaIndirect() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	pointer := c.readPointer16(c.regs.DP + offset)
	return uint32(c.regs.DB)<<16 | uint32(pointer), c.dpPenalty()
}

// eaIndirectX resolves (dp,X): the index is applied to the pointer address.
func (c *cpu) eaIndirectX() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	pointer := c.readPointer16(c.regs.DP + offset + c.loadX())
	return uint32(c.regs.DB)<<16 | uint32(pointer), c.dpPenalty()
}

// eaIndirectY resolves (dp),Y: the index is applied after the pointer read,
// wrapping within the data bank. Both the direct page and page crossing
// surcharges can apply.
func (c *cpu) eaIndirectY() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	pointer := c.readPointer16(c.regs.DP + offset)
	index := c.loadY()
	addr := uint32(c.regs.DB)<<16 | uint32(pointer+index)
	return addr, c.dpPenalty() + crossPenalty(pointer, index)
}

// eaIndirectLong resolves [dp]: 24-bit pointer in bank zero.
func (c *cpu) eaIndirectLong() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	return c.readPointer24(c.regs.DP + offset), c.dpPenalty()
}

// eaIndirectLongY resolves [dp],Y.
func (c *cpu) eaIndirectLongY() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	pointer := c.readPointer24(c.regs.DP + offset)
	return (pointer + uint32(c.loadY())) & 0xFFFFFF, c.dpPenalty()
}

// eaStackRelative resolves sr,S: bank zero, stack pointer plus offset.
func (c *cpu) eaStackRelative() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	return bank0(c.regs.SP + offset), 0
}

// eaStackRelativeY resolves (sr,S),Y: 16-bit pointer at the stack-relative
// address, indexed into the data bank.
func (c *cpu) eaStackRelativeY() (uint32, uint8) {
	offset := uint16(c.fetchU8())
	pointer := c.readPointer16(c.regs.SP + offset)
	index := c.loadY()
	addr := uint32(c.regs.DB)<<16 | uint32(pointer+index)
	return addr, crossPenalty(pointer, index)
}
