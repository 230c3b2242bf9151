package w65c816emu

// Conditional branches and BRL. A taken branch costs one extra cycle, plus
// one more when the target lies in a different page than the instruction
// following the operand.

// branchIf fetches the signed 8-bit displacement and branches when the
// condition holds. It returns the instruction's total cycle count.
func (c *cpu) branchIf(condition bool) uint8 {
	offset := int8(c.fetchU8())
	if !condition {
		return 2
	}
	pcBefore := c.regs.PC
	c.regs.PC += uint16(offset)
	if pcBefore&0xFF00 != c.regs.PC&0xFF00 {
		return 4
	}
	return 3
}

// brl is the unconditional 16-bit relative branch.
func (c *cpu) brl() uint8 {
	offset := int16(c.fetchU16())
	pcBefore := c.regs.PC
	c.regs.PC += uint16(offset)
	if pcBefore&0xFF00 != c.regs.PC&0xFF00 {
		return 5
	}
	return 4
}
