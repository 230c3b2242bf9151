package w65c816emu

// Register loads and stores. Loads set N and Z at the register's width;
// stores never touch flags.

func (c *cpu) lda(operand uint16) {
	c.storeA(operand)
	c.setNZM(operand)
}

func (c *cpu) ldx(operand uint16) {
	c.storeX(operand)
	c.setNZIdx(operand)
}

func (c *cpu) ldy(operand uint16) {
	c.storeY(operand)
	c.setNZIdx(operand)
}

func (c *cpu) sta(address uint32) {
	c.writeM(address, c.loadA())
}

func (c *cpu) stx(address uint32) {
	c.writeIdx(address, c.loadX())
}

func (c *cpu) sty(address uint32) {
	c.writeIdx(address, c.loadY())
}
