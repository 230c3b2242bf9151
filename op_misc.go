package w65c816emu

// Register transfers, the exchange and block-move instructions, and the
// processor stall pair WAI/STP.

// tax and tay copy the accumulator into an index register at the current
// index width.
func (c *cpu) tax() uint8 {
	c.storeX(c.regs.A)
	c.setNZIdx(c.regs.A)
	return 2
}

func (c *cpu) tay() uint8 {
	c.storeY(c.regs.A)
	c.setNZIdx(c.regs.A)
	return 2
}

// txa and tya copy an index register into the accumulator at the current
// memory width.
func (c *cpu) txa() uint8 {
	c.storeA(c.regs.X)
	c.setNZM(c.regs.X)
	return 2
}

func (c *cpu) tya() uint8 {
	c.storeA(c.regs.Y)
	c.setNZM(c.regs.Y)
	return 2
}

func (c *cpu) txy() uint8 {
	c.storeY(c.regs.X)
	c.setNZIdx(c.regs.X)
	return 2
}

func (c *cpu) tyx() uint8 {
	c.storeX(c.regs.Y)
	c.setNZIdx(c.regs.Y)
	return 2
}

// txs loads the stack pointer from X without touching flags. Emulation mode
// pins the high byte to page one.
func (c *cpu) txs() uint8 {
	if c.regs.EmulationMode {
		c.regs.SP = 0x0100 | c.regs.X&0x00FF
	} else {
		c.regs.SP = c.regs.X
	}
	return 2
}

func (c *cpu) tsx() uint8 {
	c.storeX(c.regs.SP)
	c.setNZIdx(c.regs.SP)
	return 2
}

// tcs, tsc, tcd and tdc always move all sixteen bits regardless of the M
// flag. TCS sets no flags.
func (c *cpu) tcs() uint8 {
	c.regs.SP = c.regs.A
	return 2
}

func (c *cpu) tsc() uint8 {
	c.regs.A = c.regs.SP
	c.setNZ16(c.regs.A)
	return 2
}

func (c *cpu) tcd() uint8 {
	c.regs.DP = c.regs.A
	c.setNZ16(c.regs.DP)
	return 2
}

func (c *cpu) tdc() uint8 {
	c.regs.A = c.regs.DP
	c.setNZ16(c.regs.A)
	return 2
}

// xba swaps the accumulator bytes; N and Z always reflect the new low byte.
func (c *cpu) xba() uint8 {
	c.regs.A = c.regs.A<<8 | c.regs.A>>8
	c.setNZ8(uint8(c.regs.A))
	return 3
}

// blockMove implements MVP (delta -1) and MVN (delta +1). Object code
// carries the destination bank first. One byte moves per execution; the
// program counter rewinds so the instruction refetches until the 16-bit
// count in A underflows.
func (c *cpu) blockMove(delta uint16) uint8 {
	destBank := c.fetchU8()
	srcBank := c.fetchU8()
	value := c.readU8(uint32(srcBank)<<16 | uint32(c.regs.X))
	c.writeU8(uint32(destBank)<<16|uint32(c.regs.Y), value)
	c.regs.X += delta
	c.regs.Y += delta
	c.regs.A--
	if c.regs.A != 0xFFFF {
		c.regs.PC -= 3
	}
	return 7
}

// wdm consumes its signature byte and does nothing else.
func (c *cpu) wdm() uint8 {
	c.fetchU8()
	return 2
}

func (c *cpu) nop() uint8 {
	return 2
}

// wai stalls the core until ServiceNMI or ServiceIRQ clears the latch.
func (c *cpu) wai() uint8 {
	c.waiting = true
	return 3
}

// stp halts the core until Reset.
func (c *cpu) stp() uint8 {
	c.stopped = true
	return 3
}
