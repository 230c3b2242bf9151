package w65c816emu

// Interrupt entry and exit. Software interrupts (BRK, COP) run as dispatch
// arms; hardware interrupts enter through ServiceNMI and ServiceIRQ, which
// the scheduler calls between instructions. All vectors live in bank zero
// and entry always clears decimal mode alongside setting the IRQ disable.

// brk pushes the return state and jumps through the break vector. The opcode
// carries a dummy operand byte, so the pushed return address skips it.
func (c *cpu) brk() uint8 {
	returnPC := c.regs.PC + 1
	c.regs.PC = returnPC

	if !c.regs.EmulationMode {
		c.push8(c.regs.PB)
	}
	c.push16(returnPC)
	if c.regs.EmulationMode {
		// 6502 compatibility: break and unused bits read back as set.
		c.push8(c.regs.P | 0x30)
	} else {
		c.push8(c.regs.P)
	}

	c.regs.P |= flagIRQDisable
	c.regs.P &^= flagDecimal
	c.regs.PB = 0
	if c.regs.EmulationMode {
		c.regs.PC = c.readU16(vectorIRQEmu)
		return 7
	}
	c.regs.PC = c.readU16(vectorBRKNative)
	return 8
}

// cop is the coprocessor software interrupt. Its signature byte is consumed
// but otherwise ignored.
func (c *cpu) cop() uint8 {
	c.fetchU8()
	returnPC := c.regs.PC

	if c.regs.EmulationMode {
		c.push16(returnPC)
		c.push8((c.regs.P | 0x20) &^ 0x10)
	} else {
		c.push8(c.regs.PB)
		c.push16(returnPC)
		c.push8(c.regs.P)
	}

	c.regs.P |= flagIRQDisable
	c.regs.P &^= flagDecimal
	c.regs.PB = 0
	if c.regs.EmulationMode {
		c.regs.PC = c.readU16(vectorCOPEmu)
	} else {
		c.regs.PC = c.readU16(vectorCOPNative)
	}
	return 7
}

// rti restores P (with width side effects), the program counter, and in
// native mode the program bank.
func (c *cpu) rti() uint8 {
	prevP := c.regs.P
	c.regs.P = c.pop8()
	c.applyStatusAfterPull(prevP)
	c.regs.PC = c.pop16()
	if c.regs.EmulationMode {
		return 6
	}
	c.regs.PB = c.pop8()
	return 7
}

// ServiceNMI enters the non-maskable interrupt handler. It clears a pending
// WAI latch and acknowledges the NMI line on the bus. The entry sequence
// costs seven cycles.
func (c *cpu) ServiceNMI() uint8 {
	cycles := c.interruptEntry(vectorNMIEmu, vectorNMINative)
	c.bus.AcknowledgeNMI()
	return cycles
}

// ServiceIRQ enters the maskable interrupt handler. Masking is the caller's
// concern: schedulers check the I flag (and WAI) before invoking it.
func (c *cpu) ServiceIRQ() uint8 {
	return c.interruptEntry(vectorIRQEmu, vectorIRQNative)
}

func (c *cpu) interruptEntry(emuVector, nativeVector uint32) uint8 {
	before := c.cycles

	if c.regs.EmulationMode {
		c.push8(uint8(c.regs.PC >> 8))
		c.push8(uint8(c.regs.PC))
		c.push8((c.regs.P | 0x20) &^ 0x10)
		c.regs.PC = c.readU16(emuVector)
	} else {
		c.push8(c.regs.PB)
		c.push8(uint8(c.regs.PC >> 8))
		c.push8(uint8(c.regs.PC))
		c.push8(c.regs.P)
		c.regs.PC = c.readU16(nativeVector)
	}
	c.regs.PB = 0

	c.regs.P |= flagIRQDisable
	c.regs.P &^= flagDecimal
	c.waiting = false

	const total = 7
	if consumed := c.cycles - before; consumed < total {
		c.addCycles(uint32(total - consumed))
	}
	return total
}
