package w65c816emu

// ADC, SBC, CMP/CPX/CPY and the increment/decrement group. The add and
// subtract cores honor the decimal flag; overflow always derives from the
// binary result even in decimal mode.

// adc adds an operand to the accumulator at the current memory width.
func (c *cpu) adc(operand uint16) {
	var carryIn uint16
	if c.regs.P&flagCarry != 0 {
		carryIn = 1
	}
	a := c.regs.A

	if c.regs.P&flagDecimal != 0 {
		if c.memory8() {
			a8, b8 := uint8(a), uint8(operand)
			binary := uint16(a8) + uint16(b8) + carryIn
			result, carryOut := bcdAdd8(a8, b8, carryIn != 0)
			c.setFlag(flagCarry, carryOut)
			c.setFlag(flagOverflow, ^(a8^b8)&(a8^uint8(binary))&0x80 != 0)
			c.regs.A = a&0xFF00 | uint16(result)
		} else {
			binary := uint32(a) + uint32(operand) + uint32(carryIn)
			lo, carryLo := bcdAdd8(uint8(a), uint8(operand), carryIn != 0)
			hi, carryHi := bcdAdd8(uint8(a>>8), uint8(operand>>8), carryLo)
			c.setFlag(flagCarry, carryHi)
			c.setFlag(flagOverflow, ^(a^operand)&(a^uint16(binary))&0x8000 != 0)
			c.regs.A = uint16(hi)<<8 | uint16(lo)
		}
	} else if c.memory8() {
		lo := a & 0x00FF
		op := operand & 0x00FF
		result := lo + op + carryIn
		c.setFlag(flagCarry, result > 0xFF)
		c.setFlag(flagOverflow, ^(lo^op)&(lo^result)&0x80 != 0)
		c.regs.A = a&0xFF00 | result&0x00FF
	} else {
		result := uint32(a) + uint32(operand) + uint32(carryIn)
		c.setFlag(flagCarry, result > 0xFFFF)
		c.setFlag(flagOverflow, ^(a^operand)&(a^uint16(result))&0x8000 != 0)
		c.regs.A = uint16(result)
	}

	c.setNZM(c.regs.A)
}

// sbc subtracts an operand from the accumulator; a clear carry borrows.
func (c *cpu) sbc(operand uint16) {
	var borrowIn uint16
	if c.regs.P&flagCarry == 0 {
		borrowIn = 1
	}
	a := c.regs.A

	if c.regs.P&flagDecimal != 0 {
		if c.memory8() {
			a8, b8 := uint8(a), uint8(operand)
			binary := uint8(int16(a8) - int16(b8) - int16(borrowIn))
			result, noBorrow := bcdSub8(a8, b8, borrowIn != 0)
			c.setFlag(flagCarry, noBorrow)
			c.setFlag(flagOverflow, (a8^b8)&(a8^binary)&0x80 != 0)
			c.regs.A = a&0xFF00 | uint16(result)
		} else {
			binary := uint16(int32(a) - int32(operand) - int32(borrowIn))
			lo, noBorrowLo := bcdSub8(uint8(a), uint8(operand), borrowIn != 0)
			hi, noBorrowHi := bcdSub8(uint8(a>>8), uint8(operand>>8), noBorrowLo)
			c.setFlag(flagCarry, noBorrowHi)
			c.setFlag(flagOverflow, (a^operand)&(a^binary)&0x8000 != 0)
			c.regs.A = uint16(hi)<<8 | uint16(lo)
		}
	} else if c.memory8() {
		lo := a & 0x00FF
		op := operand & 0x00FF
		result := int16(lo) - int16(op) - int16(borrowIn)
		c.setFlag(flagCarry, result >= 0)
		c.setFlag(flagOverflow, (lo^op)&(lo^uint16(result))&0x80 != 0)
		c.regs.A = a&0xFF00 | uint16(result)&0x00FF
	} else {
		result := int32(a) - int32(operand) - int32(borrowIn)
		c.setFlag(flagCarry, result >= 0)
		c.setFlag(flagOverflow, (a^operand)&(a^uint16(result))&0x8000 != 0)
		c.regs.A = uint16(result)
	}

	c.setNZM(c.regs.A)
}

// compareM implements CMP: a width-masked subtraction that only sets flags.
func (c *cpu) compareM(operand uint16) {
	reg := c.loadA()
	diff := reg - operand
	c.setFlag(flagCarry, reg >= operand)
	c.setNZM(diff)
}

// compareIdx implements CPX and CPY at the current index width.
func (c *cpu) compareIdx(reg, operand uint16) {
	diff := reg - operand
	c.setFlag(flagCarry, reg >= operand)
	c.setNZIdx(diff)
}

// incMem and decMem are the read-modify-write forms of INC and DEC.
func (c *cpu) incMem(address uint32) {
	value := c.readM(address) + 1
	c.writeM(address, value)
	c.setNZM(value)
}

func (c *cpu) decMem(address uint32) {
	value := c.readM(address) - 1
	c.writeM(address, value)
	c.setNZM(value)
}

func (c *cpu) incA() {
	value := c.loadA() + 1
	c.storeA(value)
	c.setNZM(value)
}

func (c *cpu) decA() {
	value := c.loadA() - 1
	c.storeA(value)
	c.setNZM(value)
}
