package w65c816emu

import "fmt"

// execute runs one decoded opcode and returns its total cycle cost, including
// any addressing-mode penalties but excluding the fetch-region speed penalty
// that Step applies afterwards. The switch covers all 256 opcodes.
func (c *cpu) execute(opcode uint8) uint8 {
	switch opcode {

	// Interrupts and returns.
	case 0x00:
		return c.brk()
	case 0x02:
		return c.cop()
	case 0x40:
		return c.rti()

	// ORA. The indexed and indirect forms cost the same at either width;
	// only absolute,Y and immediate pay for the wider operand.
	case 0x09:
		c.ora(c.fetchM())
		return c.memCycles(2, 3)
	case 0x05:
		addr, p := c.eaDirect()
		c.ora(c.readM(addr))
		return 3 + p
	case 0x15:
		addr, p := c.eaDirectX()
		c.ora(c.readM(addr))
		return 4 + p
	case 0x0D:
		addr, _ := c.eaAbsolute()
		c.ora(c.readM(addr))
		return 4
	case 0x1D:
		addr, p := c.eaAbsoluteX()
		c.ora(c.readM(addr))
		return 4 + p
	case 0x19:
		addr, p := c.eaAbsoluteY()
		c.ora(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x0F:
		addr, _ := c.eaLong()
		c.ora(c.readM(addr))
		return 5
	case 0x1F:
		addr, _ := c.eaLongX()
		c.ora(c.readM(addr))
		return 5
	case 0x01:
		addr, p := c.eaIndirectX()
		c.ora(c.readM(addr))
		return 6 + p
	case 0x11:
		addr, p := c.eaIndirectY()
		c.ora(c.readM(addr))
		return 5 + p
	case 0x12:
		addr, p := c.eaIndirect()
		c.ora(c.readM(addr))
		return 5 + p
	case 0x07:
		addr, p := c.eaIndirectLong()
		c.ora(c.readM(addr))
		return 6 + p
	case 0x17:
		addr, p := c.eaIndirectLongY()
		c.ora(c.readM(addr))
		return 6 + p
	case 0x03:
		addr, _ := c.eaStackRelative()
		c.ora(c.readM(addr))
		return 4
	case 0x13:
		addr, p := c.eaStackRelativeY()
		c.ora(c.readM(addr))
		return 7 + p

	// AND.
	case 0x29:
		c.and(c.fetchM())
		return c.memCycles(2, 3)
	case 0x25:
		addr, p := c.eaDirect()
		c.and(c.readM(addr))
		return c.memCycles(3, 4) + p
	case 0x35:
		addr, p := c.eaDirectX()
		c.and(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x2D:
		addr, _ := c.eaAbsolute()
		c.and(c.readM(addr))
		return c.memCycles(4, 5)
	case 0x3D:
		addr, p := c.eaAbsoluteX()
		c.and(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x39:
		addr, p := c.eaAbsoluteY()
		c.and(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x2F:
		addr, _ := c.eaLong()
		c.and(c.readM(addr))
		return c.memCycles(5, 6)
	case 0x3F:
		addr, _ := c.eaLongX()
		c.and(c.readM(addr))
		return c.memCycles(5, 6)
	case 0x21:
		addr, p := c.eaIndirectX()
		c.and(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x31:
		addr, p := c.eaIndirectY()
		c.and(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0x32:
		addr, p := c.eaIndirect()
		c.and(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0x27:
		addr, p := c.eaIndirectLong()
		c.and(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x37:
		addr, p := c.eaIndirectLongY()
		c.and(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x23:
		addr, _ := c.eaStackRelative()
		c.and(c.readM(addr))
		return c.memCycles(4, 5)
	case 0x33:
		addr, p := c.eaStackRelativeY()
		c.and(c.readM(addr))
		return c.memCycles(7, 8) + p

	// EOR.
	case 0x49:
		c.eor(c.fetchM())
		return c.memCycles(2, 3)
	case 0x45:
		addr, p := c.eaDirect()
		c.eor(c.readM(addr))
		return c.memCycles(3, 4) + p
	case 0x55:
		addr, p := c.eaDirectX()
		c.eor(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x4D:
		addr, _ := c.eaAbsolute()
		c.eor(c.readM(addr))
		return c.memCycles(4, 5)
	case 0x5D:
		addr, p := c.eaAbsoluteX()
		c.eor(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x59:
		addr, p := c.eaAbsoluteY()
		c.eor(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x4F:
		addr, _ := c.eaLong()
		c.eor(c.readM(addr))
		return c.memCycles(5, 6)
	case 0x5F:
		addr, _ := c.eaLongX()
		c.eor(c.readM(addr))
		return c.memCycles(5, 6)
	case 0x41:
		addr, p := c.eaIndirectX()
		c.eor(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x51:
		addr, p := c.eaIndirectY()
		c.eor(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0x52:
		addr, p := c.eaIndirect()
		c.eor(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0x47:
		addr, p := c.eaIndirectLong()
		c.eor(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x57:
		addr, p := c.eaIndirectLongY()
		c.eor(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x43:
		addr, _ := c.eaStackRelative()
		c.eor(c.readM(addr))
		return c.memCycles(4, 5)
	case 0x53:
		addr, p := c.eaStackRelativeY()
		c.eor(c.readM(addr))
		return c.memCycles(7, 8) + p

	// ADC.
	case 0x69:
		c.adc(c.fetchM())
		return c.memCycles(2, 3)
	case 0x65:
		addr, p := c.eaDirect()
		c.adc(c.readM(addr))
		return c.memCycles(3, 4) + p
	case 0x75:
		addr, p := c.eaDirectX()
		c.adc(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x6D:
		addr, _ := c.eaAbsolute()
		c.adc(c.readM(addr))
		return c.memCycles(4, 5)
	case 0x7D:
		addr, p := c.eaAbsoluteX()
		c.adc(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x79:
		addr, p := c.eaAbsoluteY()
		c.adc(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0x6F:
		addr, _ := c.eaLong()
		c.adc(c.readM(addr))
		return c.memCycles(5, 6)
	case 0x7F:
		addr, _ := c.eaLongX()
		c.adc(c.readM(addr))
		return c.memCycles(5, 6)
	case 0x61:
		addr, p := c.eaIndirectX()
		c.adc(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x71:
		addr, p := c.eaIndirectY()
		c.adc(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0x72:
		addr, p := c.eaIndirect()
		c.adc(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0x67:
		addr, p := c.eaIndirectLong()
		c.adc(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x77:
		addr, p := c.eaIndirectLongY()
		c.adc(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0x63:
		addr, _ := c.eaStackRelative()
		c.adc(c.readM(addr))
		return c.memCycles(4, 5)
	case 0x73:
		addr, p := c.eaStackRelativeY()
		c.adc(c.readM(addr))
		return c.memCycles(7, 8) + p

	// SBC.
	case 0xE9:
		c.sbc(c.fetchM())
		return c.memCycles(2, 3)
	case 0xE5:
		addr, p := c.eaDirect()
		c.sbc(c.readM(addr))
		return c.memCycles(3, 4) + p
	case 0xF5:
		addr, p := c.eaDirectX()
		c.sbc(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0xED:
		addr, _ := c.eaAbsolute()
		c.sbc(c.readM(addr))
		return c.memCycles(4, 5)
	case 0xFD:
		addr, p := c.eaAbsoluteX()
		c.sbc(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0xF9:
		addr, p := c.eaAbsoluteY()
		c.sbc(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0xEF:
		addr, _ := c.eaLong()
		c.sbc(c.readM(addr))
		return c.memCycles(5, 6)
	case 0xFF:
		addr, _ := c.eaLongX()
		c.sbc(c.readM(addr))
		return c.memCycles(5, 6)
	case 0xE1:
		addr, p := c.eaIndirectX()
		c.sbc(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0xF1:
		addr, p := c.eaIndirectY()
		c.sbc(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0xF2:
		addr, p := c.eaIndirect()
		c.sbc(c.readM(addr))
		return c.memCycles(5, 6) + p
	case 0xE7:
		addr, p := c.eaIndirectLong()
		c.sbc(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0xF7:
		addr, p := c.eaIndirectLongY()
		c.sbc(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0xE3:
		addr, _ := c.eaStackRelative()
		c.sbc(c.readM(addr))
		return c.memCycles(4, 5)
	case 0xF3:
		addr, p := c.eaStackRelativeY()
		c.sbc(c.readM(addr))
		return c.memCycles(7, 8) + p

	// CMP.
	case 0xC9:
		c.compareM(c.fetchM())
		return 2
	case 0xC5:
		addr, p := c.eaDirect()
		c.compareM(c.readM(addr))
		return c.memCycles(3, 4) + p
	case 0xD5:
		addr, p := c.eaDirectX()
		c.compareM(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0xCD:
		addr, _ := c.eaAbsolute()
		c.compareM(c.readM(addr))
		return 4
	case 0xDD:
		addr, p := c.eaAbsoluteX()
		c.compareM(c.readM(addr))
		return 4 + p
	case 0xD9:
		addr, p := c.eaAbsoluteY()
		c.compareM(c.readM(addr))
		return 4 + p
	case 0xCF:
		addr, _ := c.eaLong()
		c.compareM(c.readM(addr))
		return 5
	case 0xDF:
		addr, _ := c.eaLongX()
		c.compareM(c.readM(addr))
		return c.memCycles(5, 6)
	case 0xC1:
		addr, p := c.eaIndirectX()
		c.compareM(c.readM(addr))
		return c.memCycles(6, 7) + p
	case 0xD1:
		addr, p := c.eaIndirectY()
		c.compareM(c.readM(addr))
		return 5 + p
	case 0xD2:
		addr, p := c.eaIndirect()
		c.compareM(c.readM(addr))
		return 5 + p
	case 0xC7:
		addr, p := c.eaIndirectLong()
		c.compareM(c.readM(addr))
		return 6 + p
	case 0xD7:
		addr, p := c.eaIndirectLongY()
		c.compareM(c.readM(addr))
		return 6 + p
	case 0xC3:
		addr, _ := c.eaStackRelative()
		c.compareM(c.readM(addr))
		return c.memCycles(4, 5)
	case 0xD3:
		addr, p := c.eaStackRelativeY()
		c.compareM(c.readM(addr))
		return c.memCycles(7, 8) + p

	// CPX and CPY.
	case 0xE0:
		c.compareIdx(c.loadX(), c.fetchIdx())
		return 2
	case 0xE4:
		addr, p := c.eaDirect()
		c.compareIdx(c.loadX(), c.readIdx(addr))
		return c.indexCycles(3, 4) + p
	case 0xEC:
		addr, _ := c.eaAbsolute()
		c.compareIdx(c.loadX(), c.readIdx(addr))
		return 4
	case 0xC0:
		c.compareIdx(c.loadY(), c.fetchIdx())
		return 2
	case 0xC4:
		addr, p := c.eaDirect()
		c.compareIdx(c.loadY(), c.readIdx(addr))
		return c.indexCycles(3, 4) + p
	case 0xCC:
		addr, _ := c.eaAbsolute()
		c.compareIdx(c.loadY(), c.readIdx(addr))
		return c.indexCycles(4, 5)

	// BIT, TSB, TRB.
	case 0x89:
		c.bitImmediate(c.fetchM())
		return c.memCycles(2, 3)
	case 0x24:
		addr, p := c.eaDirect()
		c.bit(c.readM(addr))
		return 3 + p
	case 0x34:
		addr, p := c.eaDirectX()
		c.bit(c.readM(addr))
		return 4 + p
	case 0x2C:
		addr, _ := c.eaAbsolute()
		c.bit(c.readM(addr))
		return 4
	case 0x3C:
		addr, p := c.eaAbsoluteX()
		c.bit(c.readM(addr))
		return 4 + p
	case 0x04:
		addr, p := c.eaDirect()
		c.tsb(addr)
		return 5 + p
	case 0x0C:
		addr, _ := c.eaAbsolute()
		c.tsb(addr)
		return c.memCycles(6, 8)
	case 0x14:
		addr, p := c.eaDirect()
		c.trb(addr)
		return c.memCycles(5, 6) + p
	case 0x1C:
		addr, _ := c.eaAbsolute()
		c.trb(addr)
		return 6

	// Shifts and rotates.
	case 0x0A:
		c.shiftA(c.asl)
		return 2
	case 0x06:
		addr, p := c.eaDirect()
		c.shiftMem(addr, c.asl)
		return 5 + p
	case 0x16:
		addr, p := c.eaDirectX()
		c.shiftMem(addr, c.asl)
		return 6 + p
	case 0x0E:
		addr, _ := c.eaAbsolute()
		c.shiftMem(addr, c.asl)
		return 6
	case 0x1E:
		addr, p := c.eaAbsoluteX()
		c.shiftMem(addr, c.asl)
		return 7 + p
	case 0x2A:
		c.shiftA(c.rol)
		return 2
	case 0x26:
		addr, p := c.eaDirect()
		c.shiftMem(addr, c.rol)
		return 5 + p
	case 0x36:
		addr, p := c.eaDirectX()
		c.shiftMem(addr, c.rol)
		return 6 + p
	case 0x2E:
		addr, _ := c.eaAbsolute()
		c.shiftMem(addr, c.rol)
		return 6
	case 0x3E:
		addr, p := c.eaAbsoluteX()
		c.shiftMem(addr, c.rol)
		return 7 + p
	case 0x4A:
		c.shiftA(c.lsr)
		return 2
	case 0x46:
		addr, p := c.eaDirect()
		c.shiftMem(addr, c.lsr)
		return 5 + p
	case 0x56:
		addr, p := c.eaDirectX()
		c.shiftMem(addr, c.lsr)
		return 6 + p
	case 0x4E:
		addr, _ := c.eaAbsolute()
		c.shiftMem(addr, c.lsr)
		return 6
	case 0x5E:
		addr, p := c.eaAbsoluteX()
		c.shiftMem(addr, c.lsr)
		return 7 + p
	case 0x6A:
		c.shiftA(c.ror)
		return 2
	case 0x66:
		addr, p := c.eaDirect()
		c.shiftMem(addr, c.ror)
		return 5 + p
	case 0x76:
		addr, p := c.eaDirectX()
		c.shiftMem(addr, c.ror)
		return 6 + p
	case 0x6E:
		addr, _ := c.eaAbsolute()
		c.shiftMem(addr, c.ror)
		return 6
	case 0x7E:
		addr, p := c.eaAbsoluteX()
		c.shiftMem(addr, c.ror)
		return 7 + p

	// LDA.
	case 0xA9:
		c.lda(c.fetchM())
		return c.memCycles(2, 3)
	case 0xA5:
		addr, p := c.eaDirect()
		c.lda(c.readM(addr))
		return c.memCycles(3, 4) + p
	case 0xB5:
		addr, p := c.eaDirectX()
		c.lda(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0xAD:
		addr, _ := c.eaAbsolute()
		c.lda(c.readM(addr))
		return 4
	case 0xBD:
		addr, p := c.eaAbsoluteX()
		c.lda(c.readM(addr))
		return 4 + p
	case 0xB9:
		addr, p := c.eaAbsoluteY()
		c.lda(c.readM(addr))
		return c.memCycles(4, 5) + p
	case 0xAF:
		addr, _ := c.eaLong()
		c.lda(c.readM(addr))
		return 5
	case 0xBF:
		addr, _ := c.eaLongX()
		c.lda(c.readM(addr))
		return 5
	case 0xA1:
		addr, p := c.eaIndirectX()
		c.lda(c.readM(addr))
		return 6 + p
	case 0xB1:
		addr, p := c.eaIndirectY()
		c.lda(c.readM(addr))
		return 5 + p
	case 0xB2:
		addr, p := c.eaIndirect()
		c.lda(c.readM(addr))
		return 5 + p
	case 0xA7:
		addr, p := c.eaIndirectLong()
		c.lda(c.readM(addr))
		return 6 + p
	case 0xB7:
		addr, p := c.eaIndirectLongY()
		c.lda(c.readM(addr))
		return 6 + p
	case 0xA3:
		addr, _ := c.eaStackRelative()
		c.lda(c.readM(addr))
		return 4
	case 0xB3:
		addr, p := c.eaStackRelativeY()
		c.lda(c.readM(addr))
		return c.memCycles(7, 8) + p

	// LDX and LDY.
	case 0xA2:
		c.ldx(c.fetchIdx())
		return c.indexCycles(2, 3)
	case 0xA6:
		addr, p := c.eaDirect()
		c.ldx(c.readIdx(addr))
		return c.indexCycles(3, 4) + p
	case 0xB6:
		addr, p := c.eaDirectY()
		c.ldx(c.readIdx(addr))
		return c.indexCycles(4, 5) + p
	case 0xAE:
		addr, _ := c.eaAbsolute()
		c.ldx(c.readIdx(addr))
		return 4
	case 0xBE:
		addr, p := c.eaAbsoluteY()
		c.ldx(c.readIdx(addr))
		return c.indexCycles(4, 5) + p
	case 0xA0:
		c.ldy(c.fetchIdx())
		return c.indexCycles(2, 3)
	case 0xA4:
		addr, p := c.eaDirect()
		c.ldy(c.readIdx(addr))
		return c.indexCycles(3, 4) + p
	case 0xB4:
		addr, p := c.eaDirectX()
		c.ldy(c.readIdx(addr))
		return c.indexCycles(4, 5) + p
	case 0xAC:
		addr, _ := c.eaAbsolute()
		c.ldy(c.readIdx(addr))
		return 4
	case 0xBC:
		addr, p := c.eaAbsoluteX()
		c.ldy(c.readIdx(addr))
		return 4 + p

	// STA.
	case 0x85:
		addr, p := c.eaDirect()
		c.sta(addr)
		return c.memCycles(3, 4) + p
	case 0x95:
		addr, p := c.eaDirectX()
		c.sta(addr)
		return 4 + p
	case 0x8D:
		addr, _ := c.eaAbsolute()
		c.sta(addr)
		return c.memCycles(4, 5)
	case 0x9D:
		addr, p := c.eaAbsoluteX()
		c.sta(addr)
		return 5 + p
	case 0x99:
		addr, p := c.eaAbsoluteY()
		c.sta(addr)
		return 5 + p
	case 0x8F:
		addr, _ := c.eaLong()
		c.sta(addr)
		return c.memCycles(5, 6)
	case 0x9F:
		addr, _ := c.eaLongX()
		c.sta(addr)
		return 5
	case 0x81:
		addr, p := c.eaIndirectX()
		c.sta(addr)
		return 6 + p
	case 0x91:
		addr, p := c.eaIndirectY()
		c.sta(addr)
		return 6 + p
	case 0x92:
		addr, p := c.eaIndirect()
		c.sta(addr)
		return 5 + p
	case 0x87:
		addr, p := c.eaIndirectLong()
		c.sta(addr)
		return 6 + p
	case 0x97:
		addr, p := c.eaIndirectLongY()
		c.sta(addr)
		return 6 + p
	case 0x83:
		addr, _ := c.eaStackRelative()
		c.sta(addr)
		return 4
	case 0x93:
		addr, p := c.eaStackRelativeY()
		c.sta(addr)
		return 7 + p

	// STX, STY, STZ.
	case 0x86:
		addr, p := c.eaDirect()
		c.stx(addr)
		return c.indexCycles(3, 4) + p
	case 0x96:
		addr, p := c.eaDirectY()
		c.stx(addr)
		return c.indexCycles(4, 5) + p
	case 0x8E:
		addr, _ := c.eaAbsolute()
		c.stx(addr)
		return c.indexCycles(4, 5)
	case 0x84:
		addr, p := c.eaDirect()
		c.sty(addr)
		return c.indexCycles(3, 4) + p
	case 0x94:
		addr, p := c.eaDirectX()
		c.sty(addr)
		return 4 + p
	case 0x8C:
		addr, _ := c.eaAbsolute()
		c.sty(addr)
		return c.indexCycles(4, 5)
	case 0x64:
		addr, p := c.eaDirect()
		c.stz(addr)
		return 3 + p
	case 0x74:
		addr, p := c.eaDirectX()
		c.stz(addr)
		return 4 + p
	case 0x9C:
		addr, _ := c.eaAbsolute()
		c.stz(addr)
		return 4
	case 0x9E:
		addr, p := c.eaAbsoluteX()
		c.stz(addr)
		return 5 + p

	// INC and DEC.
	case 0x1A:
		c.incA()
		return 2
	case 0x3A:
		c.decA()
		return 2
	case 0xE6:
		addr, p := c.eaDirect()
		c.incMem(addr)
		return 5 + p
	case 0xF6:
		addr, p := c.eaDirectX()
		c.incMem(addr)
		return 6 + p
	case 0xEE:
		addr, _ := c.eaAbsolute()
		c.incMem(addr)
		return 6
	case 0xFE:
		addr, p := c.eaAbsoluteX()
		c.incMem(addr)
		return c.memCycles(7, 9) + p
	case 0xC6:
		addr, p := c.eaDirect()
		c.decMem(addr)
		return 5 + p
	case 0xD6:
		addr, p := c.eaDirectX()
		c.decMem(addr)
		return 6 + p
	case 0xCE:
		addr, _ := c.eaAbsolute()
		c.decMem(addr)
		return c.memCycles(6, 7)
	case 0xDE:
		addr, p := c.eaAbsoluteX()
		c.decMem(addr)
		return 7 + p

	// Index register increments and decrements.
	case 0xE8:
		value := c.loadX() + 1
		c.storeX(value)
		c.setNZIdx(value)
		return 2
	case 0xCA:
		value := c.loadX() - 1
		c.storeX(value)
		c.setNZIdx(value)
		return 2
	case 0xC8:
		value := c.loadY() + 1
		c.storeY(value)
		c.setNZIdx(value)
		return 2
	case 0x88:
		value := c.loadY() - 1
		c.storeY(value)
		c.setNZIdx(value)
		return 2

	// Branches.
	case 0x10:
		return c.branchIf(c.regs.P&flagNegative == 0)
	case 0x30:
		return c.branchIf(c.regs.P&flagNegative != 0)
	case 0x50:
		return c.branchIf(c.regs.P&flagOverflow == 0)
	case 0x70:
		return c.branchIf(c.regs.P&flagOverflow != 0)
	case 0x90:
		return c.branchIf(c.regs.P&flagCarry == 0)
	case 0xB0:
		return c.branchIf(c.regs.P&flagCarry != 0)
	case 0xD0:
		return c.branchIf(c.regs.P&flagZero == 0)
	case 0xF0:
		return c.branchIf(c.regs.P&flagZero != 0)
	case 0x80:
		return c.branchIf(true)
	case 0x82:
		return c.brl()

	// Jumps, calls and returns.
	case 0x4C:
		return c.jmpAbsolute()
	case 0x5C:
		return c.jmpLong()
	case 0x6C:
		return c.jmpIndirect()
	case 0x7C:
		return c.jmpIndirectX()
	case 0xDC:
		return c.jmpIndirectLong()
	case 0x20:
		return c.jsr()
	case 0xFC:
		return c.jsrIndirectX()
	case 0x22:
		return c.jsl()
	case 0x60:
		return c.rts()
	case 0x6B:
		return c.rtl()

	// Stack pushes and pulls.
	case 0x48:
		return c.pha()
	case 0x68:
		return c.pla()
	case 0xDA:
		return c.phx()
	case 0xFA:
		return c.plx()
	case 0x5A:
		return c.phy()
	case 0x7A:
		return c.ply()
	case 0x08:
		return c.php()
	case 0x28:
		return c.plp()
	case 0x8B:
		return c.phb()
	case 0xAB:
		return c.plb()
	case 0x0B:
		return c.phd()
	case 0x2B:
		return c.pld()
	case 0x4B:
		return c.phk()
	case 0xF4:
		return c.pea()
	case 0xD4:
		return c.pei()
	case 0x62:
		return c.per()

	// Flag manipulation.
	case 0x18:
		c.regs.P &^= flagCarry
		return 2
	case 0x38:
		c.regs.P |= flagCarry
		return 2
	case 0x58:
		c.regs.P &^= flagIRQDisable
		return 2
	case 0x78:
		c.regs.P |= flagIRQDisable
		return 2
	case 0xB8:
		c.regs.P &^= flagOverflow
		return 2
	case 0xD8:
		c.regs.P &^= flagDecimal
		return 2
	case 0xF8:
		c.regs.P |= flagDecimal
		return 2
	case 0xC2:
		return c.rep()
	case 0xE2:
		return c.sep()
	case 0xFB:
		return c.xce()

	// Transfers.
	case 0xAA:
		return c.tax()
	case 0xA8:
		return c.tay()
	case 0x8A:
		return c.txa()
	case 0x98:
		return c.tya()
	case 0xBA:
		return c.tsx()
	case 0x9A:
		return c.txs()
	case 0x9B:
		return c.txy()
	case 0xBB:
		return c.tyx()
	case 0x1B:
		return c.tcs()
	case 0x3B:
		return c.tsc()
	case 0x5B:
		return c.tcd()
	case 0x7B:
		return c.tdc()

	// Block moves and the rest.
	case 0x44:
		return c.blockMove(0xFFFF)
	case 0x54:
		return c.blockMove(1)
	case 0xEB:
		return c.xba()
	case 0xEA:
		return c.nop()
	case 0x42:
		return c.wdm()
	case 0xCB:
		return c.wai()
	case 0xDB:
		return c.stp()
	}

	// The switch enumerates every opcode value; reaching here means a case
	// was removed.
	panic(fmt.Errorf("unhandled opcode 0x%02x", opcode))
}
