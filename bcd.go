package w65c816emu

// Packed BCD byte arithmetic for decimal-mode ADC and SBC. Sixteen-bit
// operands are handled as two chained byte operations by the callers.

// bcdAdd8 adds two packed BCD bytes with a carry in. The returned carry is
// set when the decimal sum exceeds 99.
func bcdAdd8(a, b uint8, carryIn bool) (uint8, bool) {
	sum := uint16(a) + uint16(b)
	if carryIn {
		sum++
	}
	if sum&0x0F > 0x09 {
		sum += 0x06
	}
	if sum&0xF0 > 0x90 {
		sum += 0x60
	}
	return uint8(sum), sum > 0x99
}

// bcdSub8 subtracts packed BCD bytes with a borrow in, adjusting each nibble
// by ten on underflow. The returned flag follows the carry convention: true
// means no borrow out.
func bcdSub8(a, b uint8, borrowIn bool) (uint8, bool) {
	low := int16(a&0x0F) - int16(b&0x0F)
	if borrowIn {
		low--
	}
	borrow := int16(0)
	if low < 0 {
		low += 10
		borrow = 1
	}
	high := int16(a>>4) - int16(b>>4) - borrow
	noBorrow := true
	if high < 0 {
		high += 10
		noBorrow = false
	}
	return uint8(high)<<4 | uint8(low)&0x0F, noBorrow
}
