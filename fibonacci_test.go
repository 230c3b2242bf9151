package w65c816emu

import "testing"

// Iterative fibonacci in native 16-bit mode, filling a table at $3000.
func TestFibonacciProgram(t *testing.T) {
	c, bus, ram := newEnvironment(t)

	code := []uint8{
		0x18,             // CLC
		0xFB,             // XCE            native mode
		0xC2, 0x30,       // REP #$30       16-bit A and index
		0xA9, 0x00, 0x00, // LDA #0
		0x8D, 0x00, 0x30, // STA $3000
		0xA9, 0x01, 0x00, // LDA #1
		0x8D, 0x02, 0x30, // STA $3002
		0xA2, 0x00, 0x00, // LDX #0
		0xA0, 0x08, 0x00, // LDY #8
		// loop:
		0x18,             // CLC
		0xBD, 0x00, 0x30, // LDA $3000,X
		0x7D, 0x02, 0x30, // ADC $3002,X
		0x9D, 0x04, 0x30, // STA $3004,X
		0xE8,       // INX
		0xE8,       // INX
		0x88,       // DEY
		0xD0, 0xF1, // BNE loop
		0xEA, // NOP
	}
	program(t, c, ram, code...)

	end := uint16(0x8000 + len(code))
	for steps := 0; steps < 200 && c.regs.PC < end; steps++ {
		c.Step()
	}

	expected := []uint16{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	for i, want := range expected {
		addr := uint32(0x3000 + i*2)
		if got := bus.ReadU16(addr); got != want {
			t.Fatalf("fib(%d) = %d, want %d", i, got, want)
		}
	}
}

// Recursive fibonacci through JSR/RTS with arguments spilled to the stack
// and read back stack-relative.
func TestRecursiveFibonacciProgram(t *testing.T) {
	c, bus, ram := newEnvironment(t)

	main := []uint8{
		0x18,             // CLC
		0xFB,             // XCE
		0xC2, 0x30,       // REP #$30
		0xA9, 0x07, 0x00, // LDA #7
		0x20, 0x10, 0x80, // JSR fib
		0x8D, 0x00, 0x40, // STA $4000
		0xEA, // NOP
	}
	fib := []uint8{
		// fib: A = n on entry, A = fib(n) on return
		0xC9, 0x02, 0x00, // CMP #2
		0xB0, 0x01, // BCS recurse
		0x60, // RTS            n < 2: fib(n) = n
		// recurse:
		0x48,             // PHA            save n
		0x3A,             // DEC A
		0x20, 0x10, 0x80, // JSR fib        A = fib(n-1)
		0x48,       // PHA            save fib(n-1)
		0xA3, 0x03, // LDA $03,S      reload n
		0x3A,             // DEC A
		0x3A,             // DEC A
		0x20, 0x10, 0x80, // JSR fib        A = fib(n-2)
		0x18,       // CLC
		0x63, 0x01, // ADC $01,S      + fib(n-1)
		0x7A, // PLY            drop the spills
		0x7A, // PLY
		0x60, // RTS
	}
	program(t, c, ram, main...)
	for i, b := range fib {
		ram.WriteU8(0x8010+uint32(i), b)
	}

	// The subroutine sits above main, so run to the exact end address.
	end := uint16(0x8000 + len(main))
	for steps := 0; steps < 4000 && c.regs.PC != end; steps++ {
		c.Step()
	}

	if got := bus.ReadU16(0x4000); got != 13 {
		t.Fatalf("fib(7) = %d, want 13", got)
	}
}
