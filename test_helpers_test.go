package w65c816emu

import "testing"

// newEnvironment builds a core with 128KB of RAM covering banks 00 and 01
// and a reset vector pointing at 00:8000.
func newEnvironment(t testing.TB) (*cpu, *Bus, *RAM) {
	t.Helper()

	memory := NewRAM(0, 2*64*1024)
	memory.WriteU8(vectorReset, 0x00)
	memory.WriteU8(vectorReset+1, 0x80)
	bus := NewBus(memory)
	processor := NewCPU(bus)
	impl, ok := processor.(*cpu)
	if !ok {
		t.Fatalf("CPU implementation has unexpected type %T", processor)
	}
	return impl, bus, memory
}

// program writes machine code at the current program counter.
func program(t testing.TB, c *cpu, ram *RAM, code ...byte) {
	t.Helper()
	for i, b := range code {
		ram.WriteU8(c.fullPC()+uint32(i), b)
	}
}

// nativeMode switches the core out of emulation mode with 16-bit memory and
// index widths, the way initialization code does with CLC/XCE/REP #$30.
func nativeMode(c *cpu) {
	c.regs.EmulationMode = false
	c.regs.P &^= flagMemory8 | flagIndex8
	c.regs.SP = 0x01FF
}

// native8 keeps native mode but with 8-bit memory and index widths.
func native8(c *cpu) {
	c.regs.EmulationMode = false
	c.regs.P |= flagMemory8 | flagIndex8
}

func step(t testing.TB, c *cpu) StepResult {
	t.Helper()
	return c.Step()
}

func expectCycles(t testing.TB, result StepResult, want uint8) {
	t.Helper()
	if result.Cycles != want {
		t.Fatalf("unexpected cycles for opcode %02x: got %d want %d", result.Fetch.Opcode, result.Cycles, want)
	}
}
