package w65c816emu

// Status register bits. In emulation mode bit 4 doubles as the break bit on
// pushed stack frames.
const (
	flagCarry      uint8 = 0x01
	flagZero       uint8 = 0x02
	flagIRQDisable uint8 = 0x04
	flagDecimal    uint8 = 0x08
	flagIndex8     uint8 = 0x10
	flagMemory8    uint8 = 0x20
	flagOverflow   uint8 = 0x40
	flagNegative   uint8 = 0x80
)

// Interrupt and reset vectors, all in bank 00.
const (
	vectorCOPNative uint32 = 0x00FFE4
	vectorBRKNative uint32 = 0x00FFE6
	vectorNMINative uint32 = 0x00FFEA
	vectorIRQNative uint32 = 0x00FFEE
	vectorCOPEmu    uint32 = 0x00FFF4
	vectorNMIEmu    uint32 = 0x00FFFA
	vectorReset     uint32 = 0x00FFFC
	vectorIRQEmu    uint32 = 0x00FFFE
)

type (
	BreakpointType int

	// AddressBus is the minimal bus surface the core requires. Addresses are
	// 24-bit; implementations define what unmapped regions return.
	AddressBus interface {
		ReadU8(address uint32) uint8
		WriteU8(address uint32, value uint8)
		ReadU16(address uint32) uint16
		WriteU16(address uint32, value uint16)
		// OpcodeMemoryPenalty reports extra cycles imposed by the memory
		// region an instruction is fetched from.
		OpcodeMemoryPenalty(address uint32) uint8
		// AcknowledgeNMI clears the bus-side NMI latch once the core has
		// entered the handler.
		AcknowledgeNMI()
	}

	// Registers is a snapshot of the programmer-visible state of one
	// processor instance.
	Registers struct {
		A, X, Y uint16
		SP      uint16
		DP      uint16
		DB, PB  uint8
		PC      uint16
		P       uint8
		// EmulationMode selects the 8-bit compatibility personality: it
		// forces the M and X flags set and pins the stack to page 1.
		EmulationMode bool
	}

	// FetchResult describes the instruction fetch performed by Step.
	FetchResult struct {
		Opcode       uint8
		SpeedPenalty uint8
		PCBefore     uint16
		FullAddr     uint32
	}

	// StepResult is returned by Step. Cycles is the complete cost of the
	// instruction including addressing penalties and the fetch-region
	// speed penalty.
	StepResult struct {
		Cycles uint8
		Fetch  FetchResult
	}

	TraceInfo struct {
		PC        uint32
		Opcode    uint8
		Cycles    uint8
		Registers Registers
	}

	TraceCallback func(TraceInfo)

	Breakpoint struct {
		Address   uint32
		OnExecute bool
		OnRead    bool
		OnWrite   bool
		Callback  func(BreakpointEvent)
	}

	BreakpointEvent struct {
		Type      BreakpointType
		Address   uint32
		Registers Registers
	}

	// CPU exposes one processor instance. Two instances may share a single
	// AddressBus value; they hold no state in common and an external
	// scheduler interleaves their Step calls.
	CPU interface {
		Registers() Registers
		SetRegisters(Registers)
		Step() StepResult
		Reset()
		ServiceNMI() uint8
		ServiceIRQ() uint8
		WaitingForInterrupt() bool
		Stopped() bool
		SetTracer(TraceCallback)
		AddBreakpoint(Breakpoint)
		Cycles() uint64
	}

	//  CPU core
	cpu struct {
		regs   Registers
		cycles uint64
		bus    AddressBus
		trace  TraceCallback

		// waiting and stopped latch WAI/STP until the scheduler delivers an
		// interrupt or a reset; they are not part of the register snapshot.
		waiting bool
		stopped bool

		breakpoints map[uint32]Breakpoint
	}
)

const (
	BreakpointExecute BreakpointType = iota
	BreakpointRead
	BreakpointWrite
)

func (bt BreakpointType) String() string {
	switch bt {
	case BreakpointExecute:
		return "execute"
	case BreakpointRead:
		return "read"
	case BreakpointWrite:
		return "write"
	default:
		return "unknown"
	}
}

// NewCPU constructs a powered-on processor instance attached to bus and
// performs the initial reset sequence.
func NewCPU(bus AddressBus) CPU {
	c := &cpu{bus: bus}
	c.Reset()
	return c
}

func (c *cpu) Registers() Registers {
	return c.regs
}

func (c *cpu) SetRegisters(regs Registers) {
	c.regs = regs
}

func (c *cpu) SetTracer(cb TraceCallback) {
	c.trace = cb
}

func (c *cpu) AddBreakpoint(bp Breakpoint) {
	if c.breakpoints == nil {
		c.breakpoints = make(map[uint32]Breakpoint)
	}
	c.breakpoints[bp.Address] = bp
}

func (c *cpu) WaitingForInterrupt() bool {
	return c.waiting
}

func (c *cpu) Stopped() bool {
	return c.stopped
}

// Cycles returns the total number of cycles executed since the last reset.
func (c *cpu) Cycles() uint64 {
	return c.cycles
}

func (c *cpu) addCycles(n uint32) {
	c.cycles += uint64(n)
}

// Reset reinitializes the instance to the power-on state: emulation mode,
// M/X/I set, stack at 0x01FF, program counter loaded from the reset vector.
func (c *cpu) Reset() {
	c.regs = Registers{
		SP:            0x01FF,
		P:             flagMemory8 | flagIndex8 | flagIRQDisable,
		EmulationMode: true,
	}
	c.waiting = false
	c.stopped = false
	c.cycles = 0
	c.regs.PC = c.bus.ReadU16(vectorReset)
}

// fullPC returns the 24-bit address of the next instruction byte.
func (c *cpu) fullPC() uint32 {
	return uint32(c.regs.PB)<<16 | uint32(c.regs.PC)
}

// stalledStepCycles is the fixed cost of a Step on a core latched by WAI or
// STP. The latched core burns this as an internal no-op so a scheduler that
// slices time proportionally to consumed cycles keeps making progress.
const stalledStepCycles uint8 = 3

// Step executes exactly one instruction. A core latched by WAI or STP burns
// a fixed 3-cycle no-op instead; the scheduler is expected to deliver the
// pending interrupt (or, for STP, a reset) to unlatch it.
func (c *cpu) Step() StepResult {
	if c.stopped || c.waiting {
		c.addCycles(uint32(stalledStepCycles))
		return StepResult{Cycles: stalledStepCycles}
	}

	pcBefore := c.regs.PC
	fetchAddr := c.fullPC()
	c.checkExecuteBreakpoint(fetchAddr)

	opcode := c.bus.ReadU8(fetchAddr)
	c.regs.PC++
	speedPenalty := c.bus.OpcodeMemoryPenalty(fetchAddr)

	before := c.cycles
	total := c.execute(opcode)
	// Helpers charge cycles for the bytes they fetch; the arm's total is
	// authoritative, so charge the remainder here.
	if consumed := c.cycles - before; consumed < uint64(total) {
		c.addCycles(uint32(total) - uint32(consumed))
	}
	if speedPenalty != 0 {
		c.addCycles(uint32(speedPenalty))
	}

	result := StepResult{
		Cycles: total + speedPenalty,
		Fetch: FetchResult{
			Opcode:       opcode,
			SpeedPenalty: speedPenalty,
			PCBefore:     pcBefore,
			FullAddr:     fetchAddr,
		},
	}
	c.sendTrace(fetchAddr, opcode, result.Cycles)
	return result
}

func (c *cpu) sendTrace(pc uint32, opcode uint8, cycles uint8) {
	if c.trace == nil {
		return
	}
	c.trace(TraceInfo{PC: pc, Opcode: opcode, Cycles: cycles, Registers: c.regs})
}

func (c *cpu) checkExecuteBreakpoint(address uint32) {
	if c.breakpoints == nil {
		return
	}
	if bp, ok := c.breakpoints[address]; ok && bp.OnExecute && bp.Callback != nil {
		bp.Callback(BreakpointEvent{Type: BreakpointExecute, Address: address, Registers: c.regs})
	}
}

func (c *cpu) checkAccessBreakpoint(address uint32, kind BreakpointType) {
	if c.breakpoints == nil {
		return
	}
	bp, ok := c.breakpoints[address]
	if !ok || bp.Callback == nil {
		return
	}
	switch kind {
	case BreakpointRead:
		if !bp.OnRead {
			return
		}
	case BreakpointWrite:
		if !bp.OnWrite {
			return
		}
	}
	bp.Callback(BreakpointEvent{Type: kind, Address: address, Registers: c.regs})
}

// Data access helpers. These never charge cycles; instruction arms account
// for data accesses in their documented totals.

func (c *cpu) readU8(address uint32) uint8 {
	address &= 0xFFFFFF
	c.checkAccessBreakpoint(address, BreakpointRead)
	return c.bus.ReadU8(address)
}

func (c *cpu) writeU8(address uint32, value uint8) {
	address &= 0xFFFFFF
	c.checkAccessBreakpoint(address, BreakpointWrite)
	c.bus.WriteU8(address, value)
}

func (c *cpu) readU16(address uint32) uint16 {
	lo := uint16(c.readU8(address))
	hi := uint16(c.readU8(address + 1))
	return hi<<8 | lo
}

func (c *cpu) writeU16(address uint32, value uint16) {
	c.writeU8(address, uint8(value))
	c.writeU8(address+1, uint8(value>>8))
}

func (c *cpu) readU24(address uint32) uint32 {
	lo := uint32(c.readU8(address))
	mid := uint32(c.readU8(address + 1))
	hi := uint32(c.readU8(address + 2))
	return hi<<16 | mid<<8 | lo
}

// Stack helpers. The stack pointer is a full 16-bit register in native mode;
// emulation mode pins it to page 1 and wraps the low byte only. Each pushed
// or popped byte charges one cycle.

func (c *cpu) stackAddr() uint32 {
	if c.regs.EmulationMode {
		return 0x0100 | uint32(c.regs.SP&0x00FF)
	}
	return uint32(c.regs.SP)
}

func (c *cpu) push8(value uint8) {
	c.writeU8(c.stackAddr(), value)
	if c.regs.EmulationMode {
		c.regs.SP = 0x0100 | ((c.regs.SP - 1) & 0x00FF)
	} else {
		c.regs.SP--
	}
	c.addCycles(1)
}

func (c *cpu) push16(value uint16) {
	c.push8(uint8(value >> 8))
	c.push8(uint8(value))
}

func (c *cpu) pop8() uint8 {
	if c.regs.EmulationMode {
		c.regs.SP = 0x0100 | ((c.regs.SP + 1) & 0x00FF)
	} else {
		c.regs.SP++
	}
	value := c.readU8(c.stackAddr())
	c.addCycles(1)
	return value
}

func (c *cpu) pop16() uint16 {
	lo := uint16(c.pop8())
	hi := uint16(c.pop8())
	return hi<<8 | lo
}
