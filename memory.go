package w65c816emu

// simple flat memory structure
type RAM struct {
	offset uint32
	mem    []byte
}

func NewRAM(offset, size uint32) *RAM {
	return &RAM{offset: offset, mem: make([]byte, size)}
}

func (ram *RAM) Contains(address uint32) bool {
	return address >= ram.offset && address < ram.offset+uint32(len(ram.mem))
}

func (ram *RAM) ReadU8(address uint32) uint8 {
	return ram.mem[address-ram.offset]
}

func (ram *RAM) WriteU8(address uint32, value uint8) {
	ram.mem[address-ram.offset] = value
}

func (ram *RAM) Reset() {
	for i := range ram.mem {
		ram.mem[i] = 0
	}
}

// ROM is a read-only region, typically holding the reset and interrupt
// vectors. Writes are silently dropped. A nonzero speed penalty models slow
// memory: each opcode fetched from the region costs that many extra cycles.
type ROM struct {
	offset  uint32
	mem     []byte
	penalty uint8
}

func NewROM(offset uint32, data []byte) *ROM {
	mem := make([]byte, len(data))
	copy(mem, data)
	return &ROM{offset: offset, mem: mem}
}

// SetSpeedPenalty configures the per-fetch cycle surcharge for this region.
func (rom *ROM) SetSpeedPenalty(penalty uint8) {
	rom.penalty = penalty
}

func (rom *ROM) SpeedPenalty(uint32) uint8 {
	return rom.penalty
}

func (rom *ROM) Contains(address uint32) bool {
	return address >= rom.offset && address < rom.offset+uint32(len(rom.mem))
}

func (rom *ROM) ReadU8(address uint32) uint8 {
	return rom.mem[address-rom.offset]
}

func (rom *ROM) WriteU8(uint32, uint8) {}

func (rom *ROM) Reset() {}
