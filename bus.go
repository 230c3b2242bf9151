package w65c816emu

import "fmt"

// Device represents a memory-mapped peripheral on the address bus.
// Implementations are expected to be safe for repeated Reset calls and
// must internally validate the address ranges they cover.
type Device interface {
	Contains(address uint32) bool
	ReadU8(address uint32) uint8
	WriteU8(address uint32, value uint8)
	Reset()
}

// SlowDevice optionally advertises extra cycles an opcode fetch from the
// device costs. Data accesses are unaffected; only the instruction fetch
// region matters for the per-step speed penalty.
type SlowDevice interface {
	SpeedPenalty(address uint32) uint8
}

// BusFault records an access to an unmapped address. The bus never fails a
// transaction: reads of unmapped addresses return the open-bus value and the
// fault is reported through the fault hook, if one is installed.
type BusFault uint32

func (bf BusFault) Error() string {
	return fmt.Sprintf("bus fault at %06x", uint32(bf))
}

// FaultHook receives every bus fault. Useful for debugging stray pointers.
type FaultHook func(BusFault)

// openBusValue is what a read of an unmapped address returns.
const openBusValue uint8 = 0xFF

// Bus multiplexes memory access between attached devices and carries the
// interrupt request lines shared by every core attached to it. Two cores can
// hold the same *Bus; the interleaving scheduler guarantees only one of them
// is mid-instruction at a time.
type Bus struct {
	devices    []Device
	lastDevice Device
	faultHook  FaultHook

	nmiPending bool
	irqLine    bool
}

// NewBus constructs a bus optionally seeded with devices.
func NewBus(devices ...Device) *Bus {
	return &Bus{devices: devices}
}

// AddDevice attaches an additional device to the bus.
func (b *Bus) AddDevice(device Device) {
	b.devices = append(b.devices, device)
}

// SetFaultHook installs a callback invoked for every unmapped access.
func (b *Bus) SetFaultHook(hook FaultHook) {
	b.faultHook = hook
}

// Reset propagates a reset to all attached devices and clears the interrupt
// lines.
func (b *Bus) Reset() {
	for _, dev := range b.devices {
		dev.Reset()
	}
	b.nmiPending = false
	b.irqLine = false
}

// ReadU8 reads one byte from the mapped device, or the open-bus value when
// no device claims the address.
func (b *Bus) ReadU8(address uint32) uint8 {
	address &= 0xFFFFFF
	dev := b.findDevice(address)
	if dev == nil {
		b.fault(address)
		return openBusValue
	}
	return dev.ReadU8(address)
}

// WriteU8 writes one byte to the mapped device. Writes to unmapped addresses
// are dropped.
func (b *Bus) WriteU8(address uint32, value uint8) {
	address &= 0xFFFFFF
	dev := b.findDevice(address)
	if dev == nil {
		b.fault(address)
		return
	}
	dev.WriteU8(address, value)
}

// ReadU16 reads a little-endian word. The two bytes are independent
// transactions, so the pair may straddle devices.
func (b *Bus) ReadU16(address uint32) uint16 {
	lo := uint16(b.ReadU8(address))
	hi := uint16(b.ReadU8(address + 1))
	return hi<<8 | lo
}

// WriteU16 writes a little-endian word as two byte transactions.
func (b *Bus) WriteU16(address uint32, value uint16) {
	b.WriteU8(address, uint8(value))
	b.WriteU8(address+1, uint8(value>>8))
}

// OpcodeMemoryPenalty reports the extra cycles an instruction fetch from the
// given address costs. Devices that do not implement SlowDevice fetch at
// full speed.
func (b *Bus) OpcodeMemoryPenalty(address uint32) uint8 {
	dev := b.findDevice(address & 0xFFFFFF)
	if dev == nil {
		return 0
	}
	if slow, ok := dev.(SlowDevice); ok {
		return slow.SpeedPenalty(address)
	}
	return 0
}

// RaiseNMI latches a non-maskable interrupt. The latch holds until a core
// services it and calls AcknowledgeNMI.
func (b *Bus) RaiseNMI() {
	b.nmiPending = true
}

// NMIPending reports whether an NMI is latched.
func (b *Bus) NMIPending() bool {
	return b.nmiPending
}

// AcknowledgeNMI clears the NMI latch. ServiceNMI calls this on entry.
func (b *Bus) AcknowledgeNMI() {
	b.nmiPending = false
}

// SetIRQ drives the level-triggered IRQ line.
func (b *Bus) SetIRQ(asserted bool) {
	b.irqLine = asserted
}

// IRQPending reports the state of the IRQ line. Masking against the I flag
// is the scheduler's job.
func (b *Bus) IRQPending() bool {
	return b.irqLine
}

func (b *Bus) fault(address uint32) {
	if b.faultHook != nil {
		b.faultHook(BusFault(address))
	}
}

func (b *Bus) findDevice(address uint32) Device {
	if b.lastDevice != nil && b.lastDevice.Contains(address) {
		return b.lastDevice
	}

	for _, dev := range b.devices {
		if dev.Contains(address) {
			b.lastDevice = dev
			return dev
		}
	}

	return nil
}
