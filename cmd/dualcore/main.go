// Command dualcore runs two processor instances against one shared bus: a
// main core filling a mailbox and raising NMI, and a coprocessor that sums
// the mailbox from its handler. The main core is stepped three times for
// every coprocessor step to model unequal clocks.
package main

import (
	"fmt"
	"log"

	"github.com/snescore/w65c816emu"
)

const (
	mainStart = 0x8000
	coprStart = 0x9000
	coprNMI   = 0x9100
	mailbox   = 0x2000
	resultLoc = 0x2100
	clockRatio = 3
)

func main() {
	ram := w65c816emu.NewRAM(0, 0x10000)
	bus := w65c816emu.NewBus(ram)
	bus.SetFaultHook(func(fault w65c816emu.BusFault) {
		log.Printf("warning: %v", fault)
	})

	// Reset and NMI vectors, shared by both cores.
	ram.WriteU8(0xFFFC, mainStart&0xFF)
	ram.WriteU8(0xFFFD, mainStart>>8)
	ram.WriteU8(0xFFFA, coprNMI&0xFF)
	ram.WriteU8(0xFFFB, coprNMI>>8)

	// Main core: store five values into the mailbox, then stop.
	load(ram, mainStart,
		0xA2, 0x00, // LDX #0
		0xA9, 0x07, // loop: LDA #$07
		0x9D, 0x00, 0x20, // STA $2000,X
		0xE8,       // INX
		0xE0, 0x05, // CPX #5
		0xD0, 0xF6, // BNE loop
		0xDB, // STP
	)

	// Coprocessor idle loop: wait for interrupts.
	load(ram, coprStart,
		0xCB,       // WAI
		0x80, 0xFD, // BRA back to the WAI
	)

	// Coprocessor NMI handler: sum the mailbox into $2100, return to the loop.
	load(ram, coprNMI,
		0xA9, 0x00, // LDA #0
		0xA2, 0x00, // LDX #0
		0x18,             // CLC
		0x7D, 0x00, 0x20, // loop: ADC $2000,X
		0xE8,       // INX
		0xE0, 0x05, // CPX #5
		0xD0, 0xF8, // BNE loop
		0x8D, 0x00, 0x21, // STA $2100
		0x40, // RTI
	)

	mainCore := w65c816emu.NewCPU(bus)
	copr := w65c816emu.NewCPU(bus)

	regs := copr.Registers()
	regs.PC = coprStart
	copr.SetRegisters(regs)

	// Interleave the cores until the main program stops, then raise NMI so
	// the coprocessor picks up the finished mailbox.
	for !mainCore.Stopped() {
		for i := 0; i < clockRatio; i++ {
			mainCore.Step()
		}
		copr.Step()
	}
	bus.RaiseNMI()

	for steps := 0; steps < 200; steps++ {
		if bus.NMIPending() && copr.WaitingForInterrupt() {
			copr.ServiceNMI()
		}
		copr.Step()
		if !copr.WaitingForInterrupt() {
			continue
		}
		if sum := bus.ReadU8(resultLoc); sum != 0 {
			fmt.Printf("mailbox sum: %d\n", sum)
			fmt.Printf("main core cycles: %d, coprocessor cycles: %d\n",
				mainCore.Cycles(), copr.Cycles())
			return
		}
	}
	log.Fatal("coprocessor never produced a result")
}

func load(ram *w65c816emu.RAM, base uint32, code ...byte) {
	for i, b := range code {
		ram.WriteU8(base+uint32(i), b)
	}
}
