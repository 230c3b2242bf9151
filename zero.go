package w65c816emu

// STZ stores zero at the current memory width without touching flags.
func (c *cpu) stz(address uint32) {
	c.writeM(address, 0)
}
