package cpu

// TickTimers decrements the delay and sound timers toward zero, floored at
// zero. The driver calls this at a fixed 60 Hz from wall-clock time; it is
// deliberately a separate operation from Cycle, coupling timer decay to the
// instruction rate is a classic interpreter bug.
func (c *CPU) TickTimers() {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
	}
}

// SoundActive reports whether the tone should currently be audible.
func (c *CPU) SoundActive() bool {
	return c.soundTimer > 0
}
