package cpu

// Keys is one keypad snapshot, indexed by hex key value. The driver supplies
// a fresh snapshot on every cycle; the CPU never holds on to one.
type Keys [16]bool
