package cpu

// VF is the 16th register, overloaded as the carry, borrow and collision
// flag. Only instructions documented to set a flag ever write it implicitly.
const VF = 0xF

// RegisterFile holds the sixteen general purpose 8-bit registers V0..VF and
// the 16-bit index register I.
type RegisterFile struct {
	V [16]uint8
	I uint16
}
