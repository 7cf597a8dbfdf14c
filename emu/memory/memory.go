package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the full addressable space, 4KB.
	Size = 4096
	// UserSpace is where loaded programs start. Everything below it belongs
	// to the interpreter: fonts first, the rest reserved.
	UserSpace = 0x200
	// FontBytes is the size of the font region, 16 glyphs of 5 bytes each.
	FontBytes = 80
	// MaxROMSize is the biggest ROM that fits in the user space.
	MaxROMSize = Size - UserSpace
)

var (
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrROMTooLarge       = errors.New("ROM too large")
)

// FontSet holds the 16 builtin 5-byte sprites for the hex digits 0-F.
// ROMs read these back through the Fx29 instruction, so the table and its
// placement at 0x000 are part of the machine contract.
var FontSet = [FontBytes]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4KB store. Layout:
//
//	0x000 ----------------
//	| fonts              |
//	0x050 ----------------
//	| reserved           |
//	0x200 ----------------
//	| user space         |
//	0x1000 ---------------
type Memory struct {
	bytes [Size]uint8
}

// New returns memory with the font table preloaded and everything else zero.
func New() *Memory {
	m := &Memory{}
	copy(m.bytes[:], FontSet[:])
	return m
}

// Read returns the byte at addr. Out of range addresses are an error, never
// clamped or wrapped.
func (m *Memory) Read(addr uint16) (uint8, error) {
	if int(addr) >= Size {
		return 0, fmt.Errorf("read at %#04x: %w", addr, ErrAddressOutOfRange)
	}
	return m.bytes[addr], nil
}

// Write stores v at addr, with the same bounds rule as Read.
func (m *Memory) Write(addr uint16, v uint8) error {
	if int(addr) >= Size {
		return fmt.Errorf("write at %#04x: %w", addr, ErrAddressOutOfRange)
	}
	m.bytes[addr] = v
	return nil
}

// Load copies a ROM image into the user space at 0x200. It is called exactly
// once, at construction time.
func (m *Memory) Load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%d bytes exceed the %d byte user space: %w",
			len(rom), MaxROMSize, ErrROMTooLarge)
	}
	copy(m.bytes[UserSpace:], rom)
	return nil
}

// FontAddress returns the address of the builtin sprite for a hex digit.
func FontAddress(digit uint8) uint16 {
	return uint16(digit&0x0F) * 5
}
