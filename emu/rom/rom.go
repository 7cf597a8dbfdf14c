// Package rom reads CHIP-8 ROM images from disk.
package rom

import (
	"fmt"
	"os"

	"chyp8/emu/memory"
)

// Read loads a raw ROM: a headerless stream of big-endian opcode words. The
// size is validated here so a bad ROM is rejected before the run loop ever
// starts.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	if len(data) > memory.MaxROMSize {
		return nil, fmt.Errorf("%s holds %d bytes, user space ends at %d: %w",
			path, len(data), memory.MaxROMSize, memory.ErrROMTooLarge)
	}
	return data, nil
}
