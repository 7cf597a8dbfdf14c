package rom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chyp8/emu/memory"

	"github.com/retroenv/retrogolib/assert"
)

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRead(t *testing.T) {
	want := []byte{0x12, 0x00, 0xA2, 0x2A}
	path := writeROM(t, want)

	data, err := Read(path)
	assert.NoError(t, err)
	assert.Equal(t, len(want), len(data))
	for i := range want {
		assert.Equal(t, want[i], data[i])
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.ch8"))
	assert.Error(t, err)
}

func TestReadTooLarge(t *testing.T) {
	path := writeROM(t, make([]byte, memory.MaxROMSize+1))

	_, err := Read(path)
	assert.True(t, errors.Is(err, memory.ErrROMTooLarge))
}
