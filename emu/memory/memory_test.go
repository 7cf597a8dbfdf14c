package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewLoadsFonts(t *testing.T) {
	m := New()

	for addr := uint16(0); addr < FontBytes; addr++ {
		b, err := m.Read(addr)
		assert.NoError(t, err)
		assert.Equal(t, FontSet[addr], b)
	}

	// first byte past the font region is untouched
	b, err := m.Read(FontBytes)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), b)
}

func TestLoadPlacesROMInUserSpace(t *testing.T) {
	m := New()
	rom := []byte{0x01, 0x02, 0x03, 0x04}

	assert.NoError(t, m.Load(rom))

	for i, want := range rom {
		b, err := m.Read(UserSpace + uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, want, b)
	}
	b, err := m.Read(UserSpace + uint16(len(rom)))
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), b)
}

func TestLoadSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "fills user space exactly", size: MaxROMSize, wantErr: false},
		{name: "one byte too large", size: MaxROMSize + 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			err := m.Load(make([]byte, tt.size))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrROMTooLarge))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOutOfRangeAccess(t *testing.T) {
	m := New()

	_, err := m.Read(Size)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	err = m.Write(Size, 0xFF)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	// last valid address works both ways
	assert.NoError(t, m.Write(Size-1, 0xAB))
	b, err := m.Read(Size - 1)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xAB), b)
}

func TestFontAddress(t *testing.T) {
	assert.Equal(t, uint16(0), FontAddress(0x0))
	assert.Equal(t, uint16(5), FontAddress(0x1))
	assert.Equal(t, uint16(75), FontAddress(0xF))
	// digit is taken modulo 16
	assert.Equal(t, uint16(10), FontAddress(0x12))
}
