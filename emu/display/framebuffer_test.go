package display

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFramebuffer(t *testing.T) {
	var fb Framebuffer

	fb.Set(0, 1)
	fb.Set(Cells-1, 1)
	assert.Equal(t, uint8(1), fb.Get(0))
	assert.Equal(t, uint8(1), fb.Get(Cells-1))
	assert.Equal(t, uint8(0), fb.Get(1))

	fb.Reset()
	for i := 0; i < Cells; i++ {
		assert.Equal(t, uint8(0), fb.Get(i))
	}
}
