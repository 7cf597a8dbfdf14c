// Package display holds the core display memory. Turning it into pixels on
// an actual window is the screen package's job.
package display

const (
	Width  = 64
	Height = 32
	Cells  = Width * Height
)

// Framebuffer is the 64x32 one bit per pixel display memory, row major with
// the origin at the top left. Cells hold 0 or 1 and are only ever mutated by
// the clear and draw instructions.
type Framebuffer [Cells]uint8

// Reset zeroes every cell.
func (fb *Framebuffer) Reset() {
	*fb = Framebuffer{}
}

// Get returns the cell at index i. Indexing outside 0..Cells panics, it is
// never clamped.
func (fb *Framebuffer) Get(i int) uint8 {
	return fb[i]
}

// Set stores v in the cell at index i.
func (fb *Framebuffer) Set(i int, v uint8) {
	fb[i] = v
}
