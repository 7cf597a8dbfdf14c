// Package screen renders framebuffer snapshots into a pixel window. Colors,
// scaling and window lifecycle are decided here, never in the core.
package screen

import (
	"fmt"

	"chyp8/emu/display"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// Window wraps the pixelgl window together with the draw batch. The embedded
// window also serves the keypad package for key state polling.
type Window struct {
	*pixelgl.Window

	imd   *imdraw.IMDraw
	scale float64
}

// New opens a window sized 64x32 times the integer scale factor.
func New(title string, scale int) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(display.Width*scale), float64(display.Height*scale)),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	return &Window{
		Window: win,
		imd:    imdraw.New(nil),
		scale:  float64(scale),
	}, nil
}

// Render redraws the whole framebuffer: black background, one white rect per
// lit cell. Pixel's origin is the bottom left corner while the framebuffer's
// is the top left, so rows are flipped.
func (w *Window) Render(fb *display.Framebuffer) {
	w.Clear(colornames.Black)
	w.imd.Clear()
	w.imd.Color = colornames.White

	for row := 0; row < display.Height; row++ {
		for col := 0; col < display.Width; col++ {
			if fb.Get(row*display.Width+col) == 0 {
				continue
			}
			x := float64(col) * w.scale
			y := float64(display.Height-1-row) * w.scale
			w.imd.Push(pixel.V(x, y), pixel.V(x+w.scale, y+w.scale))
			w.imd.Rectangle(0)
		}
	}

	w.imd.Draw(w.Window)
}
