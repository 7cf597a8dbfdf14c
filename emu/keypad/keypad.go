// Package keypad maps the physical keyboard onto the 16-key hex keypad.
package keypad

import (
	"chyp8/emu/cpu"

	"github.com/faiface/pixel/pixelgl"
)

// Buttons maps each hex key value to its physical keyboard button, the usual
// COSMAC VIP layout:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var Buttons = [16]pixelgl.Button{
	0x0: pixelgl.KeyX,
	0x1: pixelgl.Key1,
	0x2: pixelgl.Key2,
	0x3: pixelgl.Key3,
	0x4: pixelgl.KeyQ,
	0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE,
	0x7: pixelgl.KeyA,
	0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD,
	0xA: pixelgl.KeyZ,
	0xB: pixelgl.KeyC,
	0xC: pixelgl.Key4,
	0xD: pixelgl.KeyR,
	0xE: pixelgl.KeyF,
	0xF: pixelgl.KeyV,
}

// Poll takes a fresh snapshot of the 16 keypad keys. The driver calls it
// once per cycle; the CPU never owns key state long term.
func Poll(win *pixelgl.Window) cpu.Keys {
	var keys cpu.Keys
	for value, button := range Buttons {
		keys[value] = win.Pressed(button)
	}
	return keys
}
