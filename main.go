package main

import (
	"chyp8/cmd"

	"github.com/faiface/pixel/pixelgl"
)

// pixelgl needs to own the main OS thread, so the whole CLI runs inside
// pixelgl.Run.
func main() {
	pixelgl.Run(runChyp8)
}

func runChyp8() {
	cmd.Execute()
}
