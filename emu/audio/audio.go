// Package audio turns the sound timer's boolean tone gate into an audible
// square wave through the beep speaker. Waveform synthesis lives entirely
// here, the core only ever says on or off.
package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 440
	volume     = 0.2
)

// Beeper is a beep.Streamer producing a fixed frequency square wave while
// the gate is open and silence otherwise. The speaker pulls samples on its
// own goroutine, so the gate is only flipped under the speaker lock.
type Beeper struct {
	phase  float64
	active bool
}

// New initializes the speaker and starts streaming. The stream is silent
// until Play opens the gate.
func New() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	b := &Beeper{}
	speaker.Play(b)
	return b, nil
}

// Stream implements beep.Streamer.
func (b *Beeper) Stream(samples [][2]float64) (int, bool) {
	step := float64(toneHz) / float64(sampleRate)
	for i := range samples {
		var v float64
		if b.active {
			if b.phase < 0.5 {
				v = volume
			} else {
				v = -volume
			}
			b.phase += step
			if b.phase >= 1 {
				b.phase--
			}
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err implements beep.Streamer; the wave never fails.
func (b *Beeper) Err() error {
	return nil
}

// Play opens the tone gate. Safe to call every tick, it is idempotent.
func (b *Beeper) Play() {
	speaker.Lock()
	b.active = true
	speaker.Unlock()
}

// Stop closes the tone gate.
func (b *Beeper) Stop() {
	speaker.Lock()
	b.active = false
	speaker.Unlock()
}
