// Package emu wires the CPU core to its collaborators and drives the two
// independent cadences: instruction dispatch at the configured clock rate
// and timer decay at a fixed 60 Hz of wall-clock time.
package emu

import (
	"fmt"
	"time"

	"chyp8/emu/audio"
	"chyp8/emu/cpu"
	"chyp8/emu/display"
	"chyp8/emu/keypad"
	"chyp8/emu/rom"
	"chyp8/emu/screen"

	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/log"
)

const timerRate = time.Second / 60

// Config is what the start command hands to the emulator.
type Config struct {
	ROMPath string
	ClockHz int
	Scale   int
	Debug   bool
}

// EMU owns the session: one CPU plus the window, keypad and audio
// collaborators. It is the single mutator of the core, no locking needed.
type EMU struct {
	cfg    Config
	cpu    *cpu.CPU
	window *screen.Window
	beeper *audio.Beeper
	logger *log.Logger

	fb display.Framebuffer
}

// NewEMU reads the ROM, builds the core and opens the window and speaker.
// A ROM that fails to load means emulation never begins.
func NewEMU(cfg Config, logger *log.Logger) (*EMU, error) {
	bytes, err := rom.Read(cfg.ROMPath)
	if err != nil {
		return nil, err
	}
	core, err := cpu.New(bytes, logger)
	if err != nil {
		return nil, err
	}
	win, err := screen.New("chyp8 - "+cfg.ROMPath, cfg.Scale)
	if err != nil {
		return nil, err
	}
	beeper, err := audio.New()
	if err != nil {
		return nil, err
	}

	return &EMU{
		cfg:    cfg,
		cpu:    core,
		window: win,
		beeper: beeper,
		logger: logger,
	}, nil
}

// Run drives the emulation until the window closes or the core faults.
//
// Two tickers keep the cadences independent: decrementing timers once per
// executed opcode is the classic bug this layout avoids. Rendering, audio
// gating and window updates ride on the 60 Hz tick. In debug mode the clock
// ticker is ignored and Space single-steps one instruction.
func (e *EMU) Run() error {
	clock := time.NewTicker(time.Second / time.Duration(e.cfg.ClockHz))
	defer clock.Stop()
	timers := time.NewTicker(timerRate)
	defer timers.Stop()

	e.logger.Info("starting emulation",
		log.String("rom", e.cfg.ROMPath),
		log.Int("clock", e.cfg.ClockHz))

	for !e.window.Closed() {
		select {
		case <-clock.C:
			if e.cfg.Debug {
				continue
			}
			if err := e.step(); err != nil {
				return err
			}

		case <-timers.C:
			if e.cfg.Debug && e.window.JustPressed(pixelgl.KeySpace) {
				if err := e.step(); err != nil {
					return err
				}
			}

			e.cpu.TickTimers()
			if e.cpu.SoundActive() {
				e.beeper.Play()
			} else {
				e.beeper.Stop()
			}

			e.window.Render(&e.fb)
			e.window.Update()
		}
	}

	e.beeper.Stop()
	e.logger.Info("window closed, exiting")
	return nil
}

// step runs one CPU cycle against a fresh keypad snapshot and keeps the last
// framebuffer for the next render.
func (e *EMU) step() error {
	out, err := e.cpu.Cycle(keypad.Poll(e.window.Window))
	if err != nil {
		return fmt.Errorf("emulation halted: %w", err)
	}
	if out.DisplayUpdated {
		e.fb = out.Framebuffer
	}
	return nil
}
