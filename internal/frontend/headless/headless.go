// Package headless implements a frontend without any output. It replays a
// scripted sequence of key events and keeps the last presented frame, which
// makes it usable for automated runs.
package headless

import (
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/runner"
)

// KeyEvent changes the state of a key before the given frame is executed.
type KeyEvent struct {
	Frame   int
	Key     uint8
	Pressed bool
}

// Host is a frontend without output.
type Host struct {
	events []KeyEvent

	frame       int
	soundFrames int
	screen      string
}

// New returns a headless host that applies the key events at their frames.
func New(events ...KeyEvent) *Host {
	return &Host{events: events}
}

// Input applies the key events scheduled for the next frame.
func (h *Host) Input(keys runner.KeySetter) bool {
	h.frame++
	for _, event := range h.events {
		if event.Frame == h.frame {
			keys.SetKey(event.Key, event.Pressed)
		}
	}
	return true
}

// Present records the frame.
func (h *Host) Present(d *display.Display, sound bool) error {
	if sound {
		h.soundFrames++
	}
	if d.Dirty() {
		h.screen = d.String()
		d.ClearDirty()
	}
	return nil
}

// Frames returns the number of frames that requested input.
func (h *Host) Frames() int {
	return h.frame
}

// SoundFrames returns the number of presented frames with an active tone.
func (h *Host) SoundFrames() int {
	return h.soundFrames
}

// Screen returns the text rendering of the last changed display.
func (h *Host) Screen() string {
	return h.screen
}
