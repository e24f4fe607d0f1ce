// Package terminal implements a frontend that renders the display into a
// raw mode terminal and reads the keypad from the keyboard.
//
// Terminals do not report key releases, a key is released after it has not
// been repeated for a short hold time.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// keyboardLayout lists the keyboard keys of the keypad layout positions.
const keyboardLayout = "1234qwerasdfzxcv"

// holdFrames is the number of frames a key stays pressed after its last
// key event.
const holdFrames = 8

const (
	keyEscape = 0x1B
	keyCtrlC  = 0x03

	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	bell          = "\a"
)

// Host is a terminal frontend.
type Host struct {
	logger *log.Logger
	out    io.Writer
	input  <-chan byte

	hold      [keypad.Keys]int
	lastSound bool
	started   bool

	console *console
}

// New returns a terminal frontend writing to out. Start has to be called
// before the host is used.
func New(logger *log.Logger, out io.Writer) *Host {
	return &Host{
		logger: logger,
		out:    out,
	}
}

// Start switches the terminal into raw mode and starts reading key events.
func (h *Host) Start(fd int) error {
	c, err := openConsole(fd)
	if err != nil {
		return fmt.Errorf("opening console: %w", err)
	}
	h.console = c
	h.input = c.events
	h.started = true

	_, err = io.WriteString(h.out, escClear+escHideCursor)
	return err
}

// Stop restores the terminal state.
func (h *Host) Stop() {
	if !h.started {
		return
	}
	h.started = false
	_, _ = io.WriteString(h.out, escShowCursor+"\r\n")
	h.console.close()
}

// Input applies pending key events and releases keys whose hold time
// expired. Escape and Ctrl+C quit.
func (h *Host) Input(keys runner.KeySetter) bool {
	for index := range h.hold {
		if h.hold[index] == 0 {
			continue
		}
		h.hold[index]--
		if h.hold[index] == 0 {
			keys.SetKey(uint8(index), false)
		}
	}

	for {
		select {
		case b, ok := <-h.input:
			if !ok {
				return false
			}
			if b == keyEscape || b == keyCtrlC {
				return false
			}
			if key, ok := keyIndex(b); ok {
				if h.hold[key] == 0 {
					keys.SetKey(key, true)
				}
				h.hold[key] = holdFrames
			}
		default:
			return true
		}
	}
}

// Present redraws the display if it changed and rings the terminal bell when
// the tone starts.
func (h *Host) Present(d *display.Display, sound bool) error {
	var sb strings.Builder
	if sound && !h.lastSound {
		sb.WriteString(bell)
	}
	h.lastSound = sound

	if d.Dirty() {
		sb.WriteString(escHome)
		sb.WriteString(Render(d))
		d.ClearDirty()
	}

	if sb.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(h.out, sb.String())
	return err
}

// keyIndex maps a keyboard character to its keypad key.
func keyIndex(b byte) (uint8, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	pos := strings.IndexByte(keyboardLayout, b)
	if pos < 0 {
		return 0, false
	}
	return keypad.Layout[pos], true
}

// Render draws the display with half block characters, every text line
// holds two pixel rows. Lines are terminated with CR LF for raw mode.
func Render(d *display.Display) string {
	var sb strings.Builder
	for y := 0; y < d.Height(); y += 2 {
		for x := range d.Width() {
			top, bottom := d.Pixel(x, y), d.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteString("█")
			case top:
				sb.WriteString("▀")
			case bottom:
				sb.WriteString("▄")
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
