// Package window implements a frontend that shows the display in a desktop
// window and reads the keypad from the keyboard.
package window

import (
	"errors"
	"image/color"
)

// ErrNotSupported is returned by Run in builds without window support.
var ErrNotSupported = errors.New("window frontend is not supported in this build")

// Default colors of lit and unlit pixels.
var (
	DefaultForeground = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	DefaultBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
)

// Sound receives the tone state after every frame.
type Sound interface {
	SetActive(active bool)
}

// Options configures the window.
type Options struct {
	Title      string
	Scale      int // window pixels per display pixel
	FrameLimit int // close the window after this many frames, 0 runs until closed
	Foreground color.RGBA
	Background color.RGBA
	Sound      Sound
}

// fillRGBA converts the pixel grid into RGBA pixel data.
func fillRGBA(dst []byte, pixels []bool, foreground, background color.RGBA) {
	for i, lit := range pixels {
		c := background
		if lit {
			c = foreground
		}
		offset := i * 4
		dst[offset] = c.R
		dst[offset+1] = c.G
		dst[offset+2] = c.B
		dst[offset+3] = c.A
	}
}

func (o *Options) setDefaults() {
	if o.Scale <= 0 {
		o.Scale = 10
	}
	if o.Foreground == (color.RGBA{}) {
		o.Foreground = DefaultForeground
	}
	if o.Background == (color.RGBA{}) {
		o.Background = DefaultBackground
	}
	if o.Title == "" {
		o.Title = "retrochip8"
	}
}
