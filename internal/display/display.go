// Package display implements the monochrome CHIP-8 frame buffer.
package display

import "strings"

const (
	// Width is the number of columns in standard resolution.
	Width = 64
	// Height is the number of rows in standard resolution.
	Height = 32

	// HiResWidth is the number of columns in high resolution.
	HiResWidth = 128
	// HiResHeight is the number of rows in high resolution.
	HiResHeight = 64

	spriteWidth = 8
)

// Display is a fixed size grid of pixels that sprites are XOR drawn onto.
type Display struct {
	width  int
	height int
	clip   bool

	pixels []bool
	dirty  bool
}

// New returns a cleared display of the given size. When clip is set, sprite
// pixels that extend past the right or bottom edge are dropped instead of
// wrapping around to the opposite edge.
func New(width, height int, clip bool) *Display {
	if width <= 0 || height <= 0 {
		width, height = Width, Height
	}
	return &Display{
		width:  width,
		height: height,
		clip:   clip,
		pixels: make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (d *Display) Width() int {
	return d.width
}

// Height returns the number of rows.
func (d *Display) Height() int {
	return d.height
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	clear(d.pixels)
	d.dirty = true
}

// Draw XORs the sprite onto the display with its top left corner at x, y.
// Every sprite byte is one row of 8 pixels, most significant bit leftmost.
// The start coordinates always wrap, pixels that cross the edge wrap or are
// clipped depending on the configuration. It returns whether any pixel that
// was on got turned off.
func (d *Display) Draw(x, y int, sprite []byte) bool {
	x %= d.width
	y %= d.height
	collision := false

	for row, bits := range sprite {
		for col := range spriteWidth {
			if bits&(0x80>>col) == 0 {
				continue
			}

			i, ok := d.locate(x+col, y+row)
			if !ok {
				continue
			}
			if d.pixels[i] {
				collision = true
			}
			d.pixels[i] = !d.pixels[i]
		}
	}

	d.dirty = true
	return collision
}

// Pixel returns whether the pixel at x, y is on. Coordinates outside of the
// display are reported as off.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return false
	}
	return d.pixels[y*d.width+x]
}

// Pixels returns a copy of the pixel grid in row major order.
func (d *Display) Pixels() []bool {
	pixels := make([]bool, len(d.pixels))
	copy(pixels, d.pixels)
	return pixels
}

// Lit returns the number of pixels that are on.
func (d *Display) Lit() int {
	count := 0
	for _, on := range d.pixels {
		if on {
			count++
		}
	}
	return count
}

// Dirty returns whether the display changed since the last ClearDirty call.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty acknowledges that the current frame has been presented.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// String renders the display as text, one line per row.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((d.width + 1) * d.height)
	for y := range d.height {
		for x := range d.width {
			if d.pixels[y*d.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// locate maps drawing coordinates to a pixel index, applying the edge
// behavior. It returns false if the pixel is clipped.
func (d *Display) locate(x, y int) (int, bool) {
	if x >= d.width || y >= d.height {
		if d.clip {
			return 0, false
		}
		x %= d.width
		y %= d.height
	}
	return y*d.width + x, true
}
