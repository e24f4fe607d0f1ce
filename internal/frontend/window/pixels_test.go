package window

import (
	"image/color"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFillRGBA(t *testing.T) {
	fg := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	bg := color.RGBA{R: 5, G: 6, B: 7, A: 8}
	dst := make([]byte, 8)

	fillRGBA(dst, []bool{true, false}, fg, bg)

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, dst)
}

func TestOptions_SetDefaults(t *testing.T) {
	var opts Options
	opts.setDefaults()

	assert.Equal(t, 10, opts.Scale)
	assert.Equal(t, DefaultForeground, opts.Foreground)
	assert.Equal(t, DefaultBackground, opts.Background)
	assert.Equal(t, "retrochip8", opts.Title)

	opts = Options{Scale: 4, Title: "pong"}
	opts.setDefaults()
	assert.Equal(t, 4, opts.Scale)
	assert.Equal(t, "pong", opts.Title)
}
