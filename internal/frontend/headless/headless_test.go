package headless

import (
	"context"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestHost_Run(t *testing.T) {
	logger := log.NewTestLogger(t)
	machine := interpreter.New(logger, options.DefaultQuirks())
	assert.NoError(t, machine.Load([]byte{
		0xF1, 0x0A, // LD V1, K
		0xF1, 0x29, // LD F, V1
		0xD0, 0x05, // DRW V0, V0, 5
		0x61, 0x04, // LD V1, 4
		0xF1, 0x18, // LD ST, V1
		0x12, 0x0A, // JP self
	}))

	host := New(
		KeyEvent{Frame: 2, Key: 0x1, Pressed: true},
		KeyEvent{Frame: 3, Key: 0x1, Pressed: false},
	)
	scheduler := runner.NewScheduler(logger, machine, 600)

	err := scheduler.Run(context.Background(), host, runner.RunOptions{FrameLimit: 10})
	assert.NoError(t, err)

	assert.Equal(t, 10, host.Frames())
	assert.Equal(t, 3, host.SoundFrames())
	assert.False(t, machine.AwaitingKey())

	// glyph 1 drawn at the top left corner
	rows := strings.Split(host.Screen(), "\n")
	assert.Equal(t, "..#.....", rows[0][:8])
	assert.Equal(t, ".##.....", rows[1][:8])
}
