package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseArgs(t, "pong.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, "", opts.Platform)
	assert.Equal(t, options.FrontendWindow, opts.Frontend)
	assert.Equal(t, options.DefaultSpeed, opts.Speed)
	assert.Equal(t, options.DefaultScale, opts.Scale)
	assert.Equal(t, 0, opts.Frames)
	assert.False(t, opts.Mute)
	assert.Equal(t, options.QuirkOverrides{}, opts.Overrides)
}

func TestParseFlags_Options(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program)
	}{
		{
			name: "platform is lowercased",
			args: []string{"-p", "COSMAC", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "cosmac", opts.Platform)
			},
		},
		{
			name: "headless frontend with frame limit",
			args: []string{"-frontend", "Headless", "-frames", "120", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, options.FrontendHeadless, opts.Frontend)
				assert.Equal(t, 120, opts.Frames)
			},
		},
		{
			name: "speed scale and mute",
			args: []string{"-speed", "1000", "-scale", "4", "-mute", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, 1000, opts.Speed)
				assert.Equal(t, 4, opts.Scale)
				assert.True(t, opts.Mute)
			},
		},
		{
			name: "zero scale falls back to default",
			args: []string{"-scale", "0", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, options.DefaultScale, opts.Scale)
			},
		},
		{
			name: "quirk overrides",
			args: []string{
				"-offset", "0x600", "-shift", "vy", "-increment", "on",
				"-draw", "clip", "-addi-overflow", "on", "-jump", "vx", "game.ch8",
			},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, options.QuirkOverrides{
					LoadOffset:         "0x600",
					Shift:              "vy",
					StoreLoadIncrement: "on",
					Draw:               "clip",
					AddIOverflow:       "on",
					Jump:               "vx",
				}, opts.Overrides)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{"no program file", nil, true},
		{"flag after file", []string{"game.ch8", "-q"}, true},
		{"unknown frontend", []string{"-frontend", "vga", "game.ch8"}, false},
		{"unknown platform", []string{"-p", "xochip", "game.ch8"}, false},
		{"zero speed", []string{"-speed", "0", "game.ch8"}, false},
		{"negative frames", []string{"-frames", "-1", "game.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs([]string{"game.ch8"}))
	assert.NoError(t, validateArgs([]string{"game.ch8", ""}))
	assert.Error(t, validateArgs([]string{"game.ch8", "-debug"}))
}
