package config

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestProfile(t *testing.T) {
	tests := []struct {
		platform string
		offset   uint16
		shift    options.ShiftSource
		inc      bool
		draw     options.EdgeMode
		jump     options.JumpRegister
	}{
		{PlatformModern, 0x200, options.ShiftVx, false, options.EdgeWrap, options.JumpV0},
		{PlatformCosmac, 0x200, options.ShiftVy, true, options.EdgeClip, options.JumpV0},
		{PlatformSuperChip, 0x200, options.ShiftVx, false, options.EdgeClip, options.JumpVx},
		{PlatformETI660, 0x600, options.ShiftVy, true, options.EdgeClip, options.JumpV0},
		{"COSMAC", 0x200, options.ShiftVy, true, options.EdgeClip, options.JumpV0},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			q, err := Profile(tt.platform)
			assert.NoError(t, err)
			assert.Equal(t, tt.offset, q.LoadOffset)
			assert.Equal(t, tt.shift, q.Shift)
			assert.Equal(t, tt.inc, q.StoreLoadIncrement)
			assert.Equal(t, tt.draw, q.Draw)
			assert.Equal(t, tt.jump, q.Jump)
			assert.False(t, q.AddIOverflow)
		})
	}
}

func TestProfile_Unknown(t *testing.T) {
	_, err := Profile("xochip")
	assert.True(t, errors.Is(err, ErrUnknownPlatform))
	assert.ErrorContains(t, err, "cosmac, eti660, modern, schip")
}

func TestResolveQuirks(t *testing.T) {
	q, err := ResolveQuirks(PlatformModern, options.QuirkOverrides{
		LoadOffset:         "0x600",
		Shift:              "vy",
		StoreLoadIncrement: "on",
		Draw:               "clip",
		AddIOverflow:       "on",
		Jump:               "vx",
	})
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x600), q.LoadOffset)
	assert.Equal(t, options.ShiftVy, q.Shift)
	assert.True(t, q.StoreLoadIncrement)
	assert.Equal(t, options.EdgeClip, q.Draw)
	assert.True(t, q.AddIOverflow)
	assert.Equal(t, options.JumpVx, q.Jump)
}

func TestResolveQuirks_KeepsProfile(t *testing.T) {
	q, err := ResolveQuirks(PlatformCosmac, options.QuirkOverrides{Draw: "wrap"})
	assert.NoError(t, err)

	assert.Equal(t, options.ShiftVy, q.Shift)
	assert.True(t, q.StoreLoadIncrement)
	assert.Equal(t, options.EdgeWrap, q.Draw)
}

func TestResolveQuirks_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides options.QuirkOverrides
	}{
		{"offset not a number", options.QuirkOverrides{LoadOffset: "start"}},
		{"offset in reserved area", options.QuirkOverrides{LoadOffset: "0x100"}},
		{"offset outside of memory", options.QuirkOverrides{LoadOffset: "0x1000"}},
		{"shift", options.QuirkOverrides{Shift: "vz"}},
		{"increment", options.QuirkOverrides{StoreLoadIncrement: "sometimes"}},
		{"draw", options.QuirkOverrides{Draw: "mirror"}},
		{"overflow", options.QuirkOverrides{AddIOverflow: "2"}},
		{"jump", options.QuirkOverrides{Jump: "v1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveQuirks(PlatformModern, tt.overrides)
			assert.Error(t, err)
		})
	}
}

func TestParseLoadOffset(t *testing.T) {
	offset, err := parseLoadOffset("1536")
	assert.NoError(t, err)
	assert.Equal(t, uint16(memory.ETI660ProgramStart), offset)

	_, err = parseLoadOffset("0x10")
	assert.True(t, errors.Is(err, memory.ErrInvalidOffset))
}
