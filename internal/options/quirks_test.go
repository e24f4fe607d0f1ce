package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultQuirks(t *testing.T) {
	q := DefaultQuirks()

	assert.Equal(t, uint16(0x200), q.LoadOffset)
	assert.Equal(t, ShiftVx, q.Shift)
	assert.False(t, q.StoreLoadIncrement)
	assert.Equal(t, EdgeWrap, q.Draw)
	assert.False(t, q.AddIOverflow)
	assert.Equal(t, JumpV0, q.Jump)
}

func TestParseShiftSource(t *testing.T) {
	s, err := ParseShiftSource("VY")
	assert.NoError(t, err)
	assert.Equal(t, ShiftVy, s)
	assert.Equal(t, "vy", s.String())

	_, err = ParseShiftSource("vz")
	assert.ErrorContains(t, err, "unsupported shift source")
}

func TestParseEdgeMode(t *testing.T) {
	e, err := ParseEdgeMode("clip")
	assert.NoError(t, err)
	assert.Equal(t, EdgeClip, e)
	assert.Equal(t, "clip", e.String())

	_, err = ParseEdgeMode("bounce")
	assert.Error(t, err)
}

func TestParseJumpRegister(t *testing.T) {
	j, err := ParseJumpRegister("vx")
	assert.NoError(t, err)
	assert.Equal(t, JumpVx, j)

	_, err = ParseJumpRegister("v1")
	assert.Error(t, err)
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"OFF", false, false},
		{"true", true, false},
		{"0", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSwitch(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuirks_String(t *testing.T) {
	q := DefaultQuirks()
	q.StoreLoadIncrement = true

	assert.Equal(t, "offset=0x200 shift=vx increment=on draw=wrap addi-overflow=off jump=v0", q.String())
}

func TestNewProgram(t *testing.T) {
	opts := NewProgram()

	assert.Equal(t, FrontendWindow, opts.Frontend)
	assert.Equal(t, DefaultSpeed, opts.Speed)
	assert.Equal(t, DefaultScale, opts.Scale)
}
