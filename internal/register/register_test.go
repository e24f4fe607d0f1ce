package register

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	f := New(0x200)

	assert.Equal(t, uint16(0x200), f.PC)
	assert.Equal(t, uint16(0), f.I)
	for i := range uint8(Count) {
		assert.Equal(t, uint8(0), f.Get(i))
	}
}

func TestGetSet_MasksIndex(t *testing.T) {
	f := New(0x200)

	f.Set(0x13, 0x42)
	assert.Equal(t, uint8(0x42), f.Get(0x3))
	assert.Equal(t, uint8(0x42), f.V[3])
}

func TestSetFlag(t *testing.T) {
	f := New(0x200)

	f.SetFlag(true)
	assert.Equal(t, uint8(1), f.V[Flag])

	f.SetFlag(false)
	assert.Equal(t, uint8(0), f.V[Flag])
}

func TestAdvance(t *testing.T) {
	f := New(0x200)
	f.Advance()
	assert.Equal(t, uint16(0x202), f.PC)
}

func TestReset(t *testing.T) {
	f := New(0x200)
	f.Set(0, 1)
	f.I = 0x300
	f.PC = 0x400

	f.Reset(0x600)

	assert.Equal(t, uint16(0x600), f.PC)
	assert.Equal(t, uint16(0), f.I)
	assert.Equal(t, uint8(0), f.Get(0))
}

func TestString(t *testing.T) {
	f := New(0x200)
	f.I = 0x123
	f.Set(0, 0xAB)

	assert.Equal(t, "PC=0200 I=0123 V=AB 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00", f.String())
}
