package stack

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPushPop(t *testing.T) {
	s := New()

	assert.NoError(t, s.Push(0x202))
	assert.NoError(t, s.Push(0x304))
	assert.Equal(t, 2, s.Len())

	address, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x304), address)

	address, err = s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x202), address)
	assert.Equal(t, 0, s.Len())
}

func TestPush_Overflow(t *testing.T) {
	s := New()
	for i := range Depth {
		assert.NoError(t, s.Push(uint16(0x200+2*i)))
	}

	err := s.Push(0x400)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, Depth, s.Len())
}

func TestPop_Underflow(t *testing.T) {
	s := New()

	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrUnderflow))
}

func TestReset(t *testing.T) {
	s := New()
	assert.NoError(t, s.Push(0x202))

	s.Reset()

	assert.Equal(t, 0, s.Len())
	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrUnderflow))
}
