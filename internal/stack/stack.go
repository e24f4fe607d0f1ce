// Package stack implements the bounded CHIP-8 subroutine call stack.
package stack

import "errors"

// Depth is the maximum number of nested subroutine calls.
const Depth = 16

var (
	// ErrOverflow is returned when pushing onto a full stack.
	ErrOverflow = errors.New("call stack overflow")
	// ErrUnderflow is returned when popping from an empty stack.
	ErrUnderflow = errors.New("call stack underflow")
)

// Stack holds the return addresses of active subroutine calls.
type Stack struct {
	entries [Depth]uint16
	sp      int
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push stores a return address.
func (s *Stack) Push(address uint16) error {
	if s.sp == Depth {
		return ErrOverflow
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrUnderflow
	}
	s.sp--
	address := s.entries[s.sp]
	s.entries[s.sp] = 0
	return address, nil
}

// Len returns the number of stored return addresses.
func (s *Stack) Len() int {
	return s.sp
}

// Reset empties the stack.
func (s *Stack) Reset() {
	*s = Stack{}
}
