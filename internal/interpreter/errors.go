package interpreter

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/stack"
)

var (
	// ErrPCOutOfBounds is returned when the program counter points outside of
	// the address space at fetch time.
	ErrPCOutOfBounds = errors.New("program counter out of bounds")
	// ErrStackOverflow is returned by CALL with a full call stack.
	ErrStackOverflow = stack.ErrOverflow
	// ErrStackUnderflow is returned by RET with an empty call stack.
	ErrStackUnderflow = stack.ErrUnderflow
	// ErrHalted is returned by Step after a fault until the machine is reset.
	ErrHalted = errors.New("machine halted")
)

// Fault is a fatal execution error. It halts the machine.
type Fault struct {
	PC   uint16 // address of the faulting instruction
	Word uint16 // faulting instruction word, 0 for fetch faults
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at $%04X: %s", f.PC, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
