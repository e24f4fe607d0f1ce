// Package register implements the CHIP-8 register file.
package register

import "fmt"

const (
	// Count is the number of general purpose registers.
	Count = 16

	// Flag is the index of VF, the carry, borrow and collision flag.
	Flag = 0xF
)

// File contains the general purpose registers V0-VF, the index register I
// and the program counter.
type File struct {
	V  [Count]uint8
	I  uint16
	PC uint16
}

// New returns a register file with the program counter set to the entry point.
func New(entry uint16) *File {
	return &File{PC: entry}
}

// Get returns the value of the register with the low nibble of index.
func (f *File) Get(index uint8) uint8 {
	return f.V[index&0x0F]
}

// Set sets the value of the register with the low nibble of index.
func (f *File) Set(index, value uint8) {
	f.V[index&0x0F] = value
}

// SetFlag sets VF to 1 if the condition is true, otherwise to 0.
func (f *File) SetFlag(condition bool) {
	if condition {
		f.V[Flag] = 1
	} else {
		f.V[Flag] = 0
	}
}

// Advance moves the program counter to the next instruction.
func (f *File) Advance() {
	f.PC += 2
}

// Reset clears all registers and sets the program counter to the entry point.
func (f *File) Reset(entry uint16) {
	*f = File{PC: entry}
}

// String returns a compact dump of the register state.
func (f *File) String() string {
	return fmt.Sprintf("PC=%04X I=%04X V=% X", f.PC, f.I, f.V[:])
}
