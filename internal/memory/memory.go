// Package memory implements the 4KB CHIP-8 address space.
//
// CHIP-8 memory map:
//
//	0x000-0x1FF: Interpreter area, holds the font glyphs
//	0x200-0xFFF: Program and data space for most programs
//	0x600-0xFFF: Program and data space for ETI 660 programs
package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of addressable bytes.
	Size = 0x1000

	// AddressMask reduces any 16 bit address into the address space.
	AddressMask = Size - 1

	// ReservedEnd is the first address after the interpreter area.
	ReservedEnd = 0x200

	// ProgramStart is the load offset used by most CHIP-8 programs.
	ProgramStart = 0x200

	// ETI660ProgramStart is the load offset used by ETI 660 programs.
	ETI660ProgramStart = 0x600
)

var (
	// ErrEmptyImage is returned when loading a program image without any bytes.
	ErrEmptyImage = errors.New("program image is empty")
	// ErrImageTooLarge is returned when a program image does not fit above the load offset.
	ErrImageTooLarge = errors.New("program image does not fit into memory")
	// ErrInvalidOffset is returned for load offsets outside of the program space.
	ErrInvalidOffset = errors.New("invalid load offset")
)

// Memory is the fixed size CHIP-8 address space.
type Memory struct {
	data [Size]byte
}

// New returns a zeroed memory with the font glyphs installed.
func New() *Memory {
	m := &Memory{}
	m.installFont()
	return m
}

// Wrap maps an arbitrary address into the address space. All accesses that
// are derived from the index register go through it.
func Wrap(address uint16) uint16 {
	return address & AddressMask
}

// InBounds returns whether the address can be accessed without wrapping.
func InBounds(address uint16) bool {
	return int(address) < Size
}

// Read returns the byte at the wrapped address.
func (m *Memory) Read(address uint16) byte {
	return m.data[Wrap(address)]
}

// Write sets the byte at the wrapped address.
func (m *Memory) Write(address uint16, value byte) {
	m.data[Wrap(address)] = value
}

// ReadWord returns the big endian 16 bit word stored at address and address+1.
// The caller has to ensure that both bytes are in bounds.
func (m *Memory) ReadWord(address uint16) uint16 {
	return uint16(m.data[address])<<8 | uint16(m.data[address+1])
}

// ReadBlock copies length bytes starting at address into a new slice,
// wrapping around the end of the address space.
func (m *Memory) ReadBlock(address uint16, length int) []byte {
	block := make([]byte, length)
	for i := range block {
		block[i] = m.Read(address + uint16(i))
	}
	return block
}

// Load writes the program image verbatim starting at offset. The image is
// validated before any byte is written, so a rejected image leaves the
// memory untouched. Bytes of a previously loaded image above the offset are
// cleared.
func (m *Memory) Load(image []byte, offset uint16) error {
	if offset < ReservedEnd || !InBounds(offset) {
		return fmt.Errorf("%w: 0x%03X", ErrInvalidOffset, offset)
	}
	if len(image) == 0 {
		return ErrEmptyImage
	}
	if capacity := MaxImageSize(offset); len(image) > capacity {
		return fmt.Errorf("%w: %d bytes, maximum is %d bytes at offset 0x%03X",
			ErrImageTooLarge, len(image), capacity, offset)
	}

	clear(m.data[offset:])
	copy(m.data[offset:], image)
	return nil
}

// Reset zeroes the memory and reinstalls the font glyphs.
func (m *Memory) Reset() {
	clear(m.data[:])
	m.installFont()
}

// Bytes returns a copy of the full memory image.
func (m *Memory) Bytes() []byte {
	data := make([]byte, Size)
	copy(data, m.data[:])
	return data
}

// MaxImageSize returns the largest program image that fits at the offset.
func MaxImageSize(offset uint16) int {
	if !InBounds(offset) {
		return 0
	}
	return Size - int(offset)
}
