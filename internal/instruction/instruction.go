// Package instruction decodes 16 bit CHIP-8 opcode words into instructions.
//
// Opcode field conventions:
//
//	nnn - the lowest 12 bits, an address
//	nn  - the lowest 8 bits, an immediate byte
//	n   - the lowest 4 bits
//	x   - the lower 4 bits of the high byte, a register index
//	y   - the upper 4 bits of the low byte, a register index
package instruction

// Kind identifies the form of a decoded instruction.
type Kind uint8

// All instruction forms of the CHIP-8 instruction set.
const (
	Unknown Kind = iota
	Sys          // 0nnn SYS addr
	Cls          // 00E0 CLS
	Ret          // 00EE RET
	Jp           // 1nnn JP addr
	Call         // 2nnn CALL addr
	SeByte       // 3xnn SE Vx, byte
	SneByte      // 4xnn SNE Vx, byte
	SeReg        // 5xy0 SE Vx, Vy
	LdByte       // 6xnn LD Vx, byte
	AddByte      // 7xnn ADD Vx, byte
	LdReg        // 8xy0 LD Vx, Vy
	Or           // 8xy1 OR Vx, Vy
	And          // 8xy2 AND Vx, Vy
	Xor          // 8xy3 XOR Vx, Vy
	AddReg       // 8xy4 ADD Vx, Vy
	Sub          // 8xy5 SUB Vx, Vy
	Shr          // 8xy6 SHR Vx {, Vy}
	Subn         // 8xy7 SUBN Vx, Vy
	Shl          // 8xyE SHL Vx {, Vy}
	SneReg       // 9xy0 SNE Vx, Vy
	LdI          // Annn LD I, addr
	JpV0         // Bnnn JP V0, addr
	Rnd          // Cxnn RND Vx, byte
	Drw          // Dxyn DRW Vx, Vy, nibble
	Skp          // Ex9E SKP Vx
	Sknp         // ExA1 SKNP Vx
	LdVxDT       // Fx07 LD Vx, DT
	LdVxK        // Fx0A LD Vx, K
	LdDTVx       // Fx15 LD DT, Vx
	LdSTVx       // Fx18 LD ST, Vx
	AddI         // Fx1E ADD I, Vx
	LdF          // Fx29 LD F, Vx
	LdB          // Fx33 LD B, Vx
	Store        // Fx55 LD [I], Vx
	Load         // Fx65 LD Vx, [I]

	kindCount
)

// Size is the size of every instruction in bytes.
const Size = 2

// Instruction is a decoded opcode word with all operand fields extracted.
type Instruction struct {
	Kind Kind
	Word uint16 // raw opcode word

	X   uint8  // register index x
	Y   uint8  // register index y
	N   uint8  // 4 bit immediate
	NN  uint8  // 8 bit immediate
	NNN uint16 // 12 bit address
}

// Decode maps every possible opcode word to an instruction. Words that do
// not encode a known instruction return an instruction of kind Unknown.
func Decode(word uint16) Instruction {
	return Instruction{
		Kind: decodeKind(word),
		Word: word,
		X:    uint8(word>>8) & 0x0F,
		Y:    uint8(word>>4) & 0x0F,
		N:    uint8(word) & 0x0F,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}
}

func decodeKind(word uint16) Kind {
	low := word & 0x000F
	lowByte := word & 0x00FF

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			return Cls
		case 0x00EE:
			return Ret
		}
		return Sys

	case 0x1:
		return Jp
	case 0x2:
		return Call
	case 0x3:
		return SeByte
	case 0x4:
		return SneByte

	case 0x5:
		if low == 0x0 {
			return SeReg
		}

	case 0x6:
		return LdByte
	case 0x7:
		return AddByte

	case 0x8:
		return decodeALU(low)

	case 0x9:
		if low == 0x0 {
			return SneReg
		}

	case 0xA:
		return LdI
	case 0xB:
		return JpV0
	case 0xC:
		return Rnd
	case 0xD:
		return Drw

	case 0xE:
		switch lowByte {
		case 0x9E:
			return Skp
		case 0xA1:
			return Sknp
		}

	case 0xF:
		return decodeMisc(lowByte)
	}

	return Unknown
}

// decodeALU decodes the 8xyn register arithmetic family.
func decodeALU(low uint16) Kind {
	switch low {
	case 0x0:
		return LdReg
	case 0x1:
		return Or
	case 0x2:
		return And
	case 0x3:
		return Xor
	case 0x4:
		return AddReg
	case 0x5:
		return Sub
	case 0x6:
		return Shr
	case 0x7:
		return Subn
	case 0xE:
		return Shl
	default:
		return Unknown
	}
}

// decodeMisc decodes the Fxnn timer, keypad and memory family.
func decodeMisc(lowByte uint16) Kind {
	switch lowByte {
	case 0x07:
		return LdVxDT
	case 0x0A:
		return LdVxK
	case 0x15:
		return LdDTVx
	case 0x18:
		return LdSTVx
	case 0x1E:
		return AddI
	case 0x29:
		return LdF
	case 0x33:
		return LdB
	case 0x55:
		return Store
	case 0x65:
		return Load
	default:
		return Unknown
	}
}
