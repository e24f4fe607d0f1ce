package instruction

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// sysName is the mnemonic of the machine code routine call, it has no
// entry in the CPU definitions.
const sysName = "sys"

// definitions maps every instruction kind to its CPU definition.
var definitions = [kindCount]*chip8.Instruction{
	Cls:     chip8.ClsInst,
	Ret:     chip8.RetInst,
	Jp:      chip8.JpInst,
	Call:    chip8.CallInst,
	SeByte:  chip8.SeInst,
	SneByte: chip8.SneInst,
	SeReg:   chip8.SeInst,
	LdByte:  chip8.LdInst,
	AddByte: chip8.AddInst,
	LdReg:   chip8.LdInst,
	Or:      chip8.OrInst,
	And:     chip8.AndInst,
	Xor:     chip8.XorInst,
	AddReg:  chip8.AddInst,
	Sub:     chip8.SubInst,
	Shr:     chip8.ShrInst,
	Subn:    chip8.SubnInst,
	Shl:     chip8.ShlInst,
	SneReg:  chip8.SneInst,
	LdI:     chip8.LdInst,
	JpV0:    chip8.JpInst,
	Rnd:     chip8.RndInst,
	Drw:     chip8.DrwInst,
	Skp:     chip8.SkpInst,
	Sknp:    chip8.SknpInst,
	LdVxDT:  chip8.LdInst,
	LdVxK:   chip8.LdInst,
	LdDTVx:  chip8.LdInst,
	LdSTVx:  chip8.LdInst,
	AddI:    chip8.AddInst,
	LdF:     chip8.LdInst,
	LdB:     chip8.LdInst,
	Store:   chip8.LdInst,
	Load:    chip8.LdInst,
}

// Definition returns the CPU definition of the instruction kind, nil for
// Unknown and Sys.
func (k Kind) Definition() *chip8.Instruction {
	if k >= kindCount {
		return nil
	}
	return definitions[k]
}

// Mnemonic returns the assembler name of the instruction, an empty string
// for unknown words.
func (i Instruction) Mnemonic() string {
	if i.Kind == Sys {
		return sysName
	}
	if def := i.Kind.Definition(); def != nil {
		return def.Name
	}
	return ""
}

// String returns the instruction in assembler notation.
func (i Instruction) String() string {
	if i.Kind == Unknown {
		return fmt.Sprintf("unknown $%04X", i.Word)
	}
	if params := i.params(); params != "" {
		return fmt.Sprintf("%s %s", i.Mnemonic(), params)
	}
	return i.Mnemonic()
}

func (i Instruction) params() string {
	switch i.Kind {
	case Sys, Jp, Call:
		return fmt.Sprintf("$%03X", i.NNN)
	case SeByte, SneByte, LdByte, AddByte, Rnd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case SeReg, SneReg, LdReg, Or, And, Xor, AddReg, Sub, Subn:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case Shr, Shl, Skp, Sknp:
		return fmt.Sprintf("V%X", i.X)
	case LdI:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case JpV0:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case Drw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case LdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case LdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case LdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case LdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case AddI:
		return fmt.Sprintf("I, V%X", i.X)
	case LdF:
		return fmt.Sprintf("F, V%X", i.X)
	case LdB:
		return fmt.Sprintf("B, V%X", i.X)
	case Store:
		return fmt.Sprintf("[I], V%X", i.X)
	case Load:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}
