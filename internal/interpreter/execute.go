package interpreter

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
)

// execute runs a decoded instruction. The program counter already points to
// the following instruction. Only fatal faults are returned as errors.
func (i *Interpreter) execute(pc uint16, ins instruction.Instruction) error {
	r := i.registers

	switch ins.Kind {
	case instruction.Unknown:
		i.anomalies.report(Anomaly{Kind: UnknownOpcode, PC: pc, Word: ins.Word})

	case instruction.Sys:
		i.anomalies.report(Anomaly{Kind: MachineCall, PC: pc, Word: ins.Word})

	case instruction.Cls:
		i.display.Clear()

	case instruction.Ret:
		address, err := i.stack.Pop()
		if err != nil {
			return err
		}
		r.PC = address

	case instruction.Jp:
		r.PC = ins.NNN

	case instruction.Call:
		if err := i.stack.Push(r.PC); err != nil {
			return err
		}
		r.PC = ins.NNN

	case instruction.SeByte:
		i.skipIf(r.Get(ins.X) == ins.NN)

	case instruction.SneByte:
		i.skipIf(r.Get(ins.X) != ins.NN)

	case instruction.SeReg:
		i.skipIf(r.Get(ins.X) == r.Get(ins.Y))

	case instruction.SneReg:
		i.skipIf(r.Get(ins.X) != r.Get(ins.Y))

	case instruction.LdByte:
		r.Set(ins.X, ins.NN)

	case instruction.AddByte:
		r.Set(ins.X, r.Get(ins.X)+ins.NN)

	case instruction.LdReg:
		r.Set(ins.X, r.Get(ins.Y))

	case instruction.Or:
		r.Set(ins.X, r.Get(ins.X)|r.Get(ins.Y))

	case instruction.And:
		r.Set(ins.X, r.Get(ins.X)&r.Get(ins.Y))

	case instruction.Xor:
		r.Set(ins.X, r.Get(ins.X)^r.Get(ins.Y))

	case instruction.AddReg, instruction.Sub, instruction.Subn,
		instruction.Shr, instruction.Shl:
		i.executeALU(ins)

	case instruction.LdI:
		r.I = ins.NNN

	case instruction.JpV0:
		i.jumpWithOffset(ins)

	case instruction.Rnd:
		r.Set(ins.X, i.random()&ins.NN)

	case instruction.Drw:
		i.draw(pc, ins)

	case instruction.Skp:
		i.skipIf(i.keypad.Pressed(r.Get(ins.X)))

	case instruction.Sknp:
		i.skipIf(!i.keypad.Pressed(r.Get(ins.X)))

	case instruction.LdVxK:
		i.waitForKey(ins)

	case instruction.LdVxDT, instruction.LdDTVx, instruction.LdSTVx:
		i.executeTimer(ins)

	case instruction.AddI, instruction.LdF, instruction.LdB,
		instruction.Store, instruction.Load:
		i.executeIndex(pc, ins)

	default:
		return fmt.Errorf("unhandled instruction kind %d", ins.Kind)
	}
	return nil
}

// executeALU runs the register to register arithmetic instructions that
// set VF. The flag is written after the result so that VF as destination
// ends up holding the flag.
func (i *Interpreter) executeALU(ins instruction.Instruction) {
	r := i.registers
	vx, vy := r.Get(ins.X), r.Get(ins.Y)

	switch ins.Kind {
	case instruction.AddReg:
		sum := uint16(vx) + uint16(vy)
		r.Set(ins.X, uint8(sum))
		r.SetFlag(sum > 0xFF)

	case instruction.Sub:
		r.Set(ins.X, vx-vy)
		r.SetFlag(vx >= vy)

	case instruction.Subn:
		r.Set(ins.X, vy-vx)
		r.SetFlag(vy >= vx)

	case instruction.Shr:
		source := i.shiftSource(vx, vy)
		r.Set(ins.X, source>>1)
		r.SetFlag(source&0x01 != 0)

	case instruction.Shl:
		source := i.shiftSource(vx, vy)
		r.Set(ins.X, source<<1)
		r.SetFlag(source&0x80 != 0)
	}
}

func (i *Interpreter) shiftSource(vx, vy uint8) uint8 {
	if i.quirks.Shift == options.ShiftVy {
		return vy
	}
	return vx
}

func (i *Interpreter) executeTimer(ins instruction.Instruction) {
	r := i.registers

	switch ins.Kind {
	case instruction.LdVxDT:
		r.Set(ins.X, i.timers.Delay)
	case instruction.LdDTVx:
		i.timers.Delay = r.Get(ins.X)
	case instruction.LdSTVx:
		i.timers.Sound = r.Get(ins.X)
	}
}

// executeIndex runs the instructions that read or modify the index register.
func (i *Interpreter) executeIndex(pc uint16, ins instruction.Instruction) {
	r := i.registers
	x := ins.X

	switch ins.Kind {
	case instruction.AddI:
		sum := uint32(r.I) + uint32(r.Get(x))
		r.I = uint16(sum)
		if i.quirks.AddIOverflow {
			r.SetFlag(sum > memory.AddressMask)
		}

	case instruction.LdF:
		r.I = memory.GlyphAddress(r.Get(x))

	case instruction.LdB:
		i.checkIndex(pc, ins, 3)
		value := r.Get(x)
		i.memory.Write(r.I, value/100)
		i.memory.Write(r.I+1, value/10%10)
		i.memory.Write(r.I+2, value%10)

	case instruction.Store:
		i.checkIndex(pc, ins, int(x)+1)
		for n := range x + 1 {
			i.memory.Write(r.I+uint16(n), r.Get(n))
		}
		if i.quirks.StoreLoadIncrement {
			r.I += uint16(x) + 1
		}

	case instruction.Load:
		i.checkIndex(pc, ins, int(x)+1)
		for n := range x + 1 {
			r.Set(n, i.memory.Read(r.I+uint16(n)))
		}
		if i.quirks.StoreLoadIncrement {
			r.I += uint16(x) + 1
		}
	}
}

func (i *Interpreter) draw(pc uint16, ins instruction.Instruction) {
	r := i.registers
	i.checkIndex(pc, ins, int(ins.N))
	sprite := i.memory.ReadBlock(r.I, int(ins.N))
	collision := i.display.Draw(int(r.Get(ins.X)), int(r.Get(ins.Y)), sprite)
	r.SetFlag(collision)
}

func (i *Interpreter) jumpWithOffset(ins instruction.Instruction) {
	index := uint8(0)
	if i.quirks.Jump == options.JumpVx {
		index = uint8(ins.NNN >> 8)
	}
	i.registers.PC = ins.NNN + uint16(i.registers.Get(index))
}

// waitForKey implements the key wait as a machine state. The instruction is
// repeated by rewinding the program counter until a key press that happened
// after the wait started is available.
func (i *Interpreter) waitForKey(ins instruction.Instruction) {
	if !i.awaitingKey {
		i.keypad.Arm()
		i.awaitingKey = true
	}

	if key, ok := i.keypad.TakePress(); ok {
		i.registers.Set(ins.X, key)
		i.awaitingKey = false
		return
	}
	i.registers.PC -= instruction.Size
}

func (i *Interpreter) skipIf(condition bool) {
	if condition {
		i.registers.Advance()
	}
}

// checkIndex reports an anomaly if an access of length bytes through I
// crosses the end of the address space.
func (i *Interpreter) checkIndex(pc uint16, ins instruction.Instruction, length int) {
	if int(i.registers.I)+length > memory.Size {
		i.anomalies.report(Anomaly{Kind: IndexWrap, PC: pc, Word: ins.Word})
	}
}
