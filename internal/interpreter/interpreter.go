// Package interpreter implements the CHIP-8 virtual machine. It owns the
// complete machine state and executes one instruction per Step call.
package interpreter

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrochip8/internal/stack"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// RandomSource returns a uniformly distributed byte.
type RandomSource func() uint8

// Option configures an interpreter.
type Option func(*Interpreter)

// WithAnomalyHandler sets a handler that receives every recoverable anomaly.
func WithAnomalyHandler(handler AnomalyHandler) Option {
	return func(i *Interpreter) {
		i.anomalyHandler = handler
	}
}

// WithRandomSource replaces the random byte generator used by RND.
func WithRandomSource(source RandomSource) Option {
	return func(i *Interpreter) {
		i.random = source
	}
}

// WithDisplaySize sets the size of the display grid. Non positive sizes keep
// the standard 64x32 grid.
func WithDisplaySize(width, height int) Option {
	return func(i *Interpreter) {
		i.width = width
		i.height = height
	}
}

// Interpreter is a CHIP-8 virtual machine. It is not safe for concurrent use,
// a single driver owns it and calls Step and TickTimers at independent rates.
type Interpreter struct {
	logger *log.Logger
	quirks options.Quirks

	memory    *memory.Memory
	registers *register.File
	stack     *stack.Stack
	timers    *timer.Timer
	display   *display.Display
	keypad    *keypad.Keypad

	random         RandomSource
	anomalyHandler AnomalyHandler
	anomalies      *anomalyReporter

	image         []byte
	width, height int
	awaitingKey   bool
	fault         *Fault
	steps         uint64
}

// New returns an interpreter configured with the given quirks. The program
// counter starts at the load offset of the quirks.
func New(logger *log.Logger, quirks options.Quirks, opts ...Option) *Interpreter {
	i := &Interpreter{
		logger: logger,
		quirks: quirks,
		width:  display.Width,
		height: display.Height,
		random: randomByte,
	}
	for _, opt := range opts {
		opt(i)
	}

	i.memory = memory.New()
	i.registers = register.New(quirks.LoadOffset)
	i.stack = stack.New()
	i.timers = timer.New()
	i.display = display.New(i.width, i.height, quirks.Draw == options.EdgeClip)
	i.keypad = keypad.New()
	i.anomalies = newAnomalyReporter(logger, i.anomalyHandler)
	return i
}

// Load copies the program image into memory at the load offset. The image is
// validated before anything is written.
func (i *Interpreter) Load(image []byte) error {
	if err := i.memory.Load(image, i.quirks.LoadOffset); err != nil {
		return fmt.Errorf("loading program image: %w", err)
	}
	i.image = slices.Clone(image)
	i.logger.Debug("Program image loaded",
		log.Int("size", len(image)),
		log.Hex("offset", i.quirks.LoadOffset))
	return nil
}

// Step fetches, decodes and executes a single instruction. It returns a
// *Fault for fatal errors, after which every call returns ErrHalted until
// Reset is called.
func (i *Interpreter) Step() error {
	if i.fault != nil {
		return fmt.Errorf("%w: %w", ErrHalted, i.fault)
	}

	pc := i.registers.PC
	if !memory.InBounds(pc) || !memory.InBounds(pc+instruction.Size-1) {
		return i.halt(&Fault{PC: pc, Err: ErrPCOutOfBounds})
	}

	word := i.memory.ReadWord(pc)
	i.registers.Advance()
	ins := instruction.Decode(word)

	if err := i.execute(pc, ins); err != nil {
		return i.halt(&Fault{PC: pc, Word: word, Err: err})
	}
	i.steps++
	return nil
}

// TickTimers decrements the delay and sound timers, it has to be called at
// 60 Hz independent of the instruction rate.
func (i *Interpreter) TickTimers() {
	i.timers.Tick()
}

// Reset restores the power on state and reloads the last loaded program.
func (i *Interpreter) Reset() {
	i.memory.Reset()
	if i.image != nil {
		// the image was validated by Load
		_ = i.memory.Load(i.image, i.quirks.LoadOffset)
	}
	i.registers.Reset(i.quirks.LoadOffset)
	i.stack.Reset()
	i.timers.Reset()
	i.display.Clear()
	i.keypad.Reset()
	i.anomalies.reset()
	i.awaitingKey = false
	i.fault = nil
	i.steps = 0
}

// SetKey updates the state of the key with the low nibble of index.
func (i *Interpreter) SetKey(index uint8, pressed bool) {
	i.keypad.Set(index, pressed)
}

// SoundActive returns whether the tone should currently be audible.
func (i *Interpreter) SoundActive() bool {
	return i.timers.SoundActive()
}

// Display returns the display. Callers must only read from it.
func (i *Interpreter) Display() *display.Display {
	return i.display
}

// AwaitingKey returns whether execution is blocked on a key wait instruction.
func (i *Interpreter) AwaitingKey() bool {
	return i.awaitingKey
}

// Halted returns whether a fault stopped the machine.
func (i *Interpreter) Halted() bool {
	return i.fault != nil
}

// Fault returns the fault that halted the machine or nil.
func (i *Interpreter) Fault() *Fault {
	return i.fault
}

// Registers returns a copy of the register file.
func (i *Interpreter) Registers() register.File {
	return *i.registers
}

// Timers returns a copy of the timer state.
func (i *Interpreter) Timers() timer.Timer {
	return *i.timers
}

// StackDepth returns the number of return addresses on the call stack.
func (i *Interpreter) StackDepth() int {
	return i.stack.Len()
}

// Memory returns a copy of the address space.
func (i *Interpreter) Memory() []byte {
	return i.memory.Bytes()
}

// Steps returns the number of instructions executed since the last reset.
func (i *Interpreter) Steps() uint64 {
	return i.steps
}

// Quirks returns the quirk configuration of the interpreter.
func (i *Interpreter) Quirks() options.Quirks {
	return i.quirks
}

// halt stops the machine. The fault is logged as a warning, reporting it
// as an error is left to the driver that decides how to continue.
func (i *Interpreter) halt(fault *Fault) error {
	i.fault = fault
	i.awaitingKey = false

	if errors.Is(fault.Err, ErrPCOutOfBounds) {
		i.logger.Warn("Machine halted",
			log.Hex("pc", fault.PC),
			log.Err(fault.Err),
			log.Stringer("registers", i.registers))
		return fault
	}

	i.logger.Warn("Machine halted",
		log.Hex("pc", fault.PC),
		log.String("instruction", instruction.Decode(fault.Word).String()),
		log.Err(fault.Err),
		log.Int("stack_depth", i.stack.Len()),
		log.Stringer("registers", i.registers))
	return fault
}

func randomByte() uint8 {
	return uint8(rand.UintN(256))
}
