package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// FrameInterval is the duration of one timer frame.
const FrameInterval = time.Second / timer.Rate

// KeySetter receives keypad state changes.
type KeySetter interface {
	SetKey(index uint8, pressed bool)
}

// Host presents the machine to the user. All methods are called from the
// goroutine that runs the scheduler.
type Host interface {
	// Input applies pending input events to the keypad. It returns false
	// when the user requested to quit.
	Input(keys KeySetter) bool
	// Present shows the display and the sound state after a frame.
	Present(d *display.Display, sound bool) error
}

// Scheduler converts the instruction rate into a number of steps for every
// 60 Hz timer frame.
type Scheduler struct {
	logger  *log.Logger
	machine *interpreter.Interpreter

	speed  int // instructions per second
	budget int // accumulated instructions not yet executed, scaled by the timer rate
	frames int
}

// NewScheduler returns a scheduler that executes speed instructions per
// second. A speed below the timer rate executes one instruction per frame.
func NewScheduler(logger *log.Logger, machine *interpreter.Interpreter, speed int) *Scheduler {
	return &Scheduler{
		logger:  logger,
		machine: machine,
		speed:   max(speed, timer.Rate),
	}
}

// Frame executes the instructions of one frame and ticks the timers. It stops
// stepping early while the machine awaits a key press, the timers keep
// running. It returns the fault that halted the machine.
func (s *Scheduler) Frame() error {
	s.budget += s.speed
	steps := s.budget / timer.Rate
	s.budget %= timer.Rate

	for range steps {
		if err := s.machine.Step(); err != nil {
			return fmt.Errorf("executing frame %d: %w", s.frames, err)
		}
		if s.machine.AwaitingKey() {
			break
		}
	}

	s.machine.TickTimers()
	s.frames++
	return nil
}

// Frames returns the number of completed frames.
func (s *Scheduler) Frames() int {
	return s.frames
}

// Machine returns the scheduled interpreter.
func (s *Scheduler) Machine() *interpreter.Interpreter {
	return s.machine
}

// RunOptions configures Run.
type RunOptions struct {
	FrameLimit int           // stop after this many frames, 0 runs until quit
	Interval   time.Duration // wall clock duration of a frame, 0 runs unthrottled
}

// Run drives the host and the machine until the context is cancelled, the
// host quits, the machine faults or the frame limit is reached.
func (s *Scheduler) Run(ctx context.Context, host Host, opts RunOptions) error {
	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		if !host.Input(s.machine) {
			s.logger.Debug("Host requested quit", log.Int("frames", s.frames))
			return nil
		}

		frameErr := s.Frame()
		if err := host.Present(s.machine.Display(), s.machine.SoundActive()); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}
		if frameErr != nil {
			return frameErr
		}

		if opts.FrameLimit > 0 && s.frames >= opts.FrameLimit {
			s.logger.Debug("Frame limit reached", log.Int("frames", s.frames))
			return nil
		}
	}
}
