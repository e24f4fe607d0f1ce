// Package timer implements the CHIP-8 delay and sound timers.
package timer

// Rate is the frequency in Hz at which Tick has to be called.
const Rate = 60

// Timer contains the two 8 bit countdown counters. Both count down towards
// zero once per tick and stop there.
type Timer struct {
	Delay uint8
	Sound uint8
}

// New returns a timer with both counters stopped.
func New() *Timer {
	return &Timer{}
}

// Tick decrements every non zero counter by one.
func (t *Timer) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// SoundActive returns whether the tone should currently be played.
func (t *Timer) SoundActive() bool {
	return t.Sound > 0
}

// Reset stops both counters.
func (t *Timer) Reset() {
	t.Delay = 0
	t.Sound = 0
}
