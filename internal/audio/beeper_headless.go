//go:build headless

package audio

import "github.com/retroenv/retrogolib/log"

// Beeper is a silent beeper for builds without audio support.
type Beeper struct {
	active bool
}

// NewBeeper returns a silent beeper.
func NewBeeper(logger *log.Logger) (*Beeper, error) {
	logger.Debug("Audio support is not compiled in")
	return &Beeper{}, nil
}

// SetActive records the tone state.
func (b *Beeper) SetActive(active bool) {
	b.active = active
}

// Close does nothing.
func (b *Beeper) Close() error {
	return nil
}
