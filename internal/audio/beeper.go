//go:build !headless

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/retroenv/retrogolib/log"
)

// Beeper plays a square wave tone while it is active.
type Beeper struct {
	logger *log.Logger

	mu     sync.Mutex
	player *oto.Player
	active bool
}

// NewBeeper opens the audio device.
func NewBeeper(logger *log.Logger) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	logger.Debug("Audio device opened", log.Int("sample_rate", SampleRate))
	return &Beeper{
		logger: logger,
		player: ctx.NewPlayer(newSquareWave(SampleRate, Frequency)),
	}, nil
}

// SetActive starts or pauses the tone.
func (b *Beeper) SetActive(active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.player == nil || active == b.active {
		return
	}
	b.active = active
	if active {
		b.player.Play()
	} else {
		b.player.Pause()
	}
}

// Close stops the tone and releases the player.
func (b *Beeper) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	b.active = false
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
