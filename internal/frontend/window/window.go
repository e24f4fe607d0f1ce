//go:build !headless

package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// keyboardLayout lists the keyboard keys of the keypad layout positions.
var keyboardLayout = [keypad.Keys]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

// game implements the ebiten game loop. Ebiten calls Update at 60 ticks per
// second which drives the timer frames of the scheduler.
type game struct {
	ctx       context.Context
	logger    *log.Logger
	scheduler *runner.Scheduler
	opts      Options

	screen *ebiten.Image
	rgba   []byte
	err    error
}

// Run opens the window and runs the scheduler until the window is closed,
// Escape is pressed, the context is cancelled or the machine faults.
func Run(ctx context.Context, logger *log.Logger, scheduler *runner.Scheduler, opts Options) error {
	opts.setDefaults()
	d := scheduler.Machine().Display()

	g := &game{
		ctx:       ctx,
		logger:    logger,
		scheduler: scheduler,
		opts:      opts,
		screen:    ebiten.NewImage(d.Width(), d.Height()),
		rgba:      make([]byte, d.Width()*d.Height()*4),
	}

	ebiten.SetWindowSize(d.Width()*opts.Scale, d.Height()*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(timer.Rate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	if opts.Sound != nil {
		opts.Sound.SetActive(false)
	}
	return g.err
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	machine := g.scheduler.Machine()
	for pos, key := range keyboardLayout {
		switch {
		case inpututil.IsKeyJustPressed(key):
			machine.SetKey(keypad.Layout[pos], true)
		case inpututil.IsKeyJustReleased(key):
			machine.SetKey(keypad.Layout[pos], false)
		}
	}

	if err := g.scheduler.Frame(); err != nil {
		g.err = err
		return ebiten.Termination
	}
	if g.opts.Sound != nil {
		g.opts.Sound.SetActive(machine.SoundActive())
	}

	if g.opts.FrameLimit > 0 && g.scheduler.Frames() >= g.opts.FrameLimit {
		g.logger.Debug("Frame limit reached", log.Int("frames", g.scheduler.Frames()))
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	d := g.scheduler.Machine().Display()
	if d.Dirty() {
		fillRGBA(g.rgba, d.Pixels(), g.opts.Foreground, g.opts.Background)
		g.screen.WritePixels(g.rgba)
		d.ClearDirty()
	}
	screen.DrawImage(g.screen, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	d := g.scheduler.Machine().Display()
	return d.Width(), d.Height()
}
