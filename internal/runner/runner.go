// Package runner orchestrates loading a program and driving the interpreter.
package runner

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Runner prepares interpreter sessions from program options.
type Runner struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// Session is a loaded program ready to run.
type Session struct {
	Image     loader.Image
	Platform  string
	Quirks    options.Quirks
	Machine   *interpreter.Interpreter
	Scheduler *Scheduler
}

// New creates a new runner.
func New(logger *log.Logger) *Runner {
	return &Runner{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(logger),
	}
}

// Prepare loads the program image, resolves the platform quirks and creates
// an interpreter with the image loaded.
func (r *Runner) Prepare(opts options.Program, interpreterOpts ...interpreter.Option) (*Session, error) {
	image, err := r.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	return r.PrepareImage(opts, image, interpreterOpts...)
}

// PrepareImage creates a session for an image that is already in memory.
// This is useful for testing and programmatic usage.
func (r *Runner) PrepareImage(opts options.Program, image loader.Image,
	interpreterOpts ...interpreter.Option) (*Session, error) {

	platform := r.detector.Detect(opts, image.Name)
	quirks, err := config.ResolveQuirks(platform, opts.Overrides)
	if err != nil {
		return nil, fmt.Errorf("resolving quirks: %w", err)
	}

	interpreterOpts = append([]interpreter.Option{
		interpreter.WithAnomalyHandler(r.anomalyCounter()),
	}, interpreterOpts...)
	machine := interpreter.New(r.logger, quirks, interpreterOpts...)
	if err := machine.Load(image.Data); err != nil {
		return nil, fmt.Errorf("loading %s: %w", image.Name, err)
	}

	session := &Session{
		Image:     image,
		Platform:  platform,
		Quirks:    quirks,
		Machine:   machine,
		Scheduler: NewScheduler(r.logger, machine, opts.Speed),
	}
	r.printInfo(opts, session)
	return session, nil
}

// anomalyCounter returns a handler that logs the running anomaly count at
// debug level.
func (r *Runner) anomalyCounter() interpreter.AnomalyHandler {
	var count int
	return func(a interpreter.Anomaly) {
		count++
		r.logger.Debug("Anomaly reported",
			log.Stringer("kind", a.Kind),
			log.Hex("pc", a.PC),
			log.Int("total", count))
	}
}

// printInfo prints information about the program being run.
func (r *Runner) printInfo(opts options.Program, session *Session) {
	if opts.Quiet {
		return
	}

	r.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.String("image", session.Image.Name),
		log.Int("size", len(session.Image.Data)),
		log.String("platform", session.Platform),
		log.Stringer("quirks", session.Quirks),
		log.Int("speed", opts.Speed),
	)
}
