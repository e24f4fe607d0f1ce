// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	session, err := runner.New(logger).Prepare(opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if err := run(ctx, logger, opts, session); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		var fault *interpreter.Fault
		if errors.As(err, &fault) {
			logger.Error("Program halted",
				log.Hex("pc", fault.PC),
				log.Hex("opcode", fault.Word),
				log.Err(fault.Err))
			os.Exit(2)
		}
		logger.Fatal(err.Error())
	}
}

// run presents the session with the selected frontend until it quits.
func run(ctx context.Context, logger *log.Logger, opts options.Program, session *runner.Session) error {
	switch opts.Frontend {
	case options.FrontendHeadless:
		host := headless.New()
		err := session.Scheduler.Run(ctx, host, headlessRunOptions(opts.Frames))
		if !opts.Quiet {
			fmt.Print(host.Screen())
		}
		logger.Info("Program stopped",
			log.Int("frames", host.Frames()),
			log.Int("sound_frames", host.SoundFrames()),
			log.Int("steps", int(session.Machine.Steps())))
		return err

	case options.FrontendTerminal:
		host := terminal.New(logger, os.Stdout)
		if err := host.Start(int(os.Stdin.Fd())); err != nil {
			return fmt.Errorf("starting terminal: %w", err)
		}
		defer host.Stop()

		return session.Scheduler.Run(ctx, host, runner.RunOptions{
			FrameLimit: opts.Frames,
			Interval:   runner.FrameInterval,
		})

	default:
		windowOpts := window.Options{
			Title:      "retrochip8 - " + session.Image.Name,
			Scale:      opts.Scale,
			FrameLimit: opts.Frames,
		}
		if !opts.Mute {
			beeper, err := audio.NewBeeper(logger)
			if err != nil {
				logger.Warn("Sound output not available", log.Err(err))
			} else {
				defer func() { _ = beeper.Close() }()
				windowOpts.Sound = beeper
			}
		}
		return window.Run(ctx, logger, session.Scheduler, windowOpts)
	}
}

// headlessRunOptions runs a frame limited headless session as fast as
// possible. Without a limit it runs until cancelled, paced at the timer rate.
func headlessRunOptions(frames int) runner.RunOptions {
	if frames > 0 {
		return runner.RunOptions{FrameLimit: frames}
	}
	return runner.RunOptions{Interval: runner.FrameInterval}
}

// printBanner prints the version information unless quiet mode is set.
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
