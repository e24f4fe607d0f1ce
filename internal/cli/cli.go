// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
)

var frontends = []string{options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless}

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)
	readQuirkFlags(flags, &opts.Overrides)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(frontends, ", "))
	}

	if opts.Platform != "" {
		if _, err := config.Profile(opts.Platform); err != nil {
			return err
		}
		opts.Platform = strings.ToLower(opts.Platform)
	}

	if opts.Speed <= 0 {
		return fmt.Errorf("invalid speed %d, must be a positive number of instructions per second", opts.Speed)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame limit %d", opts.Frames)
	}
	if opts.Scale <= 0 {
		opts.Scale = options.DefaultScale
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	platformUsage := fmt.Sprintf("platform profile (%s) - auto-detected from file extension if not given",
		strings.Join(config.Platforms(), "/"))
	flags.StringVar(&opts.Platform, "p", "", platformUsage)
	flags.StringVar(&opts.Frontend, "frontend", opts.Frontend, "frontend to run the program with (window/terminal/headless)")
	flags.IntVar(&opts.Speed, "speed", opts.Speed, "instructions executed per second")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of 60 Hz frames, 0 runs until quit")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "pixel scale of the window frontend")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the sound output")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readQuirkFlags(flags *flag.FlagSet, overrides *options.QuirkOverrides) {
	flags.StringVar(&overrides.LoadOffset, "offset", "", "override the program load offset, for example 0x600")
	flags.StringVar(&overrides.Shift, "shift", "", "override the shift source register (vx/vy)")
	flags.StringVar(&overrides.StoreLoadIncrement, "increment", "", "override whether FX55/FX65 increment I (on/off)")
	flags.StringVar(&overrides.Draw, "draw", "", "override the sprite edge handling (wrap/clip)")
	flags.StringVar(&overrides.AddIOverflow, "addi-overflow", "", "override whether FX1E sets VF on overflow (on/off)")
	flags.StringVar(&overrides.Jump, "jump", "", "override the BNNN jump register (v0/vx)")
}
