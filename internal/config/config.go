// Package config handles logger setup and the resolution of platform
// profiles into interpreter quirks.
package config

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Supported platform profiles.
const (
	PlatformModern    = "modern"
	PlatformCosmac    = "cosmac"
	PlatformSuperChip = "schip"
	PlatformETI660    = "eti660"
)

// ErrUnknownPlatform is returned for a platform name without a profile.
var ErrUnknownPlatform = errors.New("unknown platform")

var profiles = map[string]options.Quirks{
	PlatformModern: options.DefaultQuirks(),
	PlatformCosmac: {
		LoadOffset:         memory.ProgramStart,
		Shift:              options.ShiftVy,
		StoreLoadIncrement: true,
		Draw:               options.EdgeClip,
		Jump:               options.JumpV0,
	},
	PlatformSuperChip: {
		LoadOffset: memory.ProgramStart,
		Shift:      options.ShiftVx,
		Draw:       options.EdgeClip,
		Jump:       options.JumpVx,
	},
	PlatformETI660: {
		LoadOffset:         memory.ETI660ProgramStart,
		Shift:              options.ShiftVy,
		StoreLoadIncrement: true,
		Draw:               options.EdgeClip,
		Jump:               options.JumpV0,
	},
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
