package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
)

// Platforms returns the names of all platform profiles in sorted order.
func Platforms() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Profile returns the quirks of the named platform.
func Profile(platform string) (options.Quirks, error) {
	quirks, ok := profiles[strings.ToLower(platform)]
	if !ok {
		return options.Quirks{}, fmt.Errorf("%w '%s', valid options: %s",
			ErrUnknownPlatform, platform, strings.Join(Platforms(), ", "))
	}
	return quirks, nil
}

// ResolveQuirks returns the quirks of the platform profile with all
// non empty overrides applied.
func ResolveQuirks(platform string, overrides options.QuirkOverrides) (options.Quirks, error) {
	quirks, err := Profile(platform)
	if err != nil {
		return options.Quirks{}, err
	}
	if err := applyOverrides(&quirks, overrides); err != nil {
		return options.Quirks{}, fmt.Errorf("applying quirk overrides: %w", err)
	}
	return quirks, nil
}

func applyOverrides(quirks *options.Quirks, overrides options.QuirkOverrides) error {
	var err error

	if overrides.LoadOffset != "" {
		if quirks.LoadOffset, err = parseLoadOffset(overrides.LoadOffset); err != nil {
			return err
		}
	}
	if overrides.Shift != "" {
		if quirks.Shift, err = options.ParseShiftSource(overrides.Shift); err != nil {
			return err
		}
	}
	if overrides.StoreLoadIncrement != "" {
		if quirks.StoreLoadIncrement, err = options.ParseSwitch(overrides.StoreLoadIncrement); err != nil {
			return err
		}
	}
	if overrides.Draw != "" {
		if quirks.Draw, err = options.ParseEdgeMode(overrides.Draw); err != nil {
			return err
		}
	}
	if overrides.AddIOverflow != "" {
		if quirks.AddIOverflow, err = options.ParseSwitch(overrides.AddIOverflow); err != nil {
			return err
		}
	}
	if overrides.Jump != "" {
		if quirks.Jump, err = options.ParseJumpRegister(overrides.Jump); err != nil {
			return err
		}
	}
	return nil
}

// parseLoadOffset parses a decimal or 0x prefixed hexadecimal load offset.
func parseLoadOffset(s string) (uint16, error) {
	value, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("parsing load offset '%s': %w", s, err)
	}
	offset := uint16(value)
	if offset < memory.ReservedEnd || !memory.InBounds(offset) {
		return 0, fmt.Errorf("%w: 0x%X", memory.ErrInvalidOffset, offset)
	}
	return offset, nil
}
