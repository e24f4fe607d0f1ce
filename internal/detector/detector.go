// Package detector handles platform profile detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles platform detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new platform detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the platform profile from options or file auto-detection.
// It first checks if a platform is explicitly specified in options, otherwise
// attempts to detect the platform from the name of the program image. The
// image name can differ from the input file when the image was extracted
// from an archive.
func (d *Detector) Detect(opts options.Program, imageName string) string {
	if opts.Platform != "" {
		return strings.ToLower(opts.Platform)
	}

	platform := d.detectFromFile(imageName)
	if imageName != opts.Input && platform == config.PlatformModern {
		platform = d.detectFromFile(opts.Input)
	}
	d.logger.Debug("Auto-detected platform",
		log.String("platform", platform),
		log.String("file", imageName))
	return platform
}

// detectFromFile determines the platform based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".c8", ".cos":
		return config.PlatformCosmac
	case ".sc8", ".schip":
		return config.PlatformSuperChip
	case ".660", ".eti":
		return config.PlatformETI660
	default:
		// .ch8, .rom and .bin images are expected to follow the modern conventions
		return config.PlatformModern
	}
}
