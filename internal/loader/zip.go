package loader

import (
	"archive/zip"
	"fmt"
	"path/filepath"
)

// extractFromZIP extracts the first program image from a ZIP archive.
func extractFromZIP(path string) (Image, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return Image{}, fmt.Errorf("opening zip: %w", err)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isImageFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return Image{}, fmt.Errorf("opening %s in archive: %w", f.Name, err)
		}
		defer func() { _ = rc.Close() }()

		data, err := limitedRead(rc)
		if err != nil {
			return Image{}, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		return Image{Name: filepath.Base(f.Name), Data: data}, nil
	}

	return Image{}, ErrNoImage
}
