package loader

import (
	"fmt"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// extractFrom7z extracts the first program image from a 7z archive.
func extractFrom7z(path string) (Image, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return Image{}, fmt.Errorf("opening 7z: %w", err)
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
