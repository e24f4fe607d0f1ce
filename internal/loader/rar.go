package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/nwaples/rardecode/v2"
)

// extractFromRAR extracts the first program image from a RAR archive.
func extractFromRAR(path string) (Image, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return Image{}, fmt.Errorf("opening rar: %w", err)
	}
	defer func() { _ = r.Close() }()

	for {
		header, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Image{}, fmt.Errorf("reading rar entry: %w", err)
		}
		if header.IsDir || !isImageFile(header.Name) {
			continue
		}

		data, err := limitedRead(r)
		if err != nil {
			return Image{}, fmt.Errorf("reading %s: %w", header.Name, err)
		}
		return Image{Name: filepath.Base(header.Name), Data: data}, nil
	}

	return Image{}, ErrNoImage
}
