package loader

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extractFromGzip extracts the program image from a gzip compressed file or
// the first program image from a tar.gz archive.
func extractFromGzip(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("opening gzip: %w", err)
	}
	defer func() { _ = f.Close() }()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return Image{}, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer func() { _ = gr.Close() }()

	lowerPath := strings.ToLower(path)
	if strings.HasSuffix(lowerPath, ".tar.gz") || strings.HasSuffix(lowerPath, ".tgz") {
		return extractFromTar(gr)
	}

	data, err := limitedRead(gr)
	if err != nil {
		return Image{}, fmt.Errorf("decompressing gzip: %w", err)
	}

	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-3]
	}
	return Image{Name: name, Data: data}, nil
}

// extractFromTar extracts the first program image from a tar stream.
func extractFromTar(r io.Reader) (Image, error) {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Image{}, fmt.Errorf("reading tar entry: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !isImageFile(header.Name) {
			continue
		}

		data, err := limitedRead(tr)
		if err != nil {
			return Image{}, fmt.Errorf("reading %s from tar: %w", header.Name, err)
		}
		return Image{Name: filepath.Base(header.Name), Data: data}, nil
	}

	return Image{}, ErrNoImage
}
