// Package loader handles loading CHIP-8 program images from disk, including
// images packed into ZIP, 7z, gzip, tar.gz and RAR archives.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrNoImage is returned when an archive contains no program image.
	ErrNoImage = errors.New("no program image found in archive")
	// ErrFileTooLarge is returned when the image can not fit into memory at
	// any load offset.
	ErrFileTooLarge = errors.New("file exceeds maximum program size")
)

// Extensions lists the file extensions that identify program images inside
// of archives.
var Extensions = []string{".ch8", ".c8", ".sc8", ".rom", ".bin", ".660", ".eti", ".cos"}

var (
	magicZIP      = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4B, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip     = []byte{0x1F, 0x8B}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
)

// maxImageSize is the size of the largest image that fits above the lowest
// supported load offset.
var maxImageSize = memory.MaxImageSize(memory.ProgramStart)

type format int

const (
	formatRaw format = iota
	formatZIP
	format7z
	formatGzip
	formatRAR
)

func (f format) String() string {
	switch f {
	case formatZIP:
		return "zip"
	case format7z:
		return "7z"
	case formatGzip:
		return "gzip"
	case formatRAR:
		return "rar"
	default:
		return "raw"
	}
}

// Image is a program image read from disk.
type Image struct {
	Name string // base name of the file or archive entry
	Data []byte
}

// Loader handles loading program images from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new program image loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the program image from the file. Archives are detected by
// magic bytes and extension, the first entry with a program image extension
// is extracted. Any other file is the program image itself, CHIP-8 images
// have no header.
func (l *Loader) Load(path string) (Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	header := make([]byte, 8)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Image{}, fmt.Errorf("reading file header: %w", err)
	}
	f := detectFormat(header[:n], path)

	var image Image
	switch f {
	case formatZIP:
		image, err = extractFromZIP(path)
	case format7z:
		image, err = extractFrom7z(path)
	case formatGzip:
		image, err = extractFromGzip(path)
	case formatRAR:
		image, err = extractFromRAR(path)
	default:
		if _, err = file.Seek(0, io.SeekStart); err != nil {
			return Image{}, fmt.Errorf("seeking file: %w", err)
		}
		image.Name = filepath.Base(path)
		image.Data, err = limitedRead(file)
	}
	if err != nil {
		return Image{}, fmt.Errorf("loading %s file %s: %w", f, path, err)
	}

	l.logger.Debug("Program image read",
		log.String("file", path),
		log.Stringer("format", f),
		log.String("image", image.Name),
		log.Int("size", len(image.Data)))
	return image, nil
}

// detectFormat determines the file format based on magic bytes and extension.
// Files with a program image extension are always raw, a program can start
// with the bytes of an archive signature.
func detectFormat(header []byte, path string) format {
	if isImageFile(path) {
		return formatRaw
	}

	switch {
	case bytes.HasPrefix(header, magicZIP), bytes.HasPrefix(header, magicZIPEmpty):
		return formatZIP
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR
	case bytes.HasPrefix(header, magic7z):
		return format7z
	case bytes.HasPrefix(header, magicGzip):
		return formatGzip
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz", ".tgz":
		return formatGzip
	case ".rar":
		return formatRAR
	default:
		return formatRaw
	}
}

// isImageFile returns whether the file name has a program image extension.
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, imageExt := range Extensions {
		if ext == imageExt {
			return true
		}
	}
	return false
}

// limitedRead reads the program image from r, failing for images that can
// not fit into memory.
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(maxImageSize)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("%w of %d bytes", ErrFileTooLarge, maxImageSize)
	}
	return data, nil
}
