package loader

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testImage = []byte{0x60, 0x05, 0x61, 0x03, 0x12, 0x04}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func zipArchive(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := w.Create(name)
		assert.NoError(t, err)
		_, err = f.Write(data)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return buf.Bytes()
}

func gzipData(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return buf.Bytes()
}

func tarArchive(t *testing.T, name string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := tar.NewWriter(&buf)
	assert.NoError(t, w.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o600,
		Size:     int64(len(data)),
		Typeflag: tar.TypeReg,
	}))
	_, err := w.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoad_Raw(t *testing.T) {
	path := writeFile(t, "pong.ch8", testImage)
	l := New(log.NewTestLogger(t))

	image, err := l.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "pong.ch8", image.Name)
	assert.Equal(t, testImage, image.Data)
}

func TestLoad_RawWithArchiveSignature(t *testing.T) {
	// JP $F8B starts with the gzip signature
	data := []byte{0x1F, 0x8B, 0x00, 0xE0}
	path := writeFile(t, "jump.ch8", data)

	image, err := New(log.NewTestLogger(t)).Load(path)
	assert.NoError(t, err)
	assert.Equal(t, data, image.Data)
}

func TestLoad_UnknownExtensionIsRaw(t *testing.T) {
	path := writeFile(t, "program", testImage)

	image, err := New(log.NewTestLogger(t)).Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "program", image.Name)
	assert.Equal(t, testImage, image.Data)
}

func TestLoad_Zip(t *testing.T) {
	data := zipArchive(t, map[string][]byte{
		"readme.txt":      []byte("instructions"),
		"games/tetris.c8": testImage,
	})
	path := writeFile(t, "games.zip", data)

	image, err := New(log.NewTestLogger(t)).Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "tetris.c8", image.Name)
	assert.Equal(t, testImage, image.Data)
}

func TestLoad_ZipWithoutImage(t *testing.T) {
	data := zipArchive(t, map[string][]byte{"readme.txt": []byte("instructions")})
	path := writeFile(t, "docs.zip", data)

	_, err := New(log.NewTestLogger(t)).Load(path)
	assert.True(t, errors.Is(err, ErrNoImage))
}

func TestLoad_Gzip(t *testing.T) {
	path := writeFile(t, "maze.ch8.gz", gzipData(t, testImage))

	image, err := New(log.NewTestLogger(t)).Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "maze.ch8", image.Name)
	assert.Equal(t, testImage, image.Data)
}

func TestLoad_TarGz(t *testing.T) {
	archive := gzipData(t, tarArchive(t, "roms/blitz.660", testImage))
	path := writeFile(t, "roms.tar.gz", archive)

	image, err := New(log.NewTestLogger(t)).Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "blitz.660", image.Name)
	assert.Equal(t, testImage, image.Data)
}

func TestLoad_FileTooLarge(t *testing.T) {
	path := writeFile(t, "huge.ch8", make([]byte, maxImageSize+1))

	_, err := New(log.NewTestLogger(t)).Load(path)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}

func TestLoad_MaximumSize(t *testing.T) {
	path := writeFile(t, "full.ch8", make([]byte, maxImageSize))

	image, err := New(log.NewTestLogger(t)).Load(path)
	assert.NoError(t, err)
	assert.Len(t, image.Data, maxImageSize)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := New(log.NewTestLogger(t)).Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.ErrorContains(t, err, "opening file")
}

func TestLoad_InvalidArchives(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"7z", "fake.7z"},
		{"rar", "fake.rar"},
		{"zip", "fake.zip"},
		{"gzip", "fake.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, []byte("not an archive"))

			_, err := New(log.NewTestLogger(t)).Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		path   string
		want   format
	}{
		{"zip magic", magicZIP, "file", formatZIP},
		{"empty zip magic", magicZIPEmpty, "file", formatZIP},
		{"7z magic", magic7z, "file", format7z},
		{"gzip magic", magicGzip, "file", formatGzip},
		{"rar magic", magicRAR, "file", formatRAR},
		{"zip extension", nil, "file.ZIP", formatZIP},
		{"7z extension", nil, "file.7z", format7z},
		{"tgz extension", nil, "file.tgz", formatGzip},
		{"rar extension", nil, "file.rar", formatRAR},
		{"image extension wins over magic", magicZIP, "file.ch8", formatRaw},
		{"no magic", []byte{0x00, 0xE0}, "file.dat", formatRaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectFormat(tt.header, tt.path))
		})
	}
}

func TestIsImageFile(t *testing.T) {
	for _, ext := range Extensions {
		assert.True(t, isImageFile("game"+ext))
	}
	assert.True(t, isImageFile("dir/GAME.CH8"))
	assert.False(t, isImageFile("readme.txt"))
	assert.False(t, isImageFile("ch8"))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "raw", formatRaw.String())
	assert.Equal(t, "zip", formatZIP.String())
	assert.Equal(t, "7z", format7z.String())
	assert.Equal(t, "gzip", formatGzip.String())
	assert.Equal(t, "rar", formatRAR.String())
}
