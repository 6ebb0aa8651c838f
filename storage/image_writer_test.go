package storage

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestImageFileWritesPNGAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outputs", "charts", "views.png")

	require.NoError(t, NewImageFile().WriteImage(path, testImage(32, 16)))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestImageFileWritesWorldReadableFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	path := filepath.Join(t.TempDir(), "views.png")

	require.NoError(t, NewImageFile().WriteImage(path, testImage(4, 4)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestImageFileWritesJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.JPG")

	require.NoError(t, NewImageFile().WriteImage(path, testImage(8, 8)))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestImageFileUnsupportedFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")
	err := NewImageFile().WriteImage(filepath.Join(dir, "views.xyz"), testImage(4, 4))

	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImageFileFailedEncodeLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	err := NewImageFile().WriteImage(filepath.Join(dir, "views.png"), image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestImageFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.png")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, NewImageFile().WriteImage(path, testImage(4, 4)))

	_, err := imaging.Open(path)
	assert.NoError(t, err)
}

func TestSupportedExtension(t *testing.T) {
	for _, p := range []string{"a.png", "a.PNG", "b.jpg", "b.jpeg", "c.webp", "d.gif", "e.tiff", "f.bmp"} {
		assert.True(t, SupportedExtension(p), p)
	}
	for _, p := range []string{"a.svg", "noext", "b.pdf"} {
		assert.False(t, SupportedExtension(p), p)
	}
}
