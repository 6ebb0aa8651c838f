package storage

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// ErrUnsupportedFormat is returned for output extensions no encoder handles.
var ErrUnsupportedFormat = errors.New("unsupported image format")

const (
	fileMode    = 0644
	jpegQuality = 92
	webpQuality = 90
)

// ImageFile writes images to disk, choosing the encoder from the extension.
// The image is written to a temporary file next to the target and renamed
// into place, so a failed encode never leaves a partial file behind.
type ImageFile struct{}

func NewImageFile() *ImageFile {
	return &ImageFile{}
}

// SupportedExtension reports whether path has an extension WriteImage can encode.
func SupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		return true
	}
	_, err := imaging.FormatFromExtension(ext)
	return err == nil
}

func (ImageFile) WriteImage(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("image: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".chart-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("image: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := encode(tmp, img); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("image: encode %q: %w", path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("image: chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("image: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("image: move into place: %w", err)
	}
	committed = true
	return nil
}

type encodeFunc func(w io.Writer, img image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		return encodeWebP, nil
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return func(w io.Writer, img image.Image) error {
		return imaging.Encode(w, img, format, imaging.JPEGQuality(jpegQuality))
	}, nil
}

func encodeWebP(w io.Writer, img image.Image) error {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, webpQuality)
	if err != nil {
		return fmt.Errorf("webp options: %w", err)
	}
	return webp.Encode(w, img, options)
}
