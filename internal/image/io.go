package image

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // Register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load loads an image from path. Files with an .svg extension are
// rasterized with LoadSVG; everything else goes through LoadFromBytes.
func Load(path string) (*ImageBuf, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return LoadSVG(path, SVGResolution, MaxVectorWidth)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes decodes a raster image held in memory.
func LoadFromBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a raster image (PNG, JPEG, GIF, BMP, TIFF or WebP),
// auto-detecting the format.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := stdimage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrInvalidDimensions
	}
	return FromStdImage(img), nil
}

// FromStdImage converts any image.Image into a tightly packed ImageBuf.
// Zero-sized images yield nil.
func FromStdImage(img stdimage.Image) *ImageBuf {
	b := img.Bounds()
	buf, err := NewImageBuf(b.Dx(), b.Dy())
	if err != nil {
		return nil
	}
	dst := buf.NRGBA()
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return buf
}

// EncodePNG encodes the image as PNG to the given writer.
// The encoding is deterministic for identical pixels.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.NRGBA()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeToBytes encodes the image to PNG format and returns the bytes.
func (b *ImageBuf) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG saves the image as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
