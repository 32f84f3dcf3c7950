package image

import (
	"fmt"
	stdimage "image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	// SVGResolution is the rasterization resolution for vector inputs, in DPI.
	SVGResolution = 450

	// MaxVectorWidth caps the width of rasterized vector inputs, in pixels.
	MaxVectorWidth = 2048

	// svgUnitsPerInch is the CSS pixel density SVG user units are defined in.
	svgUnitsPerInch = 96
)

// LoadSVG rasterizes the SVG file at path. See DecodeSVG.
func LoadSVG(path string, dpi float64, maxWidth int) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeSVG(f, dpi, maxWidth)
}

// DecodeSVG rasterizes an SVG document at dpi. When the result would be
// wider than maxWidth (and maxWidth > 0) it is rendered at maxWidth
// instead, keeping the aspect ratio.
func DecodeSVG(r io.Reader, dpi float64, maxWidth int) (*ImageBuf, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("image: decode SVG: %w", err)
	}

	w, h := svgSize(icon.ViewBox.W, icon.ViewBox.H, dpi, maxWidth)
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}

	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return FromStdImage(rgba), nil
}

// svgSize converts a view box in user units to pixel dimensions.
func svgSize(vw, vh, dpi float64, maxWidth int) (int, int) {
	scale := dpi / svgUnitsPerInch
	w := int(math.Round(vw * scale))
	h := int(math.Round(vh * scale))
	if maxWidth > 0 && w > maxWidth {
		h = int(math.Round(float64(h) * float64(maxWidth) / float64(w)))
		w = maxWidth
	}
	return w, h
}
