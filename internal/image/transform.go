package image

import (
	"errors"
	"math"
)

// ErrSingularTransform is returned when an affine transform cannot be inverted.
var ErrSingularTransform = errors.New("image: singular transform")

// TransformAffine renders src through m onto dst. Each destination pixel
// center is mapped back through the inverse of m; pixels that land outside
// src are left as they are.
func TransformAffine(dst, src *ImageBuf, m Affine, mode InterpolationMode) error {
	inv, ok := m.Invert()
	if !ok {
		return ErrSingularTransform
	}

	sw, sh := src.Bounds()
	fw, fh := float64(sw), float64(sh)
	for y := range dst.Height() {
		row := dst.RowBytes(y)
		for x := range dst.Width() {
			sx, sy := inv.TransformPoint(float64(x)+0.5, float64(y)+0.5)
			if sx < 0 || sy < 0 || sx >= fw || sy >= fh {
				continue
			}
			r, g, b, a := Sample(src, sx, sy, mode)
			o := x * bytesPerPixel
			row[o], row[o+1], row[o+2], row[o+3] = r, g, b, a
		}
	}
	return nil
}

// ShearedWidth returns the canvas width needed to hold a width x height
// patch sheared horizontally by angleDeg degrees.
func ShearedWidth(width, height int, angleDeg float64) int {
	_, growth := ShearX(angleDeg, height)
	return width + int(math.Ceil(growth-1e-9))
}

// ShearHorizontal shears src along the x-axis by angleDeg degrees (see
// ShearX for the direction convention) onto dst, which should be
// ShearedWidth wide and as tall as src.
func ShearHorizontal(dst, src *ImageBuf, angleDeg float64, mode InterpolationMode) error {
	m, _ := ShearX(angleDeg, src.Height())
	return TransformAffine(dst, src, m, mode)
}
