package image

import (
	xdraw "golang.org/x/image/draw"
)

// Resize resamples the whole of src onto dst with Catmull-Rom ("spline")
// interpolation, stretching it to dst's size.
func Resize(dst, src *ImageBuf) error {
	return ResizeRegion(dst, src, Rect{Width: src.Width(), Height: src.Height()})
}

// ResizeRegion resamples region r of src onto the whole of dst with
// Catmull-Rom interpolation. The region must lie inside src.
func ResizeRegion(dst, src *ImageBuf, r Rect) error {
	view := src.SubImage(r.X, r.Y, r.Width, r.Height)
	if view == nil {
		return ErrOutOfBounds
	}
	out := dst.NRGBA()
	in := view.NRGBA()
	xdraw.CatmullRom.Scale(out, out.Bounds(), in, in.Bounds(), xdraw.Src, nil)
	return nil
}
