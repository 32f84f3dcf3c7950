package image

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Intersect returns the overlap of r and s; the result may be empty.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.Width, s.X+s.Width)
	y1 := min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Composite draws src onto dst with its top-left corner at (x, y) using the
// Porter-Duff "source over" operator. Transparent source pixels leave the
// destination untouched, so earlier draws are never erased. Parts of src
// falling outside dst are clipped.
func Composite(dst, src *ImageBuf, x, y int) {
	dw, dh := dst.Bounds()
	sw, sh := src.Bounds()

	area := Rect{X: x, Y: y, Width: sw, Height: sh}.Intersect(Rect{Width: dw, Height: dh})
	if area.Empty() {
		return
	}

	for dy := area.Y; dy < area.Y+area.Height; dy++ {
		srcRow := src.RowBytes(dy - y)
		dstRow := dst.RowBytes(dy)
		for dx := area.X; dx < area.X+area.Width; dx++ {
			so := (dx - x) * bytesPerPixel
			do := dx * bytesPerPixel
			sa := srcRow[so+3]
			if sa == 0 {
				continue
			}
			r, g, b, a := blendOver(
				srcRow[so], srcRow[so+1], srcRow[so+2], sa,
				dstRow[do], dstRow[do+1], dstRow[do+2], dstRow[do+3],
			)
			dstRow[do], dstRow[do+1], dstRow[do+2], dstRow[do+3] = r, g, b, a
		}
	}
}

// blendOver performs standard alpha blending (source over destination)
// on non-premultiplied colors.
func blendOver(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a uint8) {
	if srcA == 255 || dstA == 0 {
		return srcR, srcG, srcB, srcA
	}

	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a
	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0
	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)

	mix := func(s, d uint8) uint8 {
		return uint8((float64(s)*srcAlpha+float64(d)*dstAlpha*(1-srcAlpha))/outAlpha + 0.5)
	}
	return mix(srcR, dstR), mix(srcG, dstG), mix(srcB, dstB), uint8(outAlpha*255.0 + 0.5)
}
