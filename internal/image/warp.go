package image

import "math"

// Point is a position in continuous pixel coordinates.
type Point struct {
	X, Y float64
}

// Quad is a quadrilateral given by its corners in the order
// top-left, top-right, bottom-right, bottom-left.
type Quad [4]Point

// RectQuad returns the quad covering a w x h raster edge to edge.
func RectQuad(w, h float64) Quad {
	return Quad{{0, 0}, {w, 0}, {w, h}, {0, h}}
}

// At evaluates the bilinear patch spanned by q at parameters (u, v) in [0, 1]².
func (q Quad) At(u, v float64) Point {
	top := lerpPoint(q[0], q[1], u)
	bottom := lerpPoint(q[3], q[2], u)
	return lerpPoint(top, bottom, v)
}

// Bounds returns the integer bounding box of the quad.
func (q Quad) Bounds() Rect {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, p := range q {
		x0, x1 = math.Min(x0, p.X), math.Max(x1, p.X)
		y0, y1 = math.Min(y0, p.Y), math.Max(y1, p.Y)
	}
	fx, fy := int(math.Floor(x0)), int(math.Floor(y0))
	return Rect{X: fx, Y: fy, Width: int(math.Ceil(x1)) - fx, Height: int(math.Ceil(y1)) - fy}
}

// paramEps tolerates rounding at the patch border.
const paramEps = 1e-9

// Invert finds the parameters (u, v) with q.At(u, v) == p.
// It reports false when p lies outside the patch.
func (q Quad) Invert(p Point) (u, v float64, ok bool) {
	a, b, c, d := q[0], q[1], q[2], q[3]
	e := Point{b.X - a.X, b.Y - a.Y}
	f := Point{d.X - a.X, d.Y - a.Y}
	g := Point{a.X - b.X + c.X - d.X, a.Y - b.Y + c.Y - d.Y}
	h := Point{p.X - a.X, p.Y - a.Y}

	// k2*v² + k1*v + k0 = 0
	k2 := cross(g, f)
	k1 := cross(e, f) + cross(h, g)
	k0 := cross(h, e)

	var roots [2]float64
	n := 0
	switch {
	case k2 == 0:
		if k1 == 0 {
			return 0, 0, false
		}
		roots[0], n = -k0/k1, 1
	default:
		disc := k1*k1 - 4*k0*k2
		if disc < 0 {
			return 0, 0, false
		}
		// Numerically stable form: never subtracts nearly equal values.
		qq := -0.5 * (k1 + math.Copysign(math.Sqrt(disc), k1))
		roots[0], n = qq/k2, 1
		if qq != 0 {
			roots[1], n = k0/qq, 2
		}
	}

	for _, v := range roots[:n] {
		u, good := solveU(e, f, g, h, v)
		if !good {
			continue
		}
		if inUnit(u) && inUnit(v) {
			return clampFloat(u, 0, 1), clampFloat(v, 0, 1), true
		}
	}
	return 0, 0, false
}

// solveU recovers u from h = e*u + f*v + g*u*v using the better
// conditioned coordinate.
func solveU(e, f, g, h Point, v float64) (float64, bool) {
	dx := e.X + g.X*v
	dy := e.Y + g.Y*v
	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			return 0, false
		}
		return (h.X - f.X*v) / dx, true
	}
	return (h.Y - f.Y*v) / dy, true
}

func inUnit(t float64) bool {
	return t >= -paramEps && t <= 1+paramEps
}

func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// WarpBilinear performs a bilinear forward warp: the from quad of src is
// mapped onto the to quad of dst, interpolating the interior bilinearly.
// Destination pixels whose centers fall outside the to quad are left as
// they are, so dst is normally a cleared canvas.
func WarpBilinear(dst, src *ImageBuf, from, to Quad, mode InterpolationMode) {
	area := to.Bounds().Intersect(Rect{Width: dst.Width(), Height: dst.Height()})
	for y := area.Y; y < area.Y+area.Height; y++ {
		row := dst.RowBytes(y)
		for x := area.X; x < area.X+area.Width; x++ {
			u, v, ok := to.Invert(Point{float64(x) + 0.5, float64(y) + 0.5})
			if !ok {
				continue
			}
			sp := from.At(u, v)
			r, g, b, a := Sample(src, sp.X, sp.Y, mode)
			o := x * bytesPerPixel
			row[o], row[o+1], row[o+2], row[o+3] = r, g, b, a
		}
	}
}
