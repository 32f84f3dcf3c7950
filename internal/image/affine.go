package image

import (
	"math"
)

// Affine represents a 2D affine transformation matrix.
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
type Affine struct {
	a, b, c float64 // x' = ax + by + c
	d, e, f float64 // y' = dx + ey + f
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Shear returns a shearing transformation.
// sx skews along the x-axis (x' = x + sx*y), sy along the y-axis.
func Shear(sx, sy float64) Affine {
	return Affine{a: 1, b: sx, d: sy, e: 1}
}

// ShearX returns the horizontal shear used for wing patches of the given
// height. Positive angles (degrees) slide the top edge to the right while
// the bottom edge stays put; negative angles slide the bottom edge to the
// right. The result always maps the patch into non-negative x, and the
// second return value is the horizontal growth of the canvas.
func ShearX(angleDeg float64, height int) (Affine, float64) {
	t := math.Tan(angleDeg * math.Pi / 180)
	h := float64(height)
	// x' = x - t*y, shifted right so the leftmost corner lands on x = 0.
	shift := math.Max(t*h, 0)
	return Translate(shift, 0).Multiply(Shear(-t, 0)), math.Abs(t) * h
}

// Multiply returns a*other: other is applied first, then a.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.a*a.e - a.b*a.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}

	invDet := 1.0 / det
	return Affine{
		a: a.e * invDet,
		b: -a.b * invDet,
		c: (a.b*a.f - a.c*a.e) * invDet,
		d: -a.d * invDet,
		e: a.a * invDet,
		f: (a.c*a.d - a.a*a.f) * invDet,
	}, true
}

// TransformPoint applies the transformation to (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}
