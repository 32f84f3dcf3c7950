package gore

import (
	"fmt"
	"math"

	"github.com/gogpu/paperglobe/internal/image"
)

// Span is a half-open range [Start, End) of source pixels.
type Span struct {
	Start, End int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Side selects the west or east wing of a tile.
type Side int

const (
	West Side = iota
	East
)

// Layout is the pure geometry of a gore set for one source size,
// projection and calibration. It never depends on pixel content.
type Layout struct {
	SourceWidth, SourceHeight int

	TileWidth, TileHeight int
	TileRatio             float64
	WingWidth             int
	Padding               int
	StripeWidth           int

	// RowHeights are the output heights of the four rows.
	RowHeights [Rows]int

	// Bands are the source rows feeding each output row.
	Bands [Rows]Span

	cal Calibration
}

// MaxShearAngle bounds the wing shear, in degrees, after scaling by the
// tile aspect ratio. Steeper shears make the wing canvas explode in width.
const MaxShearAngle = 80.0

// NewLayout computes the layout for a width x height source.
// It fails with ErrUnsupportedProjection for an unknown projection and with
// ErrInvalidImage when any tile or row dimension would be zero, or when the
// tiles are so wide that a wing shear reaches MaxShearAngle.
func NewLayout(width, height int, p Projection, cal Calibration) (Layout, error) {
	prof, err := ProfileOf(p)
	if err != nil {
		return Layout{}, err
	}
	if err := cal.Validate(); err != nil {
		return Layout{}, err
	}

	l := Layout{
		SourceWidth:  width,
		SourceHeight: height,
		TileWidth:    width / Columns,
		TileHeight:   height / Rows,
		cal:          cal,
	}
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d is smaller than one pixel per tile", ErrInvalidImage, width, height)
	}

	l.TileRatio = float64(l.TileWidth) / float64(l.TileHeight)
	l.WingWidth = int(math.Floor(float64(l.TileWidth) * cal.WingFraction))
	l.Padding = int(math.Floor(float64(l.TileWidth) * cal.PaddingFraction))
	l.StripeWidth = l.TileWidth + 2*l.WingWidth

	for r, ratio := range cal.RowHeightRatios {
		l.RowHeights[r] = int(math.Floor(float64(l.TileWidth) * ratio))
		if l.RowHeights[r] <= 0 {
			return Layout{}, fmt.Errorf("%w: %dx%d gives an empty row %d", ErrInvalidImage, width, height, r)
		}
	}

	for r, a := range cal.ShearAngles {
		if scaled := math.Abs(a * l.TileRatio); scaled >= MaxShearAngle {
			return Layout{}, fmt.Errorf("%w: %dx%d shears row %d wings by %.2f degrees", ErrInvalidImage, width, height, r, scaled)
		}
	}

	l.Bands = bands(height, prof)
	return l, nil
}

// boundaryEps keeps band edges that land on whole rows from rounding down.
const boundaryEps = 1e-9

// bands splits height into the projection's latitude bands. Bands are
// widened to at least one source row so tiny images still sample pixels.
func bands(height int, prof Profile) [Rows]Span {
	var out [Rows]Span
	var sum float64
	for r, frac := range prof {
		start := int(math.Floor(sum + boundaryEps))
		sum += frac * float64(height)
		end := min(int(math.Floor(sum+boundaryEps)), height)
		if end <= start {
			end = start + 1
		}
		if end > height {
			start, end = height-1, height
		}
		out[r] = Span{Start: start, End: end}
	}
	return out
}

// Calibration returns the calibration the layout was built from.
func (l Layout) Calibration() Calibration {
	return l.cal
}

// StripeHeight returns the height shared by every stripe.
func (l Layout) StripeHeight() int {
	h := 0
	for _, rh := range l.RowHeights {
		h += rh
	}
	return h
}

// RowTop returns the vertical offset of row r inside a stripe.
func (l Layout) RowTop(r int) int {
	top := 0
	for _, rh := range l.RowHeights[:r] {
		top += rh
	}
	return top
}

// Column returns the source span of column c.
func (l Layout) Column(c int) Span {
	return Span{Start: c * l.TileWidth, End: (c + 1) * l.TileWidth}
}

// WestWing returns the source span of column c's west wing. The map is a
// closed cylinder, so column 0 reads from the right edge of the image.
func (l Layout) WestWing(c int) Span {
	x := c * l.TileWidth
	if c == 0 {
		x = l.SourceWidth
	}
	return Span{Start: x - l.WingWidth, End: x}
}

// EastWing returns the source span of column c's east wing; the last
// column reads from the left edge of the image.
func (l Layout) EastWing(c int) Span {
	x := (c + 1) * l.TileWidth
	if c == Columns-1 {
		x = 0
	}
	return Span{Start: x, End: x + l.WingWidth}
}

// Wing returns the source span of the given wing of column c.
func (l Layout) Wing(c int, side Side) Span {
	if side == West {
		return l.WestWing(c)
	}
	return l.EastWing(c)
}

// TileQuad returns the destination quad of row r's tile warp. Its canvas
// is TileWidth x RowHeights[r].
func (l Layout) TileQuad(r int) image.Quad {
	h := float64(l.RowHeights[r])
	var q image.Quad
	for i, c := range l.cal.TileQuads[r] {
		y := 0.0
		if i >= 2 {
			y = h
		}
		q[i] = image.Point{X: c.X(l.TileWidth, l.Padding), Y: y}
	}
	return q
}

// WingQuad returns the destination quad of a wing warp on a canvas of
// WingWidth x height. The outer edge collapses toward a point: its top
// corner moves down and its bottom corner moves up.
func (l Layout) WingQuad(r int, side Side, height int) image.Quad {
	w := float64(l.WingWidth)
	h := float64(height)
	unit := w / l.TileRatio
	top := math.Min(l.cal.WingDisplacement[r][0]*unit, h/2)
	bottom := math.Min(l.cal.WingDisplacement[r][1]*unit, h/2)

	if side == West {
		return image.Quad{{X: 0, Y: top}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h - bottom}}
	}
	return image.Quad{{X: 0, Y: 0}, {X: w, Y: top}, {X: w, Y: h - bottom}, {X: 0, Y: h}}
}

// ShearAngle returns the wing shear angle of row r in degrees.
func (l Layout) ShearAngle(r int, side Side) float64 {
	a := l.cal.ShearAngles[r] * l.TileRatio
	if side == East {
		return -a
	}
	return a
}

// WingLeft returns the x position of a wing patch of the given width in
// row r of a stripe.
func (l Layout) WingLeft(r int, side Side, patchWidth int) int {
	inset := l.cal.WingNudge
	if l.cal.WingPadded[r] {
		inset += l.Padding
	}
	if side == West {
		return inset
	}
	return l.StripeWidth - patchWidth - inset
}
