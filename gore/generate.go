package gore

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/gogpu/paperglobe/internal/image"
	"github.com/gogpu/paperglobe/internal/parallel"
)

// Generate builds the eight gore stripes of src in column order.
//
// The projection is checked before the raster is touched. Every stripe is
// Layout.StripeWidth x Layout.StripeHeight over a transparent background.
// Columns are built concurrently on private canvases; any failure aborts
// the whole call and no stripes are returned.
func Generate(ctx context.Context, src *image.ImageBuf, p Projection, opts ...Option) ([]*image.ImageBuf, error) {
	if _, err := ProfileOf(p); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no source raster", ErrInvalidImage)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workerPool != nil && !o.workerPool.IsRunning() {
		return nil, fmt.Errorf("gore: %w", parallel.ErrClosed)
	}

	l, err := NewLayout(src.Width(), src.Height(), p, o.calibration)
	if err != nil {
		return nil, err
	}

	log := slogger()
	log.Debug("gore: layout",
		"projection", p,
		"calibration", o.calibration.Name,
		"tile_width", l.TileWidth,
		"tile_height", l.TileHeight,
		"wing_width", l.WingWidth,
		"padding", l.Padding,
		"row_heights", l.RowHeights,
		"stripe", fmt.Sprintf("%dx%d", l.StripeWidth, l.StripeHeight()))

	wp := o.workerPool
	if wp == nil {
		workers := o.workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		wp = parallel.NewWorkerPool(min(workers, Columns))
		defer wp.Close()
	}
	workers := min(wp.Workers(), Columns)

	pool := o.pool
	if pool == nil {
		pool = image.NewPool(2 * workers)
	}

	g := &generator{src: src, layout: l, pool: pool}
	stripes := make([]*image.ImageBuf, Columns)

	start := time.Now()
	err = wp.Run(ctx, Columns, func(ctx context.Context, c int) error {
		s, err := g.stripe(ctx, c)
		if err != nil {
			return fmt.Errorf("gore: column %d: %w", c, err)
		}
		stripes[c] = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("gore: stripes built", "columns", Columns, "workers", workers, "elapsed", time.Since(start))
	return stripes, nil
}

// generator holds the read-only inputs shared by all column jobs.
type generator struct {
	src    *image.ImageBuf
	layout Layout
	pool   *image.Pool
}

// stripe composites column c: per row the west wing, the east wing, then
// the main tile on top.
func (g *generator) stripe(ctx context.Context, c int) (*image.ImageBuf, error) {
	l := g.layout
	stripe, err := image.NewImageBuf(l.StripeWidth, l.StripeHeight())
	if err != nil {
		return nil, err
	}

	for r := range Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		top := l.RowTop(r)

		if l.WingWidth > 0 {
			for _, side := range [...]Side{West, East} {
				patch, err := g.wing(c, r, side)
				if err != nil {
					return nil, fmt.Errorf("row %d wing: %w", r, err)
				}
				image.Composite(stripe, patch, l.WingLeft(r, side, patch.Width()), top)
				g.pool.Put(patch)
			}
		}

		tile, err := g.tile(c, r)
		if err != nil {
			return nil, fmt.Errorf("row %d tile: %w", r, err)
		}
		image.Composite(stripe, tile, l.WingWidth, top)
		g.pool.Put(tile)
	}
	return stripe, nil
}

// tile resamples the main tile of (c, r) to the row size and warps it into
// its lens segment.
func (g *generator) tile(c, r int) (*image.ImageBuf, error) {
	l := g.layout
	col := l.Column(c)
	band := l.Bands[r]
	w, h := l.TileWidth, l.RowHeights[r]

	resized, err := g.pool.Get(w, h)
	if err != nil {
		return nil, err
	}
	defer g.pool.Put(resized)

	area := image.Rect{X: col.Start, Y: band.Start, Width: col.Len(), Height: band.Len()}
	if err := image.ResizeRegion(resized, g.src, area); err != nil {
		return nil, err
	}

	warped, err := g.pool.Get(w, h)
	if err != nil {
		return nil, err
	}
	image.WarpBilinear(warped, resized, image.RectQuad(float64(w), float64(h)), l.TileQuad(r), image.InterpBilinear)
	return warped, nil
}

// wing slices the wing of (c, r) from the neighboring column, collapses its
// outer edge, shears it and scales it to the row height.
func (g *generator) wing(c, r int, side Side) (*image.ImageBuf, error) {
	l := g.layout
	span := l.Wing(c, side)
	band := l.Bands[r]
	w, h := span.Len(), band.Len()

	slice := g.src.SubImage(span.Start, band.Start, w, h)
	if slice == nil {
		return nil, fmt.Errorf("%w: wing %v x %v", image.ErrOutOfBounds, span, band)
	}

	warped, err := g.pool.Get(w, h)
	if err != nil {
		return nil, err
	}
	defer g.pool.Put(warped)
	image.WarpBilinear(warped, slice, image.RectQuad(float64(w), float64(h)), l.WingQuad(r, side, h), image.InterpBilinear)

	angle := l.ShearAngle(r, side)
	sw := image.ShearedWidth(w, h, angle)
	sheared, err := g.pool.Get(sw, h)
	if err != nil {
		return nil, err
	}
	defer g.pool.Put(sheared)
	if err := image.ShearHorizontal(sheared, warped, angle, image.InterpBilinear); err != nil {
		return nil, err
	}

	patch, err := g.pool.Get(sw, l.RowHeights[r])
	if err != nil {
		return nil, err
	}
	if err := image.Resize(patch, sheared); err != nil {
		g.pool.Put(patch)
		return nil, err
	}
	return patch, nil
}
