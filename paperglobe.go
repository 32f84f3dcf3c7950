package paperglobe

import (
	"context"
	"fmt"
	stdimage "image"
	"time"

	"github.com/gogpu/paperglobe/gore"
	"github.com/gogpu/paperglobe/internal/image"
	"github.com/gogpu/paperglobe/template"
)

// Request names the inputs of one globe.
type Request struct {
	// Source is the path of the map image.
	Source string

	// Projection is a projection id such as "mercator". Empty means
	// equirectangular.
	Projection string

	// Size is a print size id, "a4" or "us-letter". Empty means a4.
	Size string

	// Output is the PDF path. Empty means OutputName(Source, Size).
	Output string
}

// Generate builds the globe described by req and returns the path of the
// written PDF. Projection and size are checked before the image is read.
func Generate(ctx context.Context, req Request, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out, err := generate(ctx, req, o)
	if err != nil {
		o.notify(Event{Stage: StageFailure, Source: req.Source, Err: err})
		return "", err
	}
	o.notify(Event{Stage: StageSuccess, Source: req.Source, Output: out})
	return out, nil
}

func generate(ctx context.Context, req Request, o options) (string, error) {
	proj, err := parseProjection(req.Projection)
	if err != nil {
		return "", err
	}
	size, err := parseSize(req.Size)
	if err != nil {
		return "", err
	}
	out := req.Output
	if out == "" {
		out = OutputName(req.Source, size)
	}

	o.notify(Event{Stage: StageStart, Source: req.Source})

	start := time.Now()
	stripes, err := stripes(ctx, req.Source, proj, o)
	if err != nil {
		return "", err
	}
	if err := template.PlaceGores(ctx, stripes, size, out, o.templateOptions()...); err != nil {
		return "", err
	}

	Logger().Debug("paperglobe: done", "source", req.Source, "output", out, "elapsed", time.Since(start))
	return out, nil
}

// Stripes loads source and returns its eight gore stripes without placing
// them on a template.
func Stripes(ctx context.Context, source, projection string, opts ...Option) ([]*stdimage.NRGBA, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	proj, err := parseProjection(projection)
	if err != nil {
		return nil, err
	}
	bufs, err := stripes(ctx, source, proj, o)
	if err != nil {
		return nil, err
	}
	out := make([]*stdimage.NRGBA, len(bufs))
	for i, b := range bufs {
		out[i] = b.NRGBA()
	}
	return out, nil
}

func stripes(ctx context.Context, source string, proj gore.Projection, o options) ([]*image.ImageBuf, error) {
	src, err := image.Load(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidImage, source, err)
	}
	Logger().Debug("paperglobe: source loaded", "source", source, "width", src.Width(), "height", src.Height())
	return gore.Generate(ctx, src, proj, o.goreOptions()...)
}

func parseProjection(s string) (gore.Projection, error) {
	if s == "" {
		return gore.Equirectangular, nil
	}
	return gore.ParseProjection(s)
}

func parseSize(s string) (template.Size, error) {
	if s == "" {
		return template.A4, nil
	}
	return template.ParseSize(s)
}

func (o options) notify(e Event) {
	if o.observer != nil {
		o.observer.Notify(e)
	}
}
