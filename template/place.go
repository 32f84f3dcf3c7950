package template

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/gogpu/paperglobe/internal/image"
)

func init() {
	// Templates are self-contained; never touch the user's pdfcpu config.
	api.DisableConfigDir()
}

// Option configures PlaceGores.
type Option func(*options)

type options struct {
	templates fs.FS
	layout    Layout
}

func defaultOptions() options {
	return options{
		templates: Assets(),
		layout:    DefaultLayout(),
	}
}

// WithTemplates reads templates from fsys instead of the bundled assets.
// fsys must hold template-<size>.pdf at its root.
func WithTemplates(fsys fs.FS) Option {
	return func(o *options) {
		o.templates = fsys
	}
}

// WithLayout replaces the built-in slot layout.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// configuration returns a fresh pdfcpu configuration. Templates are
// produced by hand, so validation is relaxed. Object streams stay off so
// the document info dictionary is written in plain text and can be pinned.
func configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.ADDWATERMARKS
	conf.ValidationMode = model.ValidationRelaxed
	conf.WriteObjectStream = false
	return conf
}

// PlaceGores stamps the eight stripes onto the template of the given size
// and writes the document to outputPath.
//
// The template is loaded fresh for every call. The output is written to a
// temporary file next to outputPath and renamed into place, so a failed
// call never leaves a partial document behind. Identical stripes and size
// always produce a byte-identical document.
func PlaceGores(ctx context.Context, stripes []*image.ImageBuf, size Size, outputPath string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(stripes) != Slots {
		return fmt.Errorf("%w: got %d stripes, want %d", ErrStripes, len(stripes), Slots)
	}
	if err := o.layout.Validate(); err != nil {
		return err
	}
	sheet, ok := o.layout.Sheets[size]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedSize, string(size))
	}

	doc, err := loadTemplate(o.templates, size, configuration())
	if err != nil {
		return err
	}

	stamps, id, err := planStamps(ctx, stripes, size, sheet, o.layout)
	if err != nil {
		return err
	}

	// Pages are stamped in ascending order so object numbers are stable.
	for page := 1; page <= doc.PageCount; page++ {
		wms := stamps[page]
		if len(wms) == 0 {
			continue
		}
		if err := pdfcpu.AddWatermarksSliceMap(doc, map[int][]*model.Watermark{page: wms}); err != nil {
			return fmt.Errorf("%w: page %d: %w", ErrWrite, page, err)
		}
	}

	var buf bytes.Buffer
	if err := api.WriteContext(doc, &buf); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	out, err := pinDocument(buf.Bytes(), id)
	if err != nil {
		return err
	}

	if err := writeAtomic(outputPath, func(w io.Writer) error {
		_, err := w.Write(out)
		return err
	}); err != nil {
		return err
	}

	slogger().Info("template: document written", "path", outputPath, "size", size, "pages", Pages)
	return nil
}

// loadTemplate reads and validates the template of size.
func loadTemplate(fsys fs.FS, size Size, conf *model.Configuration) (*model.Context, error) {
	name := size.fileName()
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateLoad, err)
	}

	ctx, err := api.ReadContext(bytes.NewReader(b), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, name, err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, name, err)
	}
	if ctx.PageCount < Pages {
		return nil, fmt.Errorf("%w: %s has %d pages, want %d", ErrTemplateLoad, name, ctx.PageCount, Pages)
	}

	slogger().Debug("template: loaded", "file", name, "pages", ctx.PageCount)
	return ctx, nil
}

// planStamps builds one image stamp per stripe, keyed by 1-based page,
// and a fingerprint of everything that ends up in the document.
func planStamps(ctx context.Context, stripes []*image.ImageBuf, size Size, sheet Sheet, l Layout) (map[int][]*model.Watermark, []byte, error) {
	stamps := make(map[int][]*model.Watermark, Pages)
	fp := newFingerprint(size)
	for i, s := range stripes {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("%w: stripe %d is missing", ErrStripes, i)
		}

		r, err := l.Rect(size, i, s.Width(), s.Height())
		if err != nil {
			return nil, nil, err
		}

		png, err := PrintColor(s).EncodeToBytes()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: stripe %d: %w", ErrWrite, i, err)
		}

		desc := stampDescription(r, sheet.PageHeight, s.Height())
		fp.add(desc, png)
		wm, err := api.ImageWatermarkForReader(bytes.NewReader(png), desc, true, false, types.POINTS)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: stripe %d: %w", ErrWrite, i, err)
		}
		stamps[r.Page+1] = append(stamps[r.Page+1], wm)

		slogger().Debug("template: stripe placed",
			"stripe", i, "page", r.Page+1,
			"x", r.X, "y", r.Y, "width", r.Width, "height", r.Height)
	}
	return stamps, fp.sum(), nil
}

// stampDescription anchors the stamp's lower-left corner on r. PDF space
// grows upward, so the top-down offset is flipped against the page height.
func stampDescription(r Rect, pageHeight float64, pixelHeight int) string {
	return fmt.Sprintf("position:bl, offset:%.2f %.2f, scalefactor:%.6f abs, rotation:0, opacity:1",
		r.X, r.Bottom(pageHeight), r.Height/float64(pixelHeight))
}

// writeAtomic writes through a temporary file in the destination directory
// and renames it over path once the content is synced.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".paperglobe-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
