package paperglobe

import (
	"io/fs"

	"github.com/gogpu/paperglobe/gore"
	"github.com/gogpu/paperglobe/internal/parallel"
	"github.com/gogpu/paperglobe/template"
)

// Option configures Generate and Stripes.
//
// Example:
//
//	out, err := paperglobe.Generate(ctx, req,
//	    paperglobe.WithWorkers(1),
//	    paperglobe.WithObserver(paperglobe.ObserverFunc(report)))
type Option func(*options)

type options struct {
	observer    Observer
	workers     int
	workerPool  *parallel.WorkerPool
	calibration *gore.Calibration
	layout      *template.Layout
	templates   fs.FS
}

func defaultOptions() options {
	return options{
		observer: nil, // no notifications
		workers:  0,   // GOMAXPROCS
	}
}

// WithObserver registers an observer notified at start, success and failure.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// WithWorkers sets how many gore columns are built concurrently.
// 1 builds them strictly in order; 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithWorkerPool builds gore columns on a shared, caller-owned pool.
// It takes precedence over WithWorkers and leaves the pool open.
func WithWorkerPool(p *parallel.WorkerPool) Option {
	return func(o *options) {
		o.workerPool = p
	}
}

// WithCalibration replaces the built-in gore calibration.
func WithCalibration(c gore.Calibration) Option {
	return func(o *options) {
		o.calibration = &c
	}
}

// WithLayout replaces the built-in sheet layout.
func WithLayout(l template.Layout) Option {
	return func(o *options) {
		o.layout = &l
	}
}

// WithTemplates reads the PDF templates from fsys instead of the bundled
// ones. fsys must hold template-<size>.pdf at its root.
func WithTemplates(fsys fs.FS) Option {
	return func(o *options) {
		o.templates = fsys
	}
}

func (o options) goreOptions() []gore.Option {
	opts := []gore.Option{gore.WithWorkers(o.workers)}
	if o.workerPool != nil {
		opts = append(opts, gore.WithWorkerPool(o.workerPool))
	}
	if o.calibration != nil {
		opts = append(opts, gore.WithCalibration(*o.calibration))
	}
	return opts
}

func (o options) templateOptions() []template.Option {
	var opts []template.Option
	if o.layout != nil {
		opts = append(opts, template.WithLayout(*o.layout))
	}
	if o.templates != nil {
		opts = append(opts, template.WithTemplates(o.templates))
	}
	return opts
}
