package gore

import (
	"github.com/gogpu/paperglobe/internal/image"
	"github.com/gogpu/paperglobe/internal/parallel"
)

// Option configures Generate.
type Option func(*options)

// options holds optional configuration for a Generate call.
type options struct {
	calibration Calibration
	workers     int
	pool        *image.Pool
	workerPool  *parallel.WorkerPool
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		calibration: DefaultCalibration(),
		workers:     0, // GOMAXPROCS, capped at Columns
		pool:        nil, // a private pool per call
		workerPool:  nil, // private workers per call
	}
}

// WithCalibration replaces the built-in calibration table.
func WithCalibration(c Calibration) Option {
	return func(o *options) {
		o.calibration = c
	}
}

// WithWorkers sets how many columns are built concurrently.
// 1 processes columns strictly in order; 0 or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPool shares a scratch buffer pool across calls.
func WithPool(p *image.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithWorkerPool builds columns on a caller-owned worker pool, so several
// Generate calls share one set of goroutines. WithWorkers is ignored and
// the pool is left open.
func WithWorkerPool(p *parallel.WorkerPool) Option {
	return func(o *options) {
		o.workerPool = p
	}
}
