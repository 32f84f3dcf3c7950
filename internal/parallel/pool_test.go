package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), want)
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestWorkerPool_Run(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		jobs    int
	}{
		{"single worker", 1, 8},
		{"more jobs than queue", 2, 100},
		{"more workers than jobs", 8, 3},
		{"no jobs", 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workers)
			defer pool.Close()

			seen := make([]atomic.Int32, tt.jobs)
			err := pool.Run(context.Background(), tt.jobs, func(_ context.Context, i int) error {
				seen[i].Add(1)
				return nil
			})
			if err != nil {
				t.Fatalf("Run error = %v", err)
			}
			for i := range seen {
				if n := seen[i].Load(); n != 1 {
					t.Errorf("job %d ran %d times, want 1", i, n)
				}
			}
		})
	}
}

func TestWorkerPool_RunFirstErrorAborts(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	boom := errors.New("boom")
	var ran atomic.Int32
	err := pool.Run(context.Background(), 10, func(_ context.Context, i int) error {
		ran.Add(1)
		if i == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want boom", err)
	}
	// One worker runs jobs in order; everything after the failure is skipped.
	if n := ran.Load(); n != 4 {
		t.Errorf("ran %d jobs, want 4", n)
	}
}

func TestWorkerPool_RunCanceled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	err := pool.Run(ctx, 5, func(context.Context, int) error {
		ran.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if n := ran.Load(); n != 0 {
		t.Errorf("ran %d jobs on a canceled context, want 0", n)
	}
}

func TestWorkerPool_RunClosed(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	err := pool.Run(context.Background(), 3, func(context.Context, int) error { return nil })
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Run error = %v, want ErrClosed", err)
	}
}

func TestWorkerPool_RunReusable(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	for round := range 3 {
		var sum atomic.Int64
		if err := pool.Run(context.Background(), 20, func(_ context.Context, i int) error {
			sum.Add(int64(i))
			return nil
		}); err != nil {
			t.Fatalf("round %d: Run error = %v", round, err)
		}
		if got := sum.Load(); got != 190 {
			t.Errorf("round %d: sum = %d, want 190", round, got)
		}
	}
}

func TestWorkerPool_ConcurrentRuns(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	const runs, jobs = 4, 16
	var total atomic.Int64
	errs := make(chan error, runs)
	for range runs {
		go func() {
			errs <- pool.Run(context.Background(), jobs, func(context.Context, int) error {
				total.Add(1)
				return nil
			})
		}()
	}
	for range runs {
		if err := <-errs; err != nil {
			t.Errorf("Run error = %v", err)
		}
	}
	if got := total.Load(); got != runs*jobs {
		t.Errorf("ran %d jobs, want %d", got, runs*jobs)
	}
}
