package main

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/paperglobe"
	"github.com/gogpu/paperglobe/internal/parallel"
)

func newBatchCmd(f *flags) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Generate one globe per input file",
		Long: `Generate one globe per input file, several at a time.

Each PDF is written next to its source as <name>_<size>.pdf. A failing
input does not stop the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return report(cmd, err)
			}
			// All globes share one set of column workers.
			wp := parallel.NewWorkerPool(f.workers)
			defer wp.Close()
			opts = append(opts, withStatus(cmd), paperglobe.WithWorkerPool(wp))

			var failed atomic.Int32
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(jobs, 1))
			for _, src := range args {
				g.Go(func() error {
					req := paperglobe.Request{Source: src, Projection: f.projection, Size: f.size}
					if _, err := paperglobe.Generate(ctx, req, opts...); err != nil {
						failed.Add(1)
					}
					// Interrupts still cancel ctx; per-file failures do not.
					return ctx.Err()
				})
			}
			if err := g.Wait(); err != nil {
				return report(cmd, err)
			}
			if n := failed.Load(); n > 0 {
				return report(cmd, fmt.Errorf("%d of %d globes failed", n, len(args)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "globes generated concurrently")
	cmd.Flags().StringVarP(&f.size, "print-size", "s", "a4", "PDF print size (a4, us-letter)")
	return cmd
}
