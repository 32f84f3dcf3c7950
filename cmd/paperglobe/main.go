// Command paperglobe generates a printable paper globe from a cylindrical
// projection map.
//
//	paperglobe [flags] <file> [output]
//	paperglobe stripes [flags] <file> <dir>
//	paperglobe batch [flags] <file>...
//	paperglobe list
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/paperglobe"
	"github.com/gogpu/paperglobe/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// flags are shared by all commands.
type flags struct {
	projection  string
	size        string
	calibration string
	workers     int
	verbose     bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "paperglobe [flags] <file> [output]",
		Short: "Generate a paper globe template from a cylindrical projection map",
		Long: `Generate a paper globe template from a cylindrical projection map.

<projection> can be:
  - equirectangular
  - mercator
  - gall-stereo (for a Gall Stereographic projection)`,
		Version:       paperglobe.Version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd, f.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return report(cmd, err)
			}
			req := paperglobe.Request{
				Source:     args[0],
				Projection: f.projection,
				Size:       f.size,
			}
			if len(args) == 2 {
				req.Output = args[1]
			}
			if _, err := paperglobe.Generate(cmd.Context(), req, append(opts, withStatus(cmd))...); err != nil {
				return err
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.projection, "projection", "p", "equirectangular", "the map projection of the input image")
	pf.StringVar(&f.calibration, "calibration", "", "YAML file overriding the calibration and sheet layout")
	pf.IntVar(&f.workers, "workers", 0, "columns built concurrently (0 = all CPUs)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log debug diagnostics to stderr")
	cmd.Flags().StringVarP(&f.size, "print-size", "s", "a4", "PDF print size (a4, us-letter)")

	cmd.AddCommand(newStripesCmd(f), newBatchCmd(f), newListCmd())
	return cmd
}

// options turns the flags into library options.
func (f *flags) options() ([]paperglobe.Option, error) {
	opts := []paperglobe.Option{paperglobe.WithWorkers(f.workers)}
	if f.calibration == "" {
		return opts, nil
	}
	file, err := config.Load(f.calibration)
	if err != nil {
		return nil, err
	}
	return append(opts,
		paperglobe.WithCalibration(file.Calibration),
		paperglobe.WithLayout(file.Layout)), nil
}

func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	paperglobe.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
}

// report prints err the way status events do and returns it.
func report(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", message(err))
	return err
}
