package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/gogpu/paperglobe"
	"github.com/gogpu/paperglobe/internal/config"
)

// message maps an error to the text shown to the user.
func message(err error) string {
	switch paperglobe.KindOf(err) {
	case paperglobe.KindInvalidImage:
		return fmt.Sprintf("the source image could not be read (%v)", err)
	case paperglobe.KindUnsupportedProjection:
		return fmt.Sprintf("unknown projection (%v); use equirectangular, mercator or gall-stereo", err)
	case paperglobe.KindTemplateLoad:
		return fmt.Sprintf("the print template could not be loaded (%v)", err)
	case paperglobe.KindWrite:
		return fmt.Sprintf("the PDF could not be written (%v)", err)
	}
	if errors.Is(err, config.ErrInvalid) {
		return fmt.Sprintf("bad calibration file (%v)", err)
	}
	return err.Error()
}

// statusPrinter serializes status lines from concurrent generations.
type statusPrinter struct {
	mu  sync.Mutex
	cmd *cobra.Command
}

func (p *statusPrinter) Notify(e paperglobe.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Stage {
	case paperglobe.StageStart:
		fmt.Fprintf(p.cmd.OutOrStdout(), "Generating a paper globe from %s...\n", filepath.Base(e.Source))
	case paperglobe.StageSuccess:
		fmt.Fprintf(p.cmd.OutOrStdout(), "Done: %s\n", e.Output)
	case paperglobe.StageFailure:
		fmt.Fprintf(p.cmd.ErrOrStderr(), "Error: %s: %s\n", filepath.Base(e.Source), message(e.Err))
	}
}

func withStatus(cmd *cobra.Command) paperglobe.Option {
	return paperglobe.WithObserver(&statusPrinter{cmd: cmd})
}
