package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/paperglobe"
)

func newStripesCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "stripes <file> <dir>",
		Short: "Export the eight gore stripes as PNG files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return report(cmd, err)
			}
			stripes, err := paperglobe.Stripes(cmd.Context(), args[0], f.projection, opts...)
			if err != nil {
				return report(cmd, err)
			}

			dir := args[1]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return report(cmd, err)
			}
			for i, s := range stripes {
				path := filepath.Join(dir, fmt.Sprintf("stripe-%d.png", i+1))
				if err := writePNG(path, s); err != nil {
					return report(cmd, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
