package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/paperglobe/gore"
	"github.com/gogpu/paperglobe/template"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projections, print sizes and built-in tables",
		Long: `List the accepted projections and print sizes, and the names of the
built-in calibration and layout tables a --calibration file can use as
its base.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			projections := make([]string, 0, len(gore.Projections()))
			for _, p := range gore.Projections() {
				projections = append(projections, p.String())
			}
			sizes := make([]string, 0, len(template.Sizes()))
			for _, s := range template.Sizes() {
				sizes = append(sizes, s.String())
			}

			printList(w, "projections", projections)
			printList(w, "print sizes", sizes)
			printList(w, "calibrations", gore.Calibrations())
			printList(w, "layouts", template.Layouts())
			return nil
		},
	}
}

func printList(w io.Writer, title string, names []string) {
	fmt.Fprintf(w, "%s: %s\n", title, strings.Join(names, ", "))
}
