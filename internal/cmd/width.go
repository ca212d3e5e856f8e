package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/layout"
	"github.com/salmonumbrella/asciitable/internal/output"
)

type widthResult struct {
	TableWidth  int `json:"table_width" yaml:"table_width"`
	Padding     int `json:"padding" yaml:"padding"`
	Columns     int `json:"columns" yaml:"columns"`
	UsableWidth int `json:"usable_width" yaml:"usable_width"`
}

func newWidthCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "width <table-width> <pad> <columns>",
		Aliases: []string{"w"},
		Short:   "Compute the content width available in a table",
		Long: `Compute how many characters of cell content fit in a table of the given
total width, after separators and per-side padding are taken out.

Example:
  tbl width 80 1 4`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"table-width", "pad", "columns"}
			values := make([]int, len(args))
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return clierrors.NewUserError(fmt.Sprintf("invalid %s %q", names[i], arg), "Arguments must be integers, e.g. tbl width 80 1 4")
				}
				values[i] = n
			}

			usable, err := layout.UsableWidth(values[0], values[1], values[2])
			if err != nil {
				return err
			}

			printer := printerForContext(cmd.Context())
			if printer.Format() == output.FormatTable {
				return printer.Print(usable)
			}
			return printer.Print(widthResult{
				TableWidth:  values[0],
				Padding:     values[1],
				Columns:     values[2],
				UsableWidth: usable,
			})
		},
	}
}
