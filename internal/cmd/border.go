package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/asciitable/internal/design"
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/output"
	"github.com/salmonumbrella/asciitable/internal/table"
)

type borderResult struct {
	Fancy   string `json:"fancy" yaml:"fancy"`
	Plain   string `json:"plain" yaml:"plain"`
	Width   int    `json:"width" yaml:"width"`
	Padding int    `json:"padding" yaml:"padding"`
}

func newBorderCmd() *cobra.Command {
	var columns string

	cmd := &cobra.Command{
		Use:     "border",
		Aliases: []string{"b"},
		Short:   "Print the border lines for a set of columns",
		Long: `Print the fancy border (drawn above and below the header and after the
last row) and the plain border (drawn between rows) for the given columns.

Example:
  tbl border --columns ID:4,Title:6
  tbl border --columns ID:4,Title:6 --corner '*' -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cols, err := table.ParseColumns(columns)
			if err != nil {
				return err
			}
			for _, c := range cols {
				if c.Width == 0 {
					return clierrors.NewUserError(fmt.Sprintf("column %q has no width", c.Name), "Give every column a width, e.g. --columns ID:4,Title:6")
				}
			}
			h, err := table.NewHeader(cols...)
			if err != nil {
				return err
			}

			style := tableStyleFromContext(ctx)
			borders, err := design.ComputeBorders(h, style.Glyphs, style.Padding)
			if err != nil {
				return err
			}

			printer := printerForContext(ctx)
			if printer.Format() == output.FormatTable {
				return printer.Print([]string{borders.Fancy, borders.Plain})
			}
			return printer.Print(borderResult{
				Fancy:   borders.Fancy,
				Plain:   borders.Plain,
				Width:   design.BorderWidth(h, style.Padding),
				Padding: style.Padding,
			})
		},
	}

	cmd.Flags().StringVarP(&columns, "columns", "c", "", "Columns as name:width, comma separated (required)")
	_ = cmd.MarkFlagRequired("columns")
	return cmd
}
