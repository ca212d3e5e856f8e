package cmd

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/asciitable/internal/cmdutil"
	"github.com/salmonumbrella/asciitable/internal/design"
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/input"
	"github.com/salmonumbrella/asciitable/internal/render"
	"github.com/salmonumbrella/asciitable/internal/table"
	"github.com/salmonumbrella/asciitable/internal/ui"
)

type renderOptions struct {
	inputFormat string
	columns     string
	query       string
	jsonPath    string
	delimiter   string
	maxWidth    int
	fit         bool
	width       int
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:     "render [file|-]",
		Aliases: []string{"r"},
		Short:   "Render records from a file or stdin as a table",
		Long: `Render CSV, TSV, JSON or YAML records as a bordered ASCII table.

The input format is detected from the file extension or the content unless
--input-format is given. Without --columns every field becomes a column and
its width is the longest value, capped by --max-width.

Examples:
  tbl render people.csv
  tbl render --columns ID:4,Title:12 issues.json
  cat data.json | tbl render --jsonpath '$.items' --query 'map(select(.open))'
  tbl render --fit wide.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFormat, "input-format", "f", "", "Input format: auto|csv|tsv|json|yaml (default from config, else auto)")
	cmd.Flags().StringVarP(&opts.columns, "columns", "c", "", "Columns to show as name or name:width, comma separated")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "jq expression applied to the records")
	cmd.Flags().StringVar(&opts.jsonPath, "jsonpath", "", "JSONPath selecting the records inside the document (e.g. $.items)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "CSV field delimiter (use \\t for tab)")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "Upper bound for inferred column widths (default from config, 0 = none)")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "Shrink the widest columns until the table fits the terminal")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Table width used by --fit (default: terminal width)")

	flagAlias(cmd.Flags(), "query", "jq")
	flagAlias(cmd.Flags(), "input-format", "from")

	return cmd
}

func runRender(ctx context.Context, path string, opts renderOptions) error {
	cfg := ConfigFromContext(ctx)

	formatValue := opts.inputFormat
	if formatValue == "" {
		formatValue = cfg.InputFormat
	}
	format, err := input.ParseFormat(formatValue)
	if err != nil {
		return err
	}
	delimiter, err := cmdutil.ParseDelimiter(opts.delimiter)
	if err != nil {
		return clierrors.WrapUserError(err, "invalid --delimiter", "Use a single character such as ';' or \\t")
	}
	columns, err := table.ParseColumns(opts.columns)
	if err != nil {
		return err
	}
	if opts.maxWidth < 0 {
		return clierrors.NewUserError("invalid --max-width", "Use 0 for no limit or a positive width")
	}

	data, err := cmdutil.ReadInputSource(path, stdinFromContext(ctx))
	if err != nil {
		return clierrors.WrapUserError(err, "cannot read input", "Pass a readable file or pipe data on stdin")
	}
	ds, err := input.Load(bytes.NewReader(data), input.Options{
		Format:    format,
		Name:      cmdutil.SourceName(path),
		Delimiter: delimiter,
		JSONPath:  opts.jsonPath,
		Query:     opts.query,
	})
	if err != nil {
		return err
	}

	maxWidth := opts.maxWidth
	if maxWidth == 0 {
		maxWidth = cfg.MaxColumnWidth
	}
	t, err := ds.Table(columns, maxWidth)
	if err != nil {
		return err
	}

	style := tableStyleFromContext(ctx)
	if opts.fit {
		t, err = fitTable(ctx, ds, t, opts.width, style.Padding)
		if err != nil {
			return err
		}
	}

	d, err := design.New(t.Header(), design.WithGlyphs(style.Glyphs), design.WithPadding(style.Padding))
	if err != nil {
		return err
	}

	slog.Debug("rendering table", "rows", len(t.Rows()), "columns", t.ColumnCount(), "width", design.BorderWidth(t.Header(), style.Padding))
	return printerForContext(ctx).PrintTable(t, render.WithDesign(d), render.WithLogger(slog.Default()))
}

// fitTable narrows t's columns to the given width, or the terminal width
// when width is 0. It warns and leaves t alone when no width is known.
func fitTable(ctx context.Context, ds *input.Dataset, t *table.Table, width, padding int) (*table.Table, error) {
	if width <= 0 {
		width = terminalWidth(stdoutFromContext(ctx))
	}
	if width <= 0 {
		ui.FromContext(ctx).Warning("--fit: terminal width unknown; pass --width")
		return t, nil
	}

	cols, fits, err := table.FitColumns(t.Header().Columns(), width, padding)
	if err != nil {
		return nil, err
	}
	if !fits {
		ui.FromContext(ctx).Warning("table is wider than %d columns even at minimum column width", width)
	}
	return ds.Table(cols, 0)
}
