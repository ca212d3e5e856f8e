package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/asciitable/internal/config"
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/iocontext"
	"github.com/salmonumbrella/asciitable/internal/logging"
	"github.com/salmonumbrella/asciitable/internal/output"
	"github.com/salmonumbrella/asciitable/internal/ui"
	"github.com/salmonumbrella/asciitable/internal/validate"
)

// globalFlags holds the raw values of the persistent flags.
type globalFlags struct {
	debug       bool
	logFormat   string
	errorFormat string
	output      string
	color       string
	quiet       bool
	corner      string
	horizontal  string
	vertical    string
	padding     int
}

func newRootCmd(app *App) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "tbl",
		Short: "Render records as fixed-width ASCII tables",
		Long: `tbl lays out CSV, TSV, JSON or YAML records as a bordered ASCII table.

Every column has a fixed width; longer values wrap onto extra lines inside
their column, and every row is followed by a border line.

Example:
  printf 'ID,Title\n1,LongTitle\n' | tbl render --columns ID:4,Title:6`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Error output is printed centrally by App.Execute.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = iocontext.WithStreams(ctx, app.streams())
			ctx = WithErrorFormat(ctx, flags.errorFormat)
			cmd.SetContext(ctx)
			if err := validateErrorFormat(flags.errorFormat); err != nil {
				return err
			}

			logFormat, err := logging.ParseFormat(flags.logFormat)
			if err != nil {
				return clierrors.WrapUserError(err, "invalid --log-format", "Use one of: text, json")
			}
			logging.Setup(logging.Options{Debug: flags.debug, Format: logFormat, Writer: app.Stderr})

			// Config commands load the file themselves so a broken file can be fixed.
			cfg := &config.Config{}
			if !isConfigCommand(cmd) {
				loaded, err := config.Load()
				if err != nil {
					return clierrors.WrapUserError(err, "failed to load config", "Fix the file or run 'tbl config path' to locate it")
				}
				cfg = loaded
			}

			ctx, err = buildRootContext(ctx, cmd, app, cfg, flags)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	if app.Stdout != nil {
		rootCmd.SetOut(app.Stdout)
	}
	if app.Stderr != nil {
		rootCmd.SetErr(app.Stderr)
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tbl %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.output, "output", "o", "", "Output format: table|json|yaml (default from config, else table)")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging on stderr")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format: text|json")
	pf.StringVar(&flags.errorFormat, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	pf.StringVar(&flags.color, "color", "", "Status message color: auto|always|never (default from config)")
	pf.BoolVar(&flags.quiet, "quiet", false, "Suppress non-essential output")
	pf.StringVar(&flags.corner, "corner", "", "Corner glyph of fancy borders (default +)")
	pf.StringVar(&flags.horizontal, "horizontal", "", "Horizontal border glyph (default -)")
	pf.StringVar(&flags.vertical, "vertical", "", "Vertical separator glyph (default |)")
	pf.IntVar(&flags.padding, "padding", 1, "Spaces on each side of a cell value")

	flagAlias(pf, "output", "format")
	flagAlias(pf, "padding", "pad")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newBorderCmd())
	rootCmd.AddCommand(newWidthCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMCPCmd(app))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// buildRootContext merges config defaults with flag overrides and stores the
// result in ctx for subcommands.
func buildRootContext(ctx context.Context, cmd *cobra.Command, app *App, cfg *config.Config, flags globalFlags) (context.Context, error) {
	formatValue := flags.output
	if !changed(cmd, "output", "format") && cfg.Output != "" {
		formatValue = cfg.Output
	}
	format, err := output.ParseFormat(formatValue)
	if err != nil {
		return ctx, clierrors.WrapUserError(err, fmt.Sprintf("invalid output format %q", formatValue), "Use one of: table, json, yaml")
	}

	colorValue := flags.color
	if colorValue == "" {
		colorValue = cfg.Color
	}
	colorMode, err := ui.ParseColorMode(colorValue)
	if err != nil {
		return ctx, clierrors.WrapUserError(err, fmt.Sprintf("invalid color mode %q", colorValue), "Use one of: auto, always, never")
	}

	style, err := resolveTableStyle(cmd, cfg, flags)
	if err != nil {
		return ctx, err
	}

	ctx = output.WithFormat(ctx, format)
	ctx = WithConfig(ctx, cfg)
	ctx = withTableStyle(ctx, style)
	ctx = ui.WithUI(ctx, ui.New(app.Stderr, colorMode, flags.quiet))
	return ctx, nil
}

func resolveTableStyle(cmd *cobra.Command, cfg *config.Config, flags globalFlags) (tableStyle, error) {
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return tableStyle{}, clierrors.WrapUserError(err, "invalid glyph in config", "Run 'tbl config set corner +' to fix it")
	}
	overrides := []struct {
		name  string
		value string
		dst   *rune
	}{
		{"corner", flags.corner, &glyphs.Corner},
		{"horizontal", flags.horizontal, &glyphs.Horizontal},
		{"vertical", flags.vertical, &glyphs.Vertical},
	}
	for _, o := range overrides {
		if !changed(cmd, o.name) {
			continue
		}
		r, err := validate.Glyph("--"+o.name, o.value)
		if err != nil {
			return tableStyle{}, clierrors.WrapUserError(err, "invalid glyph", "Glyphs must be one printable ASCII character, e.g. --"+o.name+" '*'")
		}
		*o.dst = r
	}

	padding := cfg.GetPadding()
	if changed(cmd, "padding", "pad") {
		padding = flags.padding
	}
	if err := validate.Padding("--padding", padding); err != nil {
		return tableStyle{}, clierrors.WrapUserError(err, "invalid padding", "Use --padding 0 or more")
	}

	return tableStyle{Glyphs: glyphs, Padding: padding}, nil
}

func changed(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if strings.EqualFold(c.Name(), "config") {
			return true
		}
	}
	return false
}
