package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/asciitable/internal/config"
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/output"
	"github.com/salmonumbrella/asciitable/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage CLI configuration",
		Long:    `Manage tbl configuration file at ~/.config/tbl/config.yaml (or $TBL_CONFIG)`,
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := stdoutFromContext(ctx)
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			printer := printerForContext(ctx)
			if printer.Format() != output.FormatTable {
				return printer.Print(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}
			if len(data) == 0 || string(data) == "{}\n" {
				path, _ := config.DefaultConfigPath()
				_, _ = fmt.Fprintf(out, "No configuration file found at %s\n", path)
				_, _ = fmt.Fprintln(out, "\nTo create a config file, use:")
				_, _ = fmt.Fprintln(out, "  tbl config set padding 2")
				return nil
			}

			_, _ = fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

Supported keys:
  output           - Default output format (table, json, yaml)
  color            - Status message color mode (auto, always, never)
  input_format     - Default input format (auto, csv, tsv, json, yaml)
  corner           - Corner glyph of fancy borders
  horizontal       - Horizontal border glyph
  vertical         - Vertical separator glyph
  padding          - Spaces on each side of a cell value
  max_column_width - Upper bound for inferred column widths (0 = none)

Examples:
  tbl config set output json
  tbl config set corner '*'
  tbl config set padding 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, value := args[0], args[1]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Set(key, value); err != nil {
				return clierrors.WrapUserError(err, "cannot set "+key, "Supported keys: "+strings.Join(config.Keys, ", "))
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.DefaultConfigPath()
			ui.FromContext(ctx).Success("Set %s = %s in %s", key, value, path)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			path, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}

			_, _ = fmt.Fprintln(out, path)
			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintln(out, "(file exists)")
			} else if os.IsNotExist(err) {
				_, _ = fmt.Fprintln(out, "(file does not exist)")
			}
			return nil
		},
	}
}
