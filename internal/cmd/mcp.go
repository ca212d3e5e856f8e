package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/asciitable/internal/mcpserver"
)

func newMCPCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol server",
	}
	cmd.AddCommand(newMCPServeCmd(app))
	return cmd
}

func newMCPServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the render_table and usable_width tools over stdio",
		Long: `Run an MCP server on stdin/stdout exposing two tools:

  render_table  render CSV, TSV, JSON or YAML records as an ASCII table
  usable_width  compute the content width available in a table

Defaults for glyphs, padding and max column width come from the config
file and the global flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			style := tableStyleFromContext(ctx)
			h := mcpserver.NewHandlers(mcpserver.Defaults{
				Glyphs:         style.Glyphs,
				Padding:        style.Padding,
				MaxColumnWidth: ConfigFromContext(ctx).MaxColumnWidth,
			}, slog.Default())

			slog.Debug("starting MCP server", "version", app.Version)
			return mcpserver.Serve(ctx, mcpserver.New(app.Version, h), stdinFromContext(ctx), stdoutFromContext(ctx))
		},
	}
}
