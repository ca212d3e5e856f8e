// Package mcpserver exposes the table renderer as Model Context Protocol
// tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/salmonumbrella/asciitable/internal/design"
	"github.com/salmonumbrella/asciitable/internal/input"
	"github.com/salmonumbrella/asciitable/internal/layout"
	"github.com/salmonumbrella/asciitable/internal/render"
	"github.com/salmonumbrella/asciitable/internal/table"
	"github.com/salmonumbrella/asciitable/internal/validate"
)

const serverName = "tbl"

// Tool parameter keys, shared between schema definitions and argument
// extraction.
const (
	argData       = "data"
	argFormat     = "format"
	argColumns    = "columns"
	argQuery      = "query"
	argPadding    = "padding"
	argMaxWidth   = "max_width"
	argCorner     = "corner"
	argHorizontal = "horizontal"
	argVertical   = "vertical"
	argTableWidth = "table_width"
	argColCount   = "column_count"
)

// Defaults are the values used when a tool call leaves an argument out.
type Defaults struct {
	Glyphs         design.Glyphs
	Padding        int
	MaxColumnWidth int
}

// Handlers implements the tool calls. The zero value is not usable; build one
// with NewHandlers.
type Handlers struct {
	defaults Defaults
	logger   *slog.Logger
}

// NewHandlers returns handlers that fall back to defaults. A nil logger means
// slog.Default().
func NewHandlers(defaults Defaults, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	if defaults.Glyphs == (design.Glyphs{}) {
		defaults.Glyphs = design.DefaultGlyphs
	}
	return &Handlers{defaults: defaults, logger: logger}
}

// New builds an MCP server with every tool registered.
func New(version string, h *Handlers) *server.MCPServer {
	s := server.NewMCPServer(serverName, version, server.WithToolCapabilities(false))
	registerTools(s, h)
	return s
}

// Serve runs s over the given streams until ctx is done or in is closed.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}

func registerTools(s *server.MCPServer, h *Handlers) {
	s.AddTool(
		mcp.NewTool("render_table",
			mcp.WithDescription("Render CSV, TSV, JSON or YAML records as a fixed-width bordered ASCII table. "+
				"Long values are wrapped inside their column."),
			mcp.WithString(argData,
				mcp.Required(),
				mcp.Description("The records to render: CSV with a header line, a JSON array of objects, or YAML"),
			),
			mcp.WithString(argFormat,
				mcp.Description("Input format"),
				mcp.Enum("auto", "csv", "tsv", "json", "yaml"),
			),
			mcp.WithString(argColumns,
				mcp.Description("Columns to show as name or name:width, comma separated (e.g. ID:4,Title:12)"),
			),
			mcp.WithString(argQuery,
				mcp.Description("jq expression applied to the records before rendering"),
			),
			mcp.WithNumber(argPadding,
				mcp.Description("Spaces on each side of a cell"),
			),
			mcp.WithNumber(argMaxWidth,
				mcp.Description("Upper bound for inferred column widths"),
			),
			mcp.WithString(argCorner, mcp.Description("Corner glyph")),
			mcp.WithString(argHorizontal, mcp.Description("Horizontal border glyph")),
			mcp.WithString(argVertical, mcp.Description("Vertical separator glyph")),
		),
		h.RenderTable,
	)

	s.AddTool(
		mcp.NewTool("usable_width",
			mcp.WithDescription("Compute how many characters of content fit in a table of the given total width."),
			mcp.WithNumber(argTableWidth, mcp.Required(), mcp.Description("Total table width in characters")),
			mcp.WithNumber(argPadding, mcp.Required(), mcp.Description("Spaces on each side of a cell")),
			mcp.WithNumber(argColCount, mcp.Required(), mcp.Description("Number of columns")),
		),
		h.UsableWidth,
	)
}

// RenderTable handles the render_table tool.
func (h *Handlers) RenderTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := req.RequireString(argData)
	if err != nil || strings.TrimSpace(data) == "" {
		return mcp.NewToolResultError(argData + " is required"), nil
	}

	format, err := input.ParseFormat(req.GetString(argFormat, ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ds, err := input.Load(strings.NewReader(data), input.Options{
		Format: format,
		Query:  req.GetString(argQuery, ""),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cols, err := table.ParseColumns(req.GetString(argColumns, ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t, err := ds.Table(cols, req.GetInt(argMaxWidth, h.defaults.MaxColumnWidth))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	glyphs, err := h.glyphs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pad := req.GetInt(argPadding, h.defaults.Padding)
	d, err := design.New(t.Header(), design.WithGlyphs(glyphs), design.WithPadding(pad))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := render.Render(t, render.WithDesign(d), render.WithLogger(h.logger))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h.logger.DebugContext(ctx, "rendered table", "tool", "render_table", "rows", len(t.Rows()), "columns", t.ColumnCount())
	return mcp.NewToolResultText(out), nil
}

// UsableWidth handles the usable_width tool.
func (h *Handlers) UsableWidth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	width, err := req.RequireInt(argTableWidth)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pad, err := req.RequireInt(argPadding)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := req.RequireInt(argColCount)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	usable, err := layout.UsableWidth(width, pad, n)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d", usable)), nil
}

func (h *Handlers) glyphs(req mcp.CallToolRequest) (design.Glyphs, error) {
	g := h.defaults.Glyphs
	fields := []struct {
		key string
		dst *rune
	}{
		{argCorner, &g.Corner},
		{argHorizontal, &g.Horizontal},
		{argVertical, &g.Vertical},
	}
	for _, f := range fields {
		raw := req.GetString(f.key, "")
		if raw == "" {
			continue
		}
		r, err := validate.Glyph(f.key, raw)
		if err != nil {
			return design.Glyphs{}, err
		}
		*f.dst = r
	}
	return g, nil
}
