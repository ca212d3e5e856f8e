// Package output writes tables and command results in the format selected
// with --output.
//
// It supports output formats:
//   - table: the bordered ASCII layout (default)
//   - json: pretty-printed JSON
//   - yaml: YAML format for structured data
//
// The format is parsed once in root.go and carried in the context:
//
//	format, err := output.ParseFormat(formatFlag)
//	if err != nil {
//	    return err
//	}
//	ctx := output.WithFormat(cmd.Context(), format)
//	cmd.SetContext(ctx)
//
// Commands then build a printer from it:
//
//	printer := output.NewPrinter(stdout, output.FormatFromContext(ctx))
//	return printer.PrintTable(t)
//
// In json and yaml modes a table is re-emitted as a list of records whose
// keys follow the header order. Cells with no value are left out.
package output
