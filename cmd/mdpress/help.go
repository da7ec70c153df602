package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpress <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a scenario's markdown files to PDF (default)")
	fmt.Fprintln(w, "  doctor     Check renderer availability and environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdpress convert --help' for conversion flags.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpress convert <scenario> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every markdown file in data/inputs/<scenario> to a styled")
	fmt.Fprintln(w, "PDF in data/outputs/<scenario>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --root <path>       Project root holding config/ and data/ (default: .)")
	fmt.Fprintln(w, "  -s, --style <path>      Style config path (default: <root>/config/styles.yaml)")
	fmt.Fprintln(w, "      --renderer <name>   Renderer backend: wkhtmltopdf, chrome")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers (default: 1, 0 = one per CPU)")
	fmt.Fprintln(w, "  -t, --timeout <dur>     Per-document render timeout (e.g. 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed timing")
}
