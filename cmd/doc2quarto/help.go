package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2quarto <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert Docusaurus markdown files to Quarto format")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'doc2quarto help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2quarto convert <source> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Docusaurus markdown files to Quarto .qmd files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>    Destination directory (optional if config has output.defaultDir)")
	fmt.Fprintln(w, "  -w, --workers <n>     Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "      --dry-run         Convert without writing files")
	fmt.Fprintln(w, "  -q, --quiet           Suppress per-file output")
	fmt.Fprintln(w, "  -v, --verbose         Verbose output with per-file durations")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converted files mirror the source directory structure under the")
	fmt.Fprintln(w, "destination, with the extension changed to .qmd. Sibling 'img'")
	fmt.Fprintln(w, "directories are copied alongside the converted files.")
}
