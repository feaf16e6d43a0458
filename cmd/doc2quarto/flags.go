package main

import (
	flag "github.com/spf13/pflag"
)

// convertFlags holds flags for the convert command.
type convertFlags struct {
	output  string
	workers int
	config  string
	dryRun  bool
	quiet   bool
	verbose bool
}

// parseConvertFlags parses convert command arguments into flags and
// positional arguments.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := newConvertFlagSet()
	f := &convertFlags{}
	bindConvertFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// newConvertFlagSet creates the FlagSet for the convert command.
func newConvertFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("convert", flag.ContinueOnError)
}

// bindConvertFlags registers all convert flags on the given FlagSet.
func bindConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "destination directory for converted files")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.dryRun, "dry-run", false, "convert without writing files")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress per-file output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output with per-file durations")
}
