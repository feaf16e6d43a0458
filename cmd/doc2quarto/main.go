package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args))
}

// run dispatches to the requested command and returns the process exit code.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "convert":
		return runConvertCommand(args[2:])
	case "version":
		fmt.Printf("doc2quarto %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(args[2:], os.Stdout)
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[1])
		printUsage(os.Stderr)
		return ExitUsage
	}
}

// runConvertCommand parses convert flags and executes the conversion.
func runConvertCommand(args []string) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := DefaultEnv(flags)
	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runHelp prints help for a specific command, or general usage.
func runHelp(args []string, w io.Writer) {
	if len(args) > 0 && args[0] == "convert" {
		printConvertUsage(w)
		return
	}
	printUsage(w)
}
