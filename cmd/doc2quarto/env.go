package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rvbug/doc2quarto/internal/logger"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *logger.Logger
}

// DefaultEnv returns the production environment. Verbose enables
// debug-level logging; quiet discards logs entirely.
func DefaultEnv(flags *convertFlags) *Environment {
	l := logger.New(os.Stderr)
	switch {
	case flags.quiet:
		l = logger.Discard()
	case flags.verbose:
		l = logger.NewWithLevel(os.Stderr, log.DebugLevel)
	}

	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: l,
	}
}
