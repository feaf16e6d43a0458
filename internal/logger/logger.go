// Package logger wraps charmbracelet/log for structured logging.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log with conversion-specific helpers.
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output.
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard)
}

// FileConverted logs a successful file conversion.
func (l *Logger) FileConverted(source, dest string, duration time.Duration) {
	l.Debug("file converted",
		"source", source,
		"dest", dest,
		"duration", duration.Round(time.Millisecond))
}

// FileError logs a per-file conversion failure.
func (l *Logger) FileError(file string, err error) {
	l.Error("conversion failed",
		"file", file,
		"error", err)
}

// BatchCompleted logs the outcome of a batch run.
func (l *Logger) BatchCompleted(succeeded, failed int, duration time.Duration) {
	l.Info("batch completed",
		"succeeded", succeeded,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}

// ConfigLoaded logs successful config loading.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}
