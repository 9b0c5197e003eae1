// Package logger provides charmbracelet/log loggers for the elemental command.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm log writing to stderr, so that it does not interleave
// with rendered results on stdout.
func New(prefix string, level log.Level, showTimestamp bool) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, level, showTimestamp)
}

// NewWithWriter creates a charm log with custom output
func NewWithWriter(w io.Writer, prefix string, level log.Level, showTimestamp bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: showTimestamp,
		Formatter:       log.TextFormatter,
	})
}

// ParseLevel converts a level name, falling back to warn for unknown names.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
