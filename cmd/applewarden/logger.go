package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger for a command run.
// Quiet wins over verbose when both are set.
func newLogger(w io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "applewarden",
		Level:  level,
	})
}
