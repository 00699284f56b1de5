// Package logging configures the process-wide slog logger from the
// verbosity flags shared by the command-line tools.
package logging

import (
	"errors"
	"io"
	"log/slog"
)

// LevelOff is above every level the tools log at.
const LevelOff = slog.Level(16)

// ErrConflictingVerbosity is returned when both verbose and quiet are set.
var ErrConflictingVerbosity = errors.New("--verbose and --quiet are mutually exclusive")

// Level maps verbosity flags to a log level: debug when verbose, nothing
// when quiet, warnings otherwise.
func Level(verbose, quiet bool) (slog.Level, error) {
	switch {
	case verbose && quiet:
		return 0, ErrConflictingVerbosity
	case verbose:
		return slog.LevelDebug, nil
	case quiet:
		return LevelOff, nil
	default:
		return slog.LevelWarn, nil
	}
}

// New returns a text logger writing records at or above level to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs a logger for the given flags as the slog default.
func Setup(w io.Writer, verbose, quiet bool) error {
	level, err := Level(verbose, quiet)
	if err != nil {
		return err
	}
	slog.SetDefault(New(w, level))
	return nil
}
