package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		quiet       bool
		expected    slog.Level
		expectError bool
	}{
		{name: "default", expected: slog.LevelWarn},
		{name: "verbose", verbose: true, expected: slog.LevelDebug},
		{name: "quiet", quiet: true, expected: LevelOff},
		{name: "both", verbose: true, quiet: true, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := Level(tt.verbose, tt.quiet)
			if tt.expectError {
				if !errors.Is(err, ErrConflictingVerbosity) {
					t.Errorf("expected ErrConflictingVerbosity, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if level != tt.expected {
				t.Errorf("Level() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestNew_Off(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelOff)

	logger.Error("silenced")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %s", buf.String())
	}
}
