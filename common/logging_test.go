package common

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		l, err := ParseLevel(tt.in)
		if err != nil || l != tt.want {
			t.Errorf("ParseLevel(%s) should be %v but is %v (%v)", tt.in, tt.want, l, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("Unknown levels should be rejected")
	}
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("warn", &buf)
	if err != nil {
		t.Fatalf("Failed to create logger: %s", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "axis", "x")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info records should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "axis=x") {
		t.Errorf("Warn record missing from output: %s", out)
	}
	if !strings.Contains(out, "source=") {
		t.Errorf("Records should carry their source location: %s", out)
	}
}
