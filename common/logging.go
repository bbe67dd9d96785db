package common

import (
	"fmt"
	"io"
	"log/slog"
)

// ParseLevel accepts the slog level names (debug, info, warn, error), case insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("unknown log level '%s'", s)
	}
	return l, nil
}

// NewLogger returns a text logger writing to w that tags every record with its source file and line.
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     l,
	})), nil
}
