package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// InitLogger configures the default slog logger with the given level and format.
// Format must be "text" or "json". If w is nil, os.Stderr is used.
func InitLogger(level, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// NewLogger returns a logger with a "component" attribute.
func NewLogger(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
