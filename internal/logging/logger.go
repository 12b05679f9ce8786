package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const DefaultLevel = "warn"

// ParseLevel maps a config level name onto a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}

// New creates a text logger writing to w. Diagnostic output never shares a
// stream with the report.
func New(w io.Writer, levelName string) (*slog.Logger, error) {
	if levelName == "" {
		levelName = DefaultLevel
	}

	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With("app", "nginxstat"), nil
}
