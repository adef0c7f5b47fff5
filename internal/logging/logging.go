package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the application's structured logger. The terminal belongs to
// the TUI, so logs only ever go to a file.
var Logger *slog.Logger

func init() {
	// Default to discarding logs until Init is called
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Init points Logger at logPath with the given minimum level.
// If logPath is empty, logs are discarded.
// The log file is created with mode 0600 (user-only).
func Init(logPath string, level slog.Level) error {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if logPath == "" {
		handler = slog.NewTextHandler(io.Discard, opts)
	} else {
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		handler = slog.NewTextHandler(file, opts)
	}

	Logger = slog.New(handler)
	return nil
}
