// Package logging configures slog for clipper.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Format selects the log output format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format, returning FormatAuto for unknown values.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "tint", "human":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// ParseLevel converts a string to a slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// New builds a logger writing to w. FormatAuto picks tinter on a terminal
// and JSON everywhere else, including log files.
func New(w io.Writer, format Format, level slog.Level) *slog.Logger {
	useTint := format == FormatText || (format == FormatAuto && IsTTY(w))

	var h slog.Handler
	if useTint {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(h)
}

// Setup installs a logger for w as the slog default and returns it.
func Setup(w io.Writer, format Format, level slog.Level) *slog.Logger {
	logger := New(w, format, level)
	slog.SetDefault(logger)
	return logger
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
