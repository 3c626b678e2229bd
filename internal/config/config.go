package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Keys as they appear in the config file. Env vars use the CLIPPER_ prefix
// with the key upper-cased.
const (
	KeyMaxItems         = "max_items"
	KeyPreviewLength    = "preview_length"
	KeyListCommand      = "list_command"
	KeyDecodeCommand    = "decode_command"
	KeyDeleteCommand    = "delete_command"
	KeyWipeCommand      = "wipe_command"
	KeyCopyCommand      = "copy_command"
	KeyClipboardBackend = "clipboard_backend"
	KeyFailurePolicy    = "failure_policy"
	KeyTheme            = "theme"
	KeyCommandTimeout   = "command_timeout"
	KeyLogFile          = "log_file"
	KeyLogFormat        = "log_format"
	KeyLogLevel         = "log_level"
)

const defaultLogFile = "~/.local/state/clipper/clipper.log"

// Config is the resolved clipper configuration. It is read once at startup.
type Config struct {
	MaxItems         int
	PreviewLength    int
	ListCommand      []string
	DecodeCommand    []string
	DeleteCommand    []string
	WipeCommand      []string
	CopyCommand      []string
	ClipboardBackend string
	FailurePolicy    string
	Theme            string
	CommandTimeout   time.Duration
	LogFile          string
	LogFormat        string
	LogLevel         string
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxItems, 50)
	v.SetDefault(KeyPreviewLength, 60)
	v.SetDefault(KeyListCommand, []string{"cliphist", "list"})
	v.SetDefault(KeyDecodeCommand, []string{"cliphist", "decode"})
	v.SetDefault(KeyDeleteCommand, []string{"cliphist", "delete"})
	v.SetDefault(KeyWipeCommand, []string{"cliphist", "wipe"})
	v.SetDefault(KeyCopyCommand, []string{"wl-copy"})
	v.SetDefault(KeyClipboardBackend, "command")
	v.SetDefault(KeyFailurePolicy, "silent")
	v.SetDefault(KeyTheme, "Tokyo Night")
	v.SetDefault(KeyCommandTimeout, 10*time.Second)
	v.SetDefault(KeyLogFile, defaultLogFile)
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogLevel, "info")
}

// FromViper resolves and validates a Config from v. Defaults must already
// be registered with SetDefaults.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		MaxItems:         v.GetInt(KeyMaxItems),
		PreviewLength:    v.GetInt(KeyPreviewLength),
		ListCommand:      argv(v.GetStringSlice(KeyListCommand)),
		DecodeCommand:    argv(v.GetStringSlice(KeyDecodeCommand)),
		DeleteCommand:    argv(v.GetStringSlice(KeyDeleteCommand)),
		WipeCommand:      argv(v.GetStringSlice(KeyWipeCommand)),
		CopyCommand:      argv(v.GetStringSlice(KeyCopyCommand)),
		ClipboardBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeyClipboardBackend))),
		FailurePolicy:    strings.ToLower(strings.TrimSpace(v.GetString(KeyFailurePolicy))),
		Theme:            strings.TrimSpace(v.GetString(KeyTheme)),
		CommandTimeout:   v.GetDuration(KeyCommandTimeout),
		LogFile:          strings.TrimSpace(v.GetString(KeyLogFile)),
		LogFormat:        strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		LogLevel:         strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
	}
	if cfg.LogFile != "" {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field, wrapping ErrInvalid.
func (c Config) Validate() error {
	if c.MaxItems <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, KeyMaxItems, c.MaxItems)
	}
	if c.PreviewLength <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, KeyPreviewLength, c.PreviewLength)
	}
	commands := map[string][]string{
		KeyListCommand:   c.ListCommand,
		KeyDecodeCommand: c.DecodeCommand,
		KeyDeleteCommand: c.DeleteCommand,
		KeyWipeCommand:   c.WipeCommand,
	}
	if c.ClipboardBackend == "command" {
		commands[KeyCopyCommand] = c.CopyCommand
	}
	for _, key := range []string{KeyListCommand, KeyDecodeCommand, KeyDeleteCommand, KeyWipeCommand, KeyCopyCommand} {
		if argv, ok := commands[key]; ok && len(argv) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalid, key)
		}
	}

	switch c.ClipboardBackend {
	case "command", "native":
	default:
		return fmt.Errorf("%w: %s must be command or native, got %q", ErrInvalid, KeyClipboardBackend, c.ClipboardBackend)
	}
	switch c.FailurePolicy {
	case "silent", "toast":
	default:
		return fmt.Errorf("%w: %s must be silent or toast, got %q", ErrInvalid, KeyFailurePolicy, c.FailurePolicy)
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: %s must be auto, text or json, got %q", ErrInvalid, KeyLogFormat, c.LogFormat)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogLevel, c.LogLevel)
	}
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, KeyCommandTimeout, c.CommandTimeout)
	}
	return nil
}

// argv drops blank elements so `[""]` counts as empty.
func argv(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
