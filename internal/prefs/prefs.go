// Package prefs persists choices made inside the popup, currently the theme.
// Preferences are stored in ~/.config/clipper/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for clipper.
type Prefs struct {
	Theme string `toml:"theme"`
}

const defaultPrefsPath = "~/.config/clipper/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. A missing, unreadable or corrupt file
// yields Prefs with fallbackTheme; preferences never stop the popup.
func Load(path, fallbackTheme string) Prefs {
	prefs := Prefs{Theme: fallbackTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}

	var stored Prefs
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return prefs
	}
	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		prefs.Theme = theme
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
