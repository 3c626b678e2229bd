package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

const fallback = "Tokyo Night"

func TestLoad_MissingFileUsesFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if p := Load("", fallback); p.Theme != fallback {
		t.Fatalf("Theme = %q, want %q", p.Theme, fallback)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "clipper")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Dracula\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load("", fallback); p.Theme != "Dracula" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Dracula")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Dracula"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if loaded := Load(prefsFile, fallback); loaded.Theme != "Dracula" {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, "Dracula")
	}
}

func TestLoad_DegradesToFallback(t *testing.T) {
	cases := map[string]string{
		"empty theme":  "theme = \"  \"\n",
		"invalid toml": "not valid toml {{{\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if p := Load(prefsFile, fallback); p.Theme != fallback {
				t.Fatalf("Theme = %q, want %q", p.Theme, fallback)
			}
		})
	}
}
