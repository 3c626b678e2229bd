package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"json":  FormatJSON,
		"JSON":  FormatJSON,
		"text":  FormatText,
		"tint":  FormatText,
		"human": FormatText,
		"":      FormatAuto,
		"bogus": FormatAuto,
	}
	for in, want := range cases {
		if got := ParseFormat(in); got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_AutoFormatIsJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatAuto, slog.LevelDebug)
	logger.Info("copy issued", "id", "42")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "copy issued" || record["id"] != "42" {
		t.Fatalf("record = %v", record)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelWarn)
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info written at warn level: %q", buf.String())
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, FormatText, slog.LevelInfo).Info("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Fatalf("text output missing message: %q", buf.String())
	}
	if json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Fatalf("text format produced JSON: %q", buf.String())
	}
}

func TestOpenFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "clipper", "clipper.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = f.Close()

	f, err = OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_, _ = f.WriteString("second\n")
	_ = f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "line\nsecond\n" {
		t.Fatalf("contents = %q, want appended lines", data)
	}
}

func TestOpenFile_EmptyPath(t *testing.T) {
	if _, err := OpenFile("  "); err == nil {
		t.Fatal("OpenFile(empty) returned nil error")
	}
}
