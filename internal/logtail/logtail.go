package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Formatter renders slog JSON records as one human-readable line each.
type Formatter struct {
	time  lipgloss.Style
	attrs lipgloss.Style
	level map[string]lipgloss.Style
}

// NewFormatter builds a Formatter whose colours follow r's profile, so
// output piped to a file stays plain.
func NewFormatter(r *lipgloss.Renderer) *Formatter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	level := func(color string) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}
	return &Formatter{
		time:  r.NewStyle().Foreground(lipgloss.Color("#808080")),
		attrs: r.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
		level: map[string]lipgloss.Style{
			"DEBUG": level("#87CEEB"),
			"INFO":  level("#5FD75F"),
			"WARN":  level("#FFD700"),
			"ERROR": level("#FF6B6B"),
		},
	}
}

// Line formats one log line. Lines that are not JSON objects pass through.
func (f *Formatter) Line(line string) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return line
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
		return line
	}

	stamp := fmt.Sprint(record["time"])
	if ts, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
		stamp = ts.Local().Format("2006-01-02 15:04:05")
	}
	level := strings.ToUpper(fmt.Sprint(record["level"]))
	levelStyle, ok := f.level[level]
	if !ok {
		levelStyle = f.attrs
	}

	var b strings.Builder
	b.WriteString(f.time.Render(stamp))
	b.WriteString(" ")
	b.WriteString(levelStyle.Render(fmt.Sprintf("%-5s", level)))
	b.WriteString(" ")
	b.WriteString(fmt.Sprint(record["msg"]))

	keys := make([]string, 0, len(record))
	for k := range record {
		switch k {
		case "time", "level", "msg":
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(f.attrs.Render(k + "=" + attrValue(record[k])))
	}
	return b.String()
}

// Lines formats every line.
func (f *Formatter) Lines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = f.Line(line)
	}
	return out
}

func attrValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\"=") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}
