package cliphist

import "strings"

// Parse converts `cliphist list` output into entries, most recent first.
//
// Empty lines are skipped and at most limit entries are kept (limit <= 0
// keeps everything). Each line is split at its first tab; a line without a
// tab is kept with the whole line as ID and an empty preview rather than
// failing the parse. IDs are unique in the result: a repeated ID keeps its
// first line.
func Parse(raw string, limit int) []Entry {
	lines := strings.Split(raw, "\n")
	size := len(lines)
	if limit > 0 && limit < size {
		size = limit
	}
	entries := make([]Entry, 0, size)
	seen := make(map[string]struct{}, size)
	for _, line := range lines {
		if line == "" {
			continue
		}
		if limit > 0 && len(entries) == limit {
			break
		}
		id, preview, _ := strings.Cut(line, "\t")
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		entries = append(entries, NewEntry(id, strings.TrimRightFunc(preview, isTrailingSpace)))
	}
	return entries
}

func isTrailingSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
