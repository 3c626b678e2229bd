package cliphist

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// BinaryMarker prefixes the preview cliphist prints for non-text payloads.
const BinaryMarker = "[[ binary"

// Entry is one record of the external clipboard history.
type Entry struct {
	ID       string `json:"id"`
	Preview  string `json:"preview"`
	IsBinary bool   `json:"binary"`
}

// NewEntry builds an Entry and classifies the preview.
func NewEntry(id, preview string) Entry {
	return Entry{
		ID:       id,
		Preview:  preview,
		IsBinary: strings.HasPrefix(preview, BinaryMarker),
	}
}

// Line reconstructs the two-field listing line that decode and delete expect
// on standard input.
func (e Entry) Line() string {
	return e.ID + "\t" + e.Preview
}

// Display returns the preview clipped to limit terminal cells, followed by
// an ellipsis when anything was cut, so the result may be one cell wider
// than limit. Newlines and tabs are flattened so one
// entry always renders on one row.
func (e Entry) Display(limit int) string {
	text := strings.Join(strings.Fields(e.Preview), " ")
	if limit <= 0 || runewidth.StringWidth(text) <= limit {
		return text
	}
	return runewidth.Truncate(text, limit, "") + "…"
}
