package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clipper/internal/cliphist"
	"github.com/five82/clipper/internal/popup"
	"github.com/five82/clipper/internal/state"
)

type fakeHistory struct {
	mu      sync.Mutex
	entries []cliphist.Entry
	calls   []string
}

func (f *fakeHistory) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeHistory) List(context.Context) ([]cliphist.Entry, error) {
	return append([]cliphist.Entry(nil), f.entries...), nil
}

func (f *fakeHistory) Copy(_ context.Context, e cliphist.Entry) error {
	f.record("copy " + e.ID)
	return nil
}

func (f *fakeHistory) Delete(_ context.Context, e cliphist.Entry) error {
	f.record("delete " + e.ID)
	return nil
}

func (f *fakeHistory) Wipe(context.Context) error {
	f.record("wipe")
	return nil
}

func (f *fakeHistory) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// harness drives a Model synchronously: every command is executed and its
// messages are fed back until nothing is left.
type harness struct {
	t       *testing.T
	m       Model
	history *fakeHistory
	quit    bool
}

func newHarness(t *testing.T, raw string) *harness {
	t.Helper()
	history := &fakeHistory{entries: cliphist.Parse(raw, 0)}
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := popup.New(popup.Options{
		History: history,
		Store:   &state.Store{},
		Timings: popup.Timings{
			RemovalDelay: time.Millisecond,
			WipeWindow:   time.Millisecond,
			ToastTTL:     time.Millisecond,
		},
		Logger: discard,
	})
	t.Cleanup(ctrl.Close)

	h := &harness{
		t:       t,
		history: history,
		m: New(Options{
			Controller:    ctrl,
			PrefsPath:     filepath.Join(t.TempDir(), "prefs.toml"),
			PreviewLength: 60,
			Logger:        discard,
		}),
	}
	h.run(h.m.Init())
	return h
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	h.run(cmd)
}

// sendOnly delivers msg but drops the resulting command, leaving any timer
// it would start unfired.
func (h *harness) sendOnly(msg tea.Msg) {
	next, _ := h.m.Update(msg)
	h.m = next.(Model)
}

func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		h.send(msg)
	}
}

func (h *harness) key(t tea.KeyType) { h.send(tea.KeyMsg{Type: t}) }

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

const sampleListing = "3\talpha one\n2\tbeta two\n1\t[[ binary data 1 KiB png 10x10 ]]\n"

func TestModel_InitShowsHistory(t *testing.T) {
	h := newHarness(t, sampleListing)
	view := h.m.View()
	for _, want := range []string{"alpha one", "beta two", "3 entries", iconBinary, "Clipboard"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}

func TestModel_EmptyHistory(t *testing.T) {
	h := newHarness(t, "")
	if view := h.m.View(); !strings.Contains(view, "No entries") || !strings.Contains(view, "0 entries") {
		t.Fatalf("View = %q, want empty state", view)
	}
	h.key(tea.KeyEnter)
	h.key(tea.KeyCtrlD)
	if calls := h.history.Calls(); len(calls) != 0 {
		t.Fatalf("history calls = %v, want none on empty list", calls)
	}
}

func TestModel_SearchFilters(t *testing.T) {
	h := newHarness(t, sampleListing)
	h.key(tea.KeyDown)
	h.typeText("BETA")

	if h.m.selected != 0 {
		t.Fatalf("selected = %d, want 0 after query change", h.m.selected)
	}
	view := h.m.View()
	if strings.Contains(view, "alpha one") || !strings.Contains(view, "beta two") {
		t.Fatalf("View does not show only the match:\n%s", view)
	}
	if !strings.Contains(view, "1 of 3 entries") {
		t.Fatalf("View missing filtered count:\n%s", view)
	}
}

func TestModel_CopyHidesThenQuits(t *testing.T) {
	h := newHarness(t, sampleListing)
	h.key(tea.KeyDown)
	h.key(tea.KeyEnter)

	calls := h.history.Calls()
	if len(calls) != 1 || calls[0] != "copy 2" {
		t.Fatalf("history calls = %v, want [copy 2]", calls)
	}
	if !h.quit {
		t.Fatal("program did not quit after copy completed")
	}
	if view := h.m.View(); view != "" {
		t.Fatalf("hidden popup rendered %q", view)
	}
}

func TestModel_DeleteSelected(t *testing.T) {
	h := newHarness(t, sampleListing)
	h.key(tea.KeyCtrlD)

	calls := h.history.Calls()
	if len(calls) != 1 || calls[0] != "delete 3" {
		t.Fatalf("history calls = %v, want [delete 3]", calls)
	}
	view := h.m.View()
	if strings.Contains(view, "alpha one") {
		t.Fatalf("deleted entry still rendered:\n%s", view)
	}
	if !strings.Contains(view, "2 entries") {
		t.Fatalf("View missing updated count:\n%s", view)
	}
	if h.quit {
		t.Fatal("delete should not close the popup")
	}
}

func TestModel_WipeNeedsSecondPress(t *testing.T) {
	h := newHarness(t, sampleListing)

	h.sendOnly(tea.KeyMsg{Type: tea.KeyCtrlW})
	if view := h.m.View(); !strings.Contains(view, "Sure?") {
		t.Fatalf("armed wipe label missing:\n%s", view)
	}
	if len(h.history.Calls()) != 0 {
		t.Fatalf("first press ran %v", h.history.Calls())
	}

	h.key(tea.KeyCtrlW)
	calls := h.history.Calls()
	if len(calls) != 1 || calls[0] != "wipe" {
		t.Fatalf("history calls = %v, want [wipe]", calls)
	}
	if view := h.m.View(); !strings.Contains(view, "No entries") {
		t.Fatalf("View after wipe:\n%s", view)
	}
}

func TestModel_EscQuits(t *testing.T) {
	h := newHarness(t, sampleListing)
	h.key(tea.KeyEsc)
	if !h.quit {
		t.Fatal("esc did not quit an idle popup")
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	h := newHarness(t, sampleListing)
	h.key(tea.KeyCtrlT)

	if h.m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", h.m.theme.Name)
	}
	data, err := os.ReadFile(h.m.prefsPath)
	if err != nil {
		t.Fatalf("read prefs: %v", err)
	}
	if !strings.Contains(string(data), "Nightfox") {
		t.Fatalf("prefs = %q, want Nightfox saved", data)
	}
}

func TestModel_NavigationAndScrolling(t *testing.T) {
	var listing strings.Builder
	for i := 10; i >= 1; i-- {
		fmt.Fprintf(&listing, "%d\tentry %d\n", i, i)
	}
	h := newHarness(t, listing.String())
	h.send(tea.WindowSizeMsg{Width: 80, Height: chromeRows + 3})

	h.key(tea.KeyUp)
	if h.m.selected != 0 {
		t.Fatalf("selected = %d after up at top, want 0", h.m.selected)
	}

	h.key(tea.KeyEnd)
	if h.m.selected != 9 || h.m.offset != 7 {
		t.Fatalf("selected/offset = %d/%d after end, want 9/7", h.m.selected, h.m.offset)
	}
	h.key(tea.KeyDown)
	if h.m.selected != 9 {
		t.Fatalf("selected = %d after down at bottom, want 9", h.m.selected)
	}
	view := h.m.View()
	if !strings.Contains(view, "entry 1") || strings.Contains(view, "entry 10") {
		t.Fatalf("scrolled window wrong:\n%s", view)
	}

	h.key(tea.KeyHome)
	if h.m.selected != 0 || h.m.offset != 0 {
		t.Fatalf("selected/offset = %d/%d after home, want 0/0", h.m.selected, h.m.offset)
	}
}

func TestModel_TruncatesLongPreview(t *testing.T) {
	long := strings.Repeat("x", 100)
	h := newHarness(t, "1\t"+long+"\n")
	view := h.m.View()
	if strings.Contains(view, long) {
		t.Fatal("long preview rendered in full")
	}
	if !strings.Contains(view, strings.Repeat("x", 60)+"…") {
		t.Fatalf("View missing truncated preview:\n%s", view)
	}
}
