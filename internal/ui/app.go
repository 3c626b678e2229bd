package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clipper/internal/cliphist"
	"github.com/five82/clipper/internal/popup"
	"github.com/five82/clipper/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Controller    *popup.Controller
	ThemeName     string
	PrefsPath     string
	PreviewLength int
	Logger        *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctrl          *popup.Controller
	prefsPath     string
	previewLength int
	log           *slog.Logger

	// UI state
	keys   keyMap
	help   help.Model
	search textinput.Model
	theme  Theme
	width  int
	height int

	// List state
	selected int
	offset   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	previewLength := opts.PreviewLength
	if previewLength <= 0 {
		previewLength = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	search := textinput.New()
	search.Prompt = promptSearch
	search.Placeholder = "Search..."
	search.Cursor.SetMode(cursor.CursorStatic)
	search.Focus()

	return Model{
		ctrl:          opts.Controller,
		prefsPath:     prefsPath,
		previewLength: previewLength,
		log:           logger,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		search:        search,
		theme:         GetTheme(themeName),
	}
}

// Init implements tea.Model. Starting the program is showing the popup.
func (m Model) Init() tea.Cmd {
	return m.ctrl.Show()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.ctrl.Visible() {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampSelection()
		return m, nil
	}

	cmd, handled := m.ctrl.Update(msg)
	if !handled {
		var inputCmd tea.Cmd
		m.search, inputCmd = m.search.Update(msg)
		return m, inputCmd
	}
	m.clampSelection()
	return m, m.quitWhenDone(cmd)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Hide):
		m.ctrl.Hide()
		return m, m.quitWhenDone(nil)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn("saving theme preference failed", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.selected = m.ctrl.Matches() - 1
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		return m, m.quitWhenDone(m.ctrl.Copy(entry))

	case key.Matches(msg, m.keys.Delete):
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		return m, m.ctrl.Delete(entry)

	case key.Matches(msg, m.keys.Wipe):
		cmd := m.ctrl.Wipe()
		m.clampSelection()
		return m, cmd
	}

	// Everything else edits the search box.
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.ctrl.Query() {
		m.ctrl.SetQuery(value)
		m.selected = 0
		m.offset = 0
	}
	return m, cmd
}

// quitWhenDone appends tea.Quit once the popup is hidden and no history
// command is still running.
func (m Model) quitWhenDone(cmd tea.Cmd) tea.Cmd {
	if !m.ctrl.Done() {
		return cmd
	}
	return tea.Batch(cmd, tea.Quit)
}

func (m Model) selectedEntry() (cliphist.Entry, bool) {
	entries := m.ctrl.Entries()
	if m.selected < 0 || m.selected >= len(entries) {
		return cliphist.Entry{}, false
	}
	return entries[m.selected], true
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.clampSelection()
}

// clampSelection keeps the cursor on an existing row and inside the
// scrolled window.
func (m *Model) clampSelection() {
	count := m.ctrl.Matches()
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	height := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+height {
		m.offset = m.selected - height + 1
	}
	if maxOffset := max(count-height, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

func (m Model) listHeight() int {
	if m.height <= 0 {
		return defaultListHeight
	}
	return max(m.height-chromeRows, minListHeight)
}

// Run starts the Bubble Tea program and blocks until the popup closes.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
