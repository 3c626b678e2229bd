package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the popup's key bindings. Printable keys are left to the
// search box, so every action sits on a control or navigation key.
type keyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Actions
	Copy   key.Binding
	Delete key.Binding
	Wipe   key.Binding

	// Global
	Hide       key.Binding
	CycleTheme key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Go to bottom"),
		),

		Copy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d", "shift+delete"),
			key.WithHelp("ctrl+d", "delete"),
		),
		Wipe: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "clear all"),
		),

		Hide: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Delete, k.Wipe, k.Hide}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Copy, k.Delete, k.Wipe},
		{k.CycleTheme, k.Hide},
	}
}
