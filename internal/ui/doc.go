// Package ui renders the clipboard popup with Bubble Tea.
//
// # Package Structure
//
//   - app.go: Model, key handling, selection and the Run entry point
//   - view.go: header, toast line, search box, entry list and footer
//   - keys.go: key bindings and footer help
//   - theme.go: colour palettes and their lipgloss styles
//   - layout.go: sizes and glyphs
//
// # Model and Controller
//
// The Model owns presentation only: the search box, the selected row, the
// scroll offset and the theme. Every clipboard action goes through
// popup.Controller, and any message the Model does not recognise is offered
// to the controller first:
//
//	KeyMsg ──→ handleKey ──→ Controller.Copy / Delete / Wipe / SetQuery
//	other  ──→ Controller.Update ──→ (handled?) ──→ search box
//
// # Closing
//
// Closing hides the popup immediately, so View renders nothing, but the
// program only quits once the controller reports Done. A copy issued just
// before closing still reaches the clipboard.
//
// # Keys
//
// Letters, digits and punctuation go to the search box. Actions use
// enter, ctrl+d, ctrl+w and esc; ctrl+t cycles the theme and saves the
// choice through the prefs package.
package ui
