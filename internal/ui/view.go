package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clipper/internal/cliphist"
	"github.com/five82/clipper/internal/popup"
)

// View implements tea.Model. A hidden popup renders nothing while its last
// commands finish.
func (m Model) View() string {
	if !m.ctrl.Visible() {
		return ""
	}

	styles := m.theme.Styles()
	width := m.innerWidth()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles, width))
	b.WriteString("\n")
	b.WriteString(m.renderToast(styles))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderList(styles, width))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(styles, width))

	return styles.Frame.Width(width + 2).Render(b.String())
}

// innerWidth is the usable width inside the frame border and padding.
func (m Model) innerWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return max(m.width-4, 20)
}

func (m Model) renderHeader(s Styles, width int) string {
	title := s.Title.Render(iconTitle + "  Clipboard")

	var wipe string
	if m.ctrl.WipeArmed() {
		wipe = s.DangerText.Render(iconConfirm + " Sure? " + m.keys.Wipe.Help().Key + " again")
	} else {
		wipe = s.MutedText.Render(iconWipe + " " + m.keys.Wipe.Help().Key + " " + m.keys.Wipe.Help().Desc)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(wipe)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + wipe
}

// renderToast always takes one line so the list does not jump when a toast
// appears or expires.
func (m Model) renderToast(s Styles) string {
	toast := m.ctrl.Toast()
	if !toast.Visible {
		return ""
	}
	if toast.Kind == popup.ToastError {
		return s.ToastError.Render(toast.Message)
	}
	return s.Toast.Render(toast.Message)
}

func (m Model) renderList(s Styles, width int) string {
	height := m.listHeight()
	entries := m.ctrl.Entries()

	lines := make([]string, 0, height)
	switch {
	case m.ctrl.Loading() && len(entries) == 0:
		lines = append(lines, s.FaintText.Render("Loading..."))
	case len(entries) == 0:
		lines = append(lines, s.FaintText.Render("No entries"))
	default:
		end := min(m.offset+height, len(entries))
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderRow(s, entries[i], i == m.selected, width))
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(s Styles, e cliphist.Entry, selected bool, width int) string {
	icon := iconText
	if e.IsBinary {
		icon = iconBinary
	}
	// icon column is 4 cells: space, glyph, two spaces; the ellipsis takes one more
	text := e.Display(min(m.previewLength, max(width-5, 1)))

	style := s.Row
	switch {
	case m.ctrl.Removing(e.ID):
		style = s.Removing
	case selected:
		style = s.Selected
	default:
		return " " + s.Icon.Render(icon) + "  " + style.Render(text)
	}
	return style.Width(width).Render(" " + icon + "  " + text)
}

func (m Model) renderFooter(s Styles, width int) string {
	total := m.ctrl.Total()
	shown := m.ctrl.Matches()

	var count string
	if m.ctrl.Query() != "" {
		count = fmt.Sprintf("%d of %d entries", shown, total)
	} else {
		count = fmt.Sprintf("%d entries", total)
	}
	left := s.Footer.Render(count)

	m.help.Width = max(width-lipgloss.Width(left)-3, 0)
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
