package popup

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// expiredMsg is delivered when a revert timer elapses.
type expiredMsg struct {
	slot string
	gen  uint64
}

// timer is one cancellable revert slot. Every arm or cancel bumps the
// generation, and an expiry only counts when its generation is still the
// current one, so at most one revert per slot is ever live.
type timer struct {
	slot string
	gen  uint64
}

func (t *timer) arm(d time.Duration) tea.Cmd {
	t.gen++
	slot, gen := t.slot, t.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return expiredMsg{slot: slot, gen: gen}
	})
}

func (t *timer) cancel() { t.gen++ }

func (t *timer) fired(msg expiredMsg) bool {
	return msg.slot == t.slot && msg.gen == t.gen
}
