package popup

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastKind selects how a toast is styled.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastError
)

// Toast is the single transient status message. Message is kept after the
// toast hides so the renderer can fade it out.
type Toast struct {
	Message string
	Kind    ToastKind
	Visible bool
}

// toastChannel is a single-slot toast: a new message replaces the old one
// and restarts the expiry.
type toastChannel struct {
	current Toast
	ttl     time.Duration
	timer   timer
}

func newToastChannel(ttl time.Duration) toastChannel {
	return toastChannel{ttl: ttl, timer: timer{slot: "toast"}}
}

func (c *toastChannel) show(message string, kind ToastKind) tea.Cmd {
	c.current = Toast{Message: message, Kind: kind, Visible: true}
	return c.timer.arm(c.ttl)
}

func (c *toastChannel) expire(msg expiredMsg) bool {
	if !c.timer.fired(msg) {
		return false
	}
	c.current.Visible = false
	return true
}
