package popup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clipper/internal/cliphist"
	"github.com/five82/clipper/internal/runner"
	"github.com/five82/clipper/internal/state"
)

// State is the externally visible controller state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateWipeArmed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateWipeArmed:
		return "wipe-armed"
	default:
		return "idle"
	}
}

// FailurePolicy decides what the user sees when a history command fails.
type FailurePolicy string

const (
	FailSilent FailurePolicy = "silent"
	FailToast  FailurePolicy = "toast"
)

// Op names a mutating history command.
type Op string

const (
	OpCopy   Op = "copy"
	OpDelete Op = "delete"
	OpWipe   Op = "wipe"
)

// Timings holds the controller's delays.
type Timings struct {
	RemovalDelay time.Duration
	WipeWindow   time.Duration
	ToastTTL     time.Duration
}

// DefaultTimings returns the stock delays: 210ms for the row removal
// animation, 3s to confirm a wipe and 2s for a toast.
func DefaultTimings() Timings {
	return Timings{
		RemovalDelay: 210 * time.Millisecond,
		WipeWindow:   3 * time.Second,
		ToastTTL:     2 * time.Second,
	}
}

// Options configures a Controller.
type Options struct {
	Context       context.Context
	History       cliphist.History
	Store         *state.Store
	Timings       Timings
	FailurePolicy FailurePolicy
	Logger        *slog.Logger
}

type refreshedMsg struct {
	epoch   uint64
	entries []cliphist.Entry
	err     error
}

type commandDoneMsg struct {
	op    Op
	entry cliphist.Entry
	err   error
}

type removalDueMsg struct {
	epoch uint64
	id    string
}

// Controller drives the popup. All methods must be called from the Bubble
// Tea update goroutine; history commands run on worker goroutines and report
// back through Update.
type Controller struct {
	ctx     context.Context
	history cliphist.History
	store   *state.Store
	query   *state.Value[string]
	view    *state.FilteredView
	timings Timings
	policy  FailurePolicy
	log     *slog.Logger

	visible bool
	loading bool
	// epoch changes whenever the store contents are reset, so late refresh
	// results and removals aimed at old contents are dropped.
	epoch     uint64
	wipeArmed bool
	wipeTimer timer
	toast     toastChannel
	removing  map[string]bool
	pending   int
}

// New builds a Controller. Zero timings fall back to DefaultTimings.
func New(opts Options) *Controller {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	timings := opts.Timings
	defaults := DefaultTimings()
	if timings.RemovalDelay <= 0 {
		timings.RemovalDelay = defaults.RemovalDelay
	}
	if timings.WipeWindow <= 0 {
		timings.WipeWindow = defaults.WipeWindow
	}
	if timings.ToastTTL <= 0 {
		timings.ToastTTL = defaults.ToastTTL
	}
	policy := opts.FailurePolicy
	if policy != FailToast {
		policy = FailSilent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	query := state.NewValue("")
	return &Controller{
		ctx:       ctx,
		history:   opts.History,
		store:     store,
		query:     query,
		view:      state.NewFilteredView(store, query),
		timings:   timings,
		policy:    policy,
		log:       logger,
		wipeTimer: timer{slot: "wipe"},
		toast:     newToastChannel(timings.ToastTTL),
		removing:  make(map[string]bool),
	}
}

// Close detaches the filtered view from its inputs.
func (c *Controller) Close() { c.view.Close() }

// Show opens the popup: the search query is cleared, any armed wipe is
// disarmed and the history is re-listed in the background.
func (c *Controller) Show() tea.Cmd {
	c.visible = true
	c.loading = true
	c.epoch++
	c.query.Set("")
	c.disarmWipe()
	clear(c.removing)

	epoch := c.epoch
	c.log.Debug("popup shown", "epoch", epoch)
	if c.history == nil {
		c.loading = false
		c.store.Clear()
		return nil
	}

	ctx, history := c.ctx, c.history
	var entries []cliphist.Entry
	done := runner.Go(func() (string, error) {
		var err error
		entries, err = history.List(ctx)
		return "", err
	})
	return func() tea.Msg {
		res := <-done
		return refreshedMsg{epoch: epoch, entries: entries, err: res.Err}
	}
}

// Hide stops presenting the popup. In-flight commands keep running and the
// remaining state is reset by the next Show.
func (c *Controller) Hide() {
	if c.visible {
		c.log.Debug("popup hidden", "pending", c.pending)
	}
	c.visible = false
}

// Copy decodes e into the clipboard and hides the popup. The toast is
// raised as soon as the command is issued.
func (c *Controller) Copy(e cliphist.Entry) tea.Cmd {
	if !c.visible || c.removing[e.ID] {
		return nil
	}
	c.log.Info("copy issued", "id", e.ID, "binary", e.IsBinary)
	issued := c.issue(OpCopy, e, func(ctx context.Context, h cliphist.History) error {
		return h.Copy(ctx, e)
	})
	toast := c.toast.show("Copied to clipboard", ToastInfo)
	c.Hide()
	return tea.Batch(issued, toast)
}

// Delete removes e from the history. The row is marked as removing at once
// and dropped from the store after the removal delay; the delete command
// does not wait for the animation.
func (c *Controller) Delete(e cliphist.Entry) tea.Cmd {
	if !c.visible || c.removing[e.ID] {
		return nil
	}
	c.removing[e.ID] = true
	c.log.Info("delete issued", "id", e.ID)
	issued := c.issue(OpDelete, e, func(ctx context.Context, h cliphist.History) error {
		return h.Delete(ctx, e)
	})

	epoch, id := c.epoch, e.ID
	due := tea.Tick(c.timings.RemovalDelay, func(time.Time) tea.Msg {
		return removalDueMsg{epoch: epoch, id: id}
	})
	toast := c.toast.show("Entry deleted", ToastInfo)
	return tea.Batch(issued, due, toast)
}

// Wipe arms the wipe on the first press and executes it on a second press
// within the confirmation window.
func (c *Controller) Wipe() tea.Cmd {
	if !c.visible {
		return nil
	}
	if !c.wipeArmed {
		c.wipeArmed = true
		c.log.Debug("wipe armed", "window", c.timings.WipeWindow)
		return c.wipeTimer.arm(c.timings.WipeWindow)
	}

	c.disarmWipe()
	// A refresh still in flight must not repopulate the cleared store.
	c.epoch++
	c.loading = false
	clear(c.removing)
	c.store.Clear()
	c.log.Info("wipe issued")
	issued := c.issue(OpWipe, cliphist.Entry{}, func(ctx context.Context, h cliphist.History) error {
		return h.Wipe(ctx)
	})
	toast := c.toast.show("History cleared", ToastInfo)
	return tea.Batch(issued, toast)
}

// Update consumes the controller's own messages. handled is false for any
// message the controller does not own.
func (c *Controller) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case refreshedMsg:
		c.refreshed(msg)
		return nil, true

	case commandDoneMsg:
		return c.commandDone(msg), true

	case removalDueMsg:
		if msg.epoch == c.epoch {
			c.store.RemoveByID(msg.id)
			delete(c.removing, msg.id)
		}
		return nil, true

	case expiredMsg:
		if c.wipeTimer.fired(msg) {
			c.wipeArmed = false
			c.log.Debug("wipe confirmation expired")
			return nil, true
		}
		c.toast.expire(msg)
		return nil, true
	}
	return nil, false
}

func (c *Controller) refreshed(msg refreshedMsg) {
	if msg.epoch != c.epoch {
		c.log.Debug("discarding stale history listing", "epoch", msg.epoch, "current", c.epoch)
		return
	}
	c.loading = false
	entries := msg.entries
	if msg.err != nil {
		c.log.Warn("history listing failed", "error", msg.err)
		entries = nil
	}
	c.store.ReplaceAll(entries)
	c.log.Debug("history loaded", "entries", len(entries))
}

func (c *Controller) commandDone(msg commandDoneMsg) tea.Cmd {
	if c.pending > 0 {
		c.pending--
	}
	if msg.err == nil {
		c.log.Debug("history command finished", "op", msg.op, "id", msg.entry.ID)
		return nil
	}
	c.log.Warn("history command failed", "op", msg.op, "id", msg.entry.ID, "error", msg.err)
	if c.policy != FailToast {
		return nil
	}
	return c.toast.show(failureMessage(msg.op), ToastError)
}

func failureMessage(op Op) string {
	switch op {
	case OpCopy:
		return "Copy failed"
	case OpDelete:
		return "Delete failed"
	case OpWipe:
		return "Wipe failed"
	default:
		return fmt.Sprintf("%s failed", op)
	}
}

// issue starts fn on a worker goroutine immediately and returns a command
// that waits for its completion.
func (c *Controller) issue(op Op, e cliphist.Entry, fn func(context.Context, cliphist.History) error) tea.Cmd {
	if c.history == nil {
		return nil
	}
	c.pending++
	ctx, history := c.ctx, c.history
	done := runner.Go(func() (string, error) {
		return "", fn(ctx, history)
	})
	return func() tea.Msg {
		res := <-done
		return commandDoneMsg{op: op, entry: e, err: res.Err}
	}
}

func (c *Controller) disarmWipe() {
	c.wipeArmed = false
	c.wipeTimer.cancel()
}

// SetQuery updates the search text; the filtered view recomputes.
func (c *Controller) SetQuery(q string) { c.query.Set(q) }

// Query returns the current search text.
func (c *Controller) Query() string { return c.query.Get() }

// Entries returns the entries matching the current query.
func (c *Controller) Entries() []cliphist.Entry { return c.view.Items() }

// Matches is the number of entries matching the current query.
func (c *Controller) Matches() int { return c.view.Len() }

// Total is the number of entries in the store, ignoring the query.
func (c *Controller) Total() int { return c.store.Len() }

// State reports the controller state. Loading wins over an armed wipe.
func (c *Controller) State() State {
	switch {
	case c.loading:
		return StateLoading
	case c.wipeArmed:
		return StateWipeArmed
	default:
		return StateIdle
	}
}

func (c *Controller) Visible() bool   { return c.visible }
func (c *Controller) Loading() bool   { return c.loading }
func (c *Controller) WipeArmed() bool { return c.wipeArmed }
func (c *Controller) Toast() Toast    { return c.toast.current }
func (c *Controller) Pending() int    { return c.pending }

// Removing reports whether the entry is animating out.
func (c *Controller) Removing(id string) bool { return c.removing[id] }

// Done reports whether the popup is hidden with no commands in flight, so
// the process may exit.
func (c *Controller) Done() bool { return !c.visible && c.pending == 0 }
