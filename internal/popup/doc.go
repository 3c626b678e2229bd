// Package popup implements the popup's action controller: showing and
// hiding, copy, delete with a delayed row removal, the two-press wipe and
// the single-slot toast.
//
// The controller is not a tea.Model. The ui package owns the Bubble Tea
// program and forwards messages to Controller.Update, which reports whether
// it consumed them. Timers are tea.Tick commands tagged with a generation;
// re-arming or cancelling a slot bumps the generation so an older tick is
// ignored when it arrives.
//
//	Idle ──wipe──→ WipeArmed ──wipe──→ Idle (history wiped)
//	                   │
//	                   └── window elapsed ──→ Idle
//
// History commands start on a worker goroutine as soon as the action runs.
// Only their completion message comes back to the update goroutine.
package popup
