// Package app is clipper's composition root.
//
// # Overview
//
// Run wires configuration, the command runner, the cliphist client, the
// clipboard backend, the history store and the popup controller, then hands
// the result to the ui package:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> runner.New()        argv execution with timeout
//	       ├─────> clipboard.New()     command or native backend
//	       ├─────> cliphist.NewClient() list/decode/delete/wipe
//	       ├─────> prefs.Load()        saved theme
//	       ├─────> state.Store{}       in-memory history
//	       ├─────> popup.New()         action controller
//	       └─────> ui.Run()            Bubble Tea program (blocks)
//
// Each dependency is built once and passed down explicitly; no package holds
// global state apart from the slog default logger.
//
// List reuses the same runner, parser and filter without starting the UI,
// for scripting and debugging.
package app
