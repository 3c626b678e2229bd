// Package state holds the in-memory clipboard history and the search view
// derived from it.
//
// # Overview
//
// The Store is the client-side mirror of the external history. It is filled
// wholesale every time the popup opens and mutated locally afterwards, so a
// delete or wipe never needs a re-fetch:
//
//	popup shown   → store.ReplaceAll(entries)
//	delete (late) → store.RemoveByID(id)
//	wipe          → store.Clear()
//
// # Core Types
//
// Store:
//   - Ordered entries, most recent first, exactly as listed by cliphist
//   - Uses sync.RWMutex; the zero value is ready to use
//   - Single writer (popup controller), many readers (view, renderer)
//
// Value:
//   - Generic observable holder used for the search query
//   - Subscribers run only when Set actually changes the value
//
// FilteredView:
//   - Case-insensitive substring match of the query against previews
//   - Explicit dependency edges: Store and query Value, nothing else
//   - Recomputed from scratch on every change; the history is bounded by
//     max_items so this stays cheap per keystroke
//
// # Dependency Graph
//
//	┌─────────┐   Subscribe   ┌──────────────┐
//	│  Store  │──────────────→│              │
//	└─────────┘               │ FilteredView │──→ Items() ──→ renderer
//	┌─────────┐   Subscribe   │              │
//	│  Query  │──────────────→│              │
//	└─────────┘               └──────────────┘
//
// # Concurrency Model
//
// In the popup every mutation happens on the Bubble Tea update goroutine, so
// the locks are uncontended. They exist because command workers run on other
// goroutines; the workers never touch the store, only their result message
// crosses back.
//
// Notifications are delivered after the lock is released, so a subscriber
// may read the store it is subscribed to.
//
// # Defensive Copying
//
// Entries and FilteredView.Items both return copies. Callers may
// keep or modify the returned slices freely.
package state
