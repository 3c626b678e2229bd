package state

import (
	"sync"

	"github.com/five82/clipper/internal/cliphist"
)

// Store mirrors the external clipboard history in memory.
//
// The popup controller is the only writer; the filtered view and the
// renderer only read. The zero value is ready to use.
type Store struct {
	mu      sync.RWMutex
	entries []cliphist.Entry
	subs    subscribers[struct{}]
}

// ReplaceAll discards the current contents and stores entries.
func (s *Store) ReplaceAll(entries []cliphist.Entry) {
	s.mu.Lock()
	s.entries = cloneEntries(entries)
	s.mu.Unlock()

	s.subs.notify(struct{}{})
}

// RemoveByID removes the first entry with id. It reports whether anything
// was removed; removing an absent id leaves the store untouched.
func (s *Store) RemoveByID(id string) bool {
	s.mu.Lock()
	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	entries := make([]cliphist.Entry, 0, len(s.entries)-1)
	entries = append(entries, s.entries[:idx]...)
	entries = append(entries, s.entries[idx+1:]...)
	s.entries = entries
	s.mu.Unlock()

	s.subs.notify(struct{}{})
	return true
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	s.subs.notify(struct{}{})
}

// Entries returns a copy of the stored entries in store order.
func (s *Store) Entries() []cliphist.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Subscribe registers fn to run after every mutation. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	return s.subs.add(func(struct{}) { fn() })
}

func cloneEntries(entries []cliphist.Entry) []cliphist.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]cliphist.Entry, len(entries))
	copy(dup, entries)
	return dup
}
