package state

import (
	"strings"
	"sync"

	"github.com/five82/clipper/internal/cliphist"
)

// Filter returns the entries whose preview contains query, ignoring case.
// An empty query returns every entry in its original order.
func Filter(entries []cliphist.Entry, query string) []cliphist.Entry {
	if query == "" {
		return cloneEntries(entries)
	}
	needle := strings.ToLower(query)
	var out []cliphist.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Preview), needle) {
			out = append(out, e)
		}
	}
	return out
}

// FilteredView is the search result list. It depends on exactly two inputs,
// the Store and the query Value, and recomputes from scratch whenever either
// changes.
type FilteredView struct {
	store *Store
	query *Value[string]

	mu     sync.RWMutex
	items  []cliphist.Entry
	unsubs []func()
}

// NewFilteredView computes the initial result and subscribes to both inputs.
func NewFilteredView(store *Store, query *Value[string]) *FilteredView {
	v := &FilteredView{store: store, query: query}
	v.recompute()
	v.unsubs = []func(){
		store.Subscribe(v.recompute),
		query.Subscribe(func(string) { v.recompute() }),
	}
	return v
}

// Items returns a copy of the current result.
func (v *FilteredView) Items() []cliphist.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneEntries(v.items)
}

// Len returns the number of matching entries.
func (v *FilteredView) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.items)
}

// Close detaches the view from its inputs.
func (v *FilteredView) Close() {
	for _, unsub := range v.unsubs {
		unsub()
	}
	v.unsubs = nil
}

func (v *FilteredView) recompute() {
	items := Filter(v.store.Entries(), v.query.Get())
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
}
