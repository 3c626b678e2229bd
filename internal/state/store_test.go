package state

import (
	"reflect"
	"testing"

	"github.com/five82/clipper/internal/cliphist"
)

func sampleEntries() []cliphist.Entry {
	return cliphist.Parse("a1\thello world\na2\t[[ binary data ]]\n", 50)
}

func TestStore_ReplaceAllAndEntriesClone(t *testing.T) {
	var s Store
	s.ReplaceAll(sampleEntries())

	got := s.Entries()
	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "a2" {
		t.Fatalf("Entries = %#v, want a1, a2", got)
	}

	// Returned slices should be independent of the stored one.
	got[0].ID = "mutated"
	if s.Entries()[0].ID != "a1" {
		t.Fatal("Entries should clone; store was mutated through the result")
	}
}

func TestStore_ReplaceAllDiscardsPrevious(t *testing.T) {
	var s Store
	s.ReplaceAll(sampleEntries())
	s.ReplaceAll([]cliphist.Entry{cliphist.NewEntry("b1", "fresh")})

	got := s.Entries()
	if len(got) != 1 || got[0].ID != "b1" {
		t.Fatalf("Entries = %#v, want only b1", got)
	}
}

func TestStore_RemoveByID(t *testing.T) {
	var s Store
	s.ReplaceAll(sampleEntries())

	if !s.RemoveByID("a1") {
		t.Fatal("RemoveByID(a1) = false, want true")
	}
	got := s.Entries()
	if len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("Entries = %#v, want only a2", got)
	}
}

func TestStore_RemoveByIDIsIdempotent(t *testing.T) {
	var s Store
	s.ReplaceAll(sampleEntries())
	before := s.Entries()

	if s.RemoveByID("missing") {
		t.Fatal("RemoveByID(missing) = true, want false")
	}
	if after := s.Entries(); !reflect.DeepEqual(before, after) {
		t.Fatalf("entries changed: %#v -> %#v", before, after)
	}
}

func TestStore_Clear(t *testing.T) {
	var s Store
	s.ReplaceAll(sampleEntries())
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestStore_SubscribeNotifiesOnMutation(t *testing.T) {
	var s Store
	calls := 0
	unsub := s.Subscribe(func() {
		calls++
		_ = s.Len() // reading from a subscriber must not deadlock
	})

	s.ReplaceAll(sampleEntries())
	s.RemoveByID("a1")
	s.RemoveByID("missing")
	s.Clear()
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}

	unsub()
	unsub()
	s.ReplaceAll(sampleEntries())
	if calls != 3 {
		t.Fatalf("calls after unsubscribe = %d, want 3", calls)
	}
}
