package state

import "sync"

// Value is an observable holder. Subscribers run after Set changes the value,
// outside the lock, in registration order.
type Value[T comparable] struct {
	mu   sync.RWMutex
	v    T
	subs subscribers[T]
}

// NewValue returns a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.v
}

// Set stores next and notifies subscribers when it differs from the current
// value. It reports whether a change happened.
func (v *Value[T]) Set(next T) bool {
	v.mu.Lock()
	if v.v == next {
		v.mu.Unlock()
		return false
	}
	v.v = next
	v.mu.Unlock()

	v.subs.notify(next)
	return true
}

// Subscribe registers fn and returns a func that removes it.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	return v.subs.add(fn)
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// subscribers is an ordered, mutex-guarded callback list. The zero value is
// ready to use.
type subscribers[T any] struct {
	mu     sync.Mutex
	nextID uint64
	list   []subscription[T]
}

func (s *subscribers[T]) add(fn func(T)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.list = append(s.list, subscription[T]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *subscribers[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.list {
		if sub.id == id {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return
		}
	}
}

func (s *subscribers[T]) notify(v T) {
	s.mu.Lock()
	list := make([]subscription[T], len(s.list))
	copy(list, s.list)
	s.mu.Unlock()

	for _, sub := range list {
		sub.fn(v)
	}
}
