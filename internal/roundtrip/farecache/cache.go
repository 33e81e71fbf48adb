package farecache

import (
	"sync"
	"time"
)

// Key identifies one month of fares for one route direction in one
// currency.
type Key struct {
	Origin      string
	Destination string
	Year        int
	Month       time.Month
	Currency    string
}

// Memo remembers fetched values for the duration of a single search, so a
// month covering both legs of the window is fetched once. There is no TTL:
// a memo never outlives the search that created it.
type Memo[T any] struct {
	mu      sync.Mutex
	entries map[Key]T
	clone   func(T) T
}

func New[T any](clone func(T) T) *Memo[T] {
	return &Memo[T]{
		entries: make(map[Key]T),
		clone:   clone,
	}
}

func (m *Memo[T]) Get(key Key) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if m.clone != nil {
		return m.clone(value), true
	}
	return value, true
}

func (m *Memo[T]) Set(key Key, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clone != nil {
		value = m.clone(value)
	}
	m.entries[key] = value
}
