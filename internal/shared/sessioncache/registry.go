package sessioncache

import (
	"sync"
	"time"
)

// Registry holds one value per session, created on first use. Values idle
// for longer than the configured duration are dropped by Sweep.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	newFn   func() T
	idle    time.Duration
	now     func() time.Time
}

type entry[T any] struct {
	value    T
	lastUsed time.Time
}

func New[T any](idle time.Duration, newFn func() T) *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*entry[T]),
		newFn:   newFn,
		idle:    idle,
		now:     time.Now,
	}
}

// Get returns the value for sid, creating it on first use.
func (r *Registry[T]) Get(sid string) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sid]
	if !ok {
		e = &entry[T]{value: r.newFn()}
		r.entries[sid] = e
	}
	e.lastUsed = r.now()
	return e.value
}

func (r *Registry[T]) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sid)
}

// Sweep drops idle values and returns how many went.
func (r *Registry[T]) Sweep() int {
	if r.idle <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idle)
	dropped := 0
	for sid, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, sid)
			dropped++
		}
	}
	return dropped
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
