package session

import (
	"context"
	"sync"
)

// Keys written by the sign-in flows. headDepartement keeps its historical
// spelling because existing clients read it.
const (
	KeyEmployeeID     = "employeeId"
	KeyDepartment     = "department"
	KeyHeadID         = "headId"
	KeyHeadDepartment = "headDepartement"
	KeyName           = "name"
	KeyRole           = "role"
)

type Store interface {
	// Get returns the value of key for session sid; ok is false when absent.
	Get(ctx context.Context, sid, key string) (value string, ok bool, err error)
	Set(ctx context.Context, sid, key, value string) error
	// Clear removes every key of session sid.
	Clear(ctx context.Context, sid string) error
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, sid, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.sessions[sid][key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, sid, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bag, ok := m.sessions[sid]
	if !ok {
		bag = make(map[string]string)
		m.sessions[sid] = bag
	}
	bag[key] = value
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sid)
	return nil
}

// Bag is the key-value view of a single session.
type Bag struct {
	store Store
	sid   string
}

func NewBag(store Store, sid string) *Bag {
	return &Bag{store: store, sid: sid}
}

func (b *Bag) ID() string {
	return b.sid
}

func (b *Bag) Get(ctx context.Context, key string) (string, bool, error) {
	return b.store.Get(ctx, b.sid, key)
}

// Set overwrites key; the previous value is discarded.
func (b *Bag) Set(ctx context.Context, key, value string) error {
	return b.store.Set(ctx, b.sid, key, value)
}

func (b *Bag) Clear(ctx context.Context) error {
	return b.store.Clear(ctx, b.sid)
}
