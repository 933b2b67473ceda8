package admin

import (
	"sync"

	"elms-portal/internal/elmsapi"
)

// Roster is the locally held list of department heads behind one admin session.
type Roster struct {
	mu    sync.Mutex
	heads []elmsapi.DepartmentHead
}

func NewRoster() *Roster {
	return &Roster{}
}

func (r *Roster) Snapshot() []elmsapi.DepartmentHead {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]elmsapi.DepartmentHead, len(r.heads))
	copy(out, r.heads)
	return out
}

func (r *Roster) Replace(heads []elmsapi.DepartmentHead) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.heads = make([]elmsapi.DepartmentHead, len(heads))
	copy(r.heads, heads)
}

func (r *Roster) Find(id string) (elmsapi.DepartmentHead, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.heads {
		if string(h.ID) == id {
			return h, true
		}
	}
	return elmsapi.DepartmentHead{}, false
}

// Upsert replaces the head with the same id, or appends it.
func (r *Roster) Upsert(head elmsapi.DepartmentHead) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.heads {
		if r.heads[i].ID == head.ID {
			r.heads[i] = head
			return
		}
	}
	r.heads = append(r.heads, head)
}

func (r *Roster) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.heads {
		if string(r.heads[i].ID) == id {
			r.heads = append(r.heads[:i], r.heads[i+1:]...)
			return true
		}
	}
	return false
}
