package leave

import (
	"sync"
	"time"

	"elms-portal/internal/shared/sessioncache"
)

// Board is the locally held list behind a dashboard.
//
// Local mutations (Prepend, SetStatus) bump a version and are remembered as
// patches. A fetch calls Begin before going to the network and hands the
// returned version to Replace. Replace takes the fetched list as the truth
// except for patches made after Begin, which are laid over it: the last
// local write wins over a list that may predate it. Patches at or below
// the fetch version are forgotten, since the server already saw them.
// A fetch that began before the last installed one is discarded: the
// patches it would need have already been forgotten.
type Board struct {
	mu      sync.Mutex
	views   []View
	version uint64
	applied uint64
	patches []patch
}

type patch struct {
	version  uint64
	inserted *View
	id       string
	status   Status
}

func NewBoard() *Board {
	return &Board{}
}

// Boards keeps one Board per session.
type Boards = sessioncache.Registry[*Board]

func NewBoards(idle time.Duration) *Boards {
	return sessioncache.New(idle, NewBoard)
}

// Snapshot returns a copy of the current list.
func (b *Board) Snapshot() []View {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]View, len(b.views))
	copy(out, b.views)
	return out
}

func (b *Board) Version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.version
}

// Begin returns the version a fetch starts from.
func (b *Board) Begin() uint64 {
	return b.Version()
}

// Prepend puts a newly submitted request at the head of the list.
func (b *Board) Prepend(v View) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.version++
	inserted := v
	b.patches = append(b.patches, patch{version: b.version, inserted: &inserted})
	b.views = append([]View{v}, b.views...)
}

// SetStatus patches the status of request id. It reports whether id was in
// the list; the patch is remembered either way so an in-flight fetch that
// brings id in still shows the new status.
func (b *Board) SetStatus(id string, s Status) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.version++
	b.patches = append(b.patches, patch{version: b.version, id: id, status: s})

	found := false
	for i := range b.views {
		if b.views[i].ID == id {
			b.views[i] = withStatus(b.views[i], s)
			found = true
		}
	}
	return found
}

// Replace installs a fetched list that was requested at version since. It
// reports false when a newer fetch was already installed and the list is dropped.
func (b *Board) Replace(since uint64, fetched []View) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if since < b.applied {
		return false
	}
	b.applied = since

	kept := b.patches[:0]
	for _, p := range b.patches {
		if p.version > since {
			kept = append(kept, p)
		}
	}
	b.patches = kept

	views := make([]View, len(fetched))
	copy(views, fetched)
	for _, p := range kept {
		if p.inserted != nil {
			if !containsID(views, p.inserted.ID) {
				views = append([]View{*p.inserted}, views...)
			}
			continue
		}
		for i := range views {
			if views[i].ID == p.id {
				views[i] = withStatus(views[i], p.status)
			}
		}
	}
	b.views = views
	return true
}

func containsID(views []View, id string) bool {
	for _, v := range views {
		if v.ID == id {
			return true
		}
	}
	return false
}
