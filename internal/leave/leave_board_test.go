package leave_test

import (
	"testing"

	"elms-portal/internal/leave"

	"github.com/stretchr/testify/assert"
)

func pendingViews(ids ...string) []leave.View {
	recs := make([]leave.Record, len(ids))
	for i, id := range ids {
		recs[i] = leave.Record{ID: leave.ID(id), Status: "Pending", StartDate: "2024-01-10", EndDate: "2024-01-10"}
	}
	return leave.DeriveAll(recs)
}

func TestBoard_SetStatus(t *testing.T) {
	b := leave.NewBoard()
	b.Replace(b.Begin(), pendingViews("7", "8"))

	found := b.SetStatus("7", leave.StatusApproved)

	assert.True(t, found)
	got := b.Snapshot()
	assert.Equal(t, leave.StatusApproved, got[0].Status)
	assert.Equal(t, "Approved", got[0].Presentation.Label)
	assert.Equal(t, leave.StatusPending, got[1].Status)
	assert.False(t, b.SetStatus("99", leave.StatusRejected))
}

func TestBoard_StaleFetchKeepsNewerPatch(t *testing.T) {
	b := leave.NewBoard()
	b.Replace(b.Begin(), pendingViews("7"))

	since := b.Begin()
	b.SetStatus("7", leave.StatusApproved)
	b.Replace(since, pendingViews("7"))

	assert.Equal(t, leave.StatusApproved, b.Snapshot()[0].Status)
}

func TestBoard_OverlappingFetches(t *testing.T) {
	t.Run("older fetch landing last is dropped", func(t *testing.T) {
		b := leave.NewBoard()
		b.Replace(b.Begin(), pendingViews("7"))

		sinceA := b.Begin()
		b.SetStatus("7", leave.StatusApproved)
		sinceB := b.Begin()

		approved := pendingViews("7")
		approved[0].Status = leave.StatusApproved
		assert.True(t, b.Replace(sinceB, approved))
		assert.False(t, b.Replace(sinceA, pendingViews("7")))

		assert.Equal(t, leave.StatusApproved, b.Snapshot()[0].Status)
	})

	t.Run("fetches from the same version both install", func(t *testing.T) {
		b := leave.NewBoard()
		since := b.Begin()

		assert.True(t, b.Replace(since, pendingViews("1")))
		assert.True(t, b.Replace(since, pendingViews("1", "2")))
		assert.Len(t, b.Snapshot(), 2)
	})
}

func TestBoard_FreshFetchWins(t *testing.T) {
	b := leave.NewBoard()
	b.Replace(b.Begin(), pendingViews("7"))
	b.SetStatus("7", leave.StatusApproved)

	since := b.Begin()
	fresh := pendingViews("7")
	fresh[0].Status = leave.StatusRejected
	b.Replace(since, fresh)

	assert.Equal(t, leave.StatusRejected, b.Snapshot()[0].Status)
}

func TestBoard_PrependSurvivesStaleFetch(t *testing.T) {
	b := leave.NewBoard()
	b.Replace(b.Begin(), pendingViews("1"))

	since := b.Begin()
	b.Prepend(pendingViews("2")[0])
	b.Replace(since, pendingViews("1"))

	got := b.Snapshot()
	assert.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)

	t.Run("not duplicated once the server returns it", func(t *testing.T) {
		b.Replace(since, pendingViews("2", "1"))
		assert.Len(t, b.Snapshot(), 2)
	})
}

func TestBoard_SnapshotIsCopy(t *testing.T) {
	b := leave.NewBoard()
	b.Replace(b.Begin(), pendingViews("1"))

	snap := b.Snapshot()
	snap[0].ID = "changed"

	assert.Equal(t, "1", b.Snapshot()[0].ID)
}
