package session_test

import (
	"context"
	"testing"

	"elms-portal/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("employee", func(t *testing.T) {
		store := session.NewMemoryStore()
		bag := session.NewBag(store, "sid")
		id := session.Identity{Role: session.RoleEmployee, EmployeeID: "EMP001", Department: "IT", Name: "Ada"}

		assert.NoError(t, session.Save(ctx, bag, id))

		got, err := session.Load(ctx, bag)
		assert.NoError(t, err)
		assert.Equal(t, id, got)

		v, _, _ := bag.Get(ctx, session.KeyEmployeeID)
		assert.Equal(t, "EMP001", v)
	})

	t.Run("head uses the head keys", func(t *testing.T) {
		store := session.NewMemoryStore()
		bag := session.NewBag(store, "sid")
		id := session.Identity{Role: session.RoleHead, EmployeeID: "DH001", Department: "HR"}

		assert.NoError(t, session.Save(ctx, bag, id))

		headID, ok, _ := bag.Get(ctx, session.KeyHeadID)
		assert.True(t, ok)
		assert.Equal(t, "DH001", headID)
		dept, _, _ := bag.Get(ctx, session.KeyHeadDepartment)
		assert.Equal(t, "HR", dept)
		_, ok, _ = bag.Get(ctx, session.KeyEmployeeID)
		assert.False(t, ok)

		got, err := session.Load(ctx, bag)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("save replaces the previous identity", func(t *testing.T) {
		store := session.NewMemoryStore()
		bag := session.NewBag(store, "sid")
		assert.NoError(t, session.Save(ctx, bag, session.Identity{Role: session.RoleHead, EmployeeID: "DH001", Department: "HR"}))
		assert.NoError(t, session.Save(ctx, bag, session.Identity{Role: session.RoleAdmin, Name: "System Admin"}))

		_, ok, _ := bag.Get(ctx, session.KeyHeadID)
		assert.False(t, ok)

		got, _ := session.Load(ctx, bag)
		assert.Equal(t, session.RoleAdmin, got.Role)
	})

	t.Run("empty session is anonymous", func(t *testing.T) {
		got, err := session.Load(ctx, session.NewBag(session.NewMemoryStore(), "nobody"))
		assert.NoError(t, err)
		assert.Equal(t, session.Anonymous(), got)
		assert.False(t, got.Authenticated())
	})

	t.Run("legacy session without role", func(t *testing.T) {
		store := session.NewMemoryStore()
		_ = store.Set(ctx, "sid", session.KeyHeadID, "DH002")
		_ = store.Set(ctx, "sid", session.KeyHeadDepartment, "Finance")

		got, err := session.Load(ctx, session.NewBag(store, "sid"))
		assert.NoError(t, err)
		assert.Equal(t, session.RoleHead, got.Role)
		assert.Equal(t, "Finance", got.Department)
	})

	t.Run("unknown role is anonymous", func(t *testing.T) {
		store := session.NewMemoryStore()
		_ = store.Set(ctx, "sid", session.KeyRole, "root")

		got, err := session.Load(ctx, session.NewBag(store, "sid"))
		assert.NoError(t, err)
		assert.False(t, got.Authenticated())
	})
}
