package session_test

import (
	"context"
	"testing"
	"time"

	"elms-portal/internal/session"
	sessionerrors "elms-portal/internal/session/errors"

	"github.com/stretchr/testify/assert"
)

func TestManager(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(session.NewMemoryStore(), session.NewTokens("secret", time.Hour))
	id := session.Identity{Role: session.RoleEmployee, EmployeeID: "EMP001", Department: "IT"}

	t.Run("start then resolve", func(t *testing.T) {
		token, sid, err := m.Start(ctx, "", id)
		assert.NoError(t, err)
		assert.NotEmpty(t, sid)

		gotSID, got, err := m.Resolve(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, sid, gotSID)
		assert.Equal(t, id, got)
	})

	t.Run("end makes the session anonymous", func(t *testing.T) {
		token, sid, _ := m.Start(ctx, "", id)
		assert.NoError(t, m.End(ctx, sid))

		_, got, err := m.Resolve(ctx, token)
		assert.NoError(t, err)
		assert.False(t, got.Authenticated())
	})

	t.Run("login mints a new session and ends the previous one", func(t *testing.T) {
		var ended []string
		m := session.NewManager(session.NewMemoryStore(), session.NewTokens("secret", time.Hour))
		m.OnEnd(func(sid string) { ended = append(ended, sid) })

		oldToken, oldSID, err := m.Start(ctx, "", id)
		assert.NoError(t, err)
		assert.Empty(t, ended)

		head := session.Identity{Role: session.RoleHead, EmployeeID: "DH001", Department: "HR"}
		_, newSID, err := m.Start(ctx, oldSID, head)
		assert.NoError(t, err)

		assert.NotEqual(t, oldSID, newSID)
		assert.Equal(t, []string{oldSID}, ended)
		_, got, err := m.Resolve(ctx, oldToken)
		assert.NoError(t, err)
		assert.False(t, got.Authenticated())
	})

	t.Run("end runs the registered hooks", func(t *testing.T) {
		var ended []string
		m := session.NewManager(session.NewMemoryStore(), session.NewTokens("secret", time.Hour))
		m.OnEnd(func(sid string) { ended = append(ended, sid) })

		_, sid, _ := m.Start(ctx, "", id)
		assert.NoError(t, m.End(ctx, sid))

		assert.Equal(t, []string{sid}, ended)
	})

	t.Run("negative - no token", func(t *testing.T) {
		_, _, err := m.Resolve(ctx, "")
		assert.ErrorIs(t, err, sessionerrors.ErrNoSession)
	})
}
