package session

import (
	"context"

	sessionerrors "elms-portal/internal/session/errors"

	"go.uber.org/zap"
)

// Manager ties the signed token handed to clients to the server-side store.
type Manager struct {
	store  Store
	tokens *Tokens
	onEnd  []func(sid string)
	logger *zap.Logger
}

func NewManager(store Store, tokens *Tokens, logger ...*zap.Logger) *Manager {
	l := zap.L().Named("session.manager")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.manager")
	}
	return &Manager{store: store, tokens: tokens, logger: l}
}

func (m *Manager) Tokens() *Tokens {
	return m.tokens
}

// OnEnd registers funcs called with the id of every session that ends or is
// replaced by a login. Register before serving.
func (m *Manager) OnEnd(fns ...func(sid string)) {
	m.onEnd = append(m.onEnd, fns...)
}

// Start writes id into a new session and returns the token that identifies
// it. A previous session of the caller is ended, never reused.
func (m *Manager) Start(ctx context.Context, previous string, id Identity) (token string, sessionID string, err error) {
	if previous != "" {
		if err := m.End(ctx, previous); err != nil {
			m.logger.Warn("end previous session failed", zap.String("sid", previous), zap.Error(err))
		}
	}

	sid := NewSessionID()
	if err := Save(ctx, NewBag(m.store, sid), id); err != nil {
		return "", "", err
	}
	token, err = m.tokens.Issue(sid)
	if err != nil {
		return "", "", err
	}
	m.logger.Debug("session started", zap.String("sid", sid), zap.String("role", string(id.Role)))
	return token, sid, nil
}

// Resolve verifies token and loads the identity of its session.
func (m *Manager) Resolve(ctx context.Context, token string) (string, Identity, error) {
	if token == "" {
		return "", Anonymous(), sessionerrors.ErrNoSession
	}
	sid, err := m.tokens.Parse(token)
	if err != nil {
		return "", Anonymous(), err
	}
	id, err := Load(ctx, NewBag(m.store, sid))
	if err != nil {
		return sid, Anonymous(), err
	}
	return sid, id, nil
}

// End clears every key of sid and drops whatever was held for it.
func (m *Manager) End(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	for _, fn := range m.onEnd {
		fn(sid)
	}
	return m.store.Clear(ctx, sid)
}
