package contextutil_test

import (
	"context"
	"testing"

	"elms-portal/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithSessionID(ctx, "sid-1")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "req-1", md.RequestID)
	assert.Equal(t, "sid-1", md.SessionID)
}

func TestGetLogger(t *testing.T) {
	t.Run("falls back to no-op", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})

	t.Run("returns stored logger", func(t *testing.T) {
		l := zap.NewExample()
		ctx := contextutil.WithLogger(context.Background(), l)
		assert.Same(t, l, contextutil.GetLogger(ctx, nil))
	})
}
