package sessioncache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type counter struct{ n int }

func newCounter() *counter { return &counter{} }

func TestRegistry(t *testing.T) {
	t.Run("same session shares a value", func(t *testing.T) {
		r := New(time.Minute, newCounter)

		a := r.Get("sid-1")
		a.n++

		assert.Same(t, a, r.Get("sid-1"))
		assert.Equal(t, 1, r.Get("sid-1").n)
		assert.NotSame(t, a, r.Get("sid-2"))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("sweep drops idle values", func(t *testing.T) {
		now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
		r := New(time.Minute, newCounter)
		r.now = func() time.Time { return now }

		r.Get("old")
		now = now.Add(2 * time.Minute)
		r.Get("fresh")

		assert.Equal(t, 1, r.Sweep())
		assert.Equal(t, 1, r.Len())
	})

	t.Run("zero idle never sweeps", func(t *testing.T) {
		r := New(0, newCounter)
		r.Get("a")
		assert.Equal(t, 0, r.Sweep())
	})

	t.Run("drop", func(t *testing.T) {
		r := New(time.Minute, newCounter)
		r.Get("a")
		r.Drop("a")
		assert.Equal(t, 0, r.Len())
	})
}
