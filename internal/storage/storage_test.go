package storage

import (
	"testing"

	"github.com/loptr-yoo/paking-ai-1/internal/viewer"
	"github.com/stretchr/testify/assert"
)

func TestSessionStore(t *testing.T) {
	store := New()

	_, ok := store.Get("b")
	assert.False(t, ok)

	store.Set(viewer.NewSession("b", ""))
	store.Set(viewer.NewSession("a", ""))

	s, ok := store.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "b", s.ID())

	all := store.GetAll()
	if assert.Len(t, all, 2) {
		assert.Equal(t, "a", all[0].ID())
		assert.Equal(t, "b", all[1].ID())
	}

	store.Delete("a")
	_, ok = store.Get("a")
	assert.False(t, ok)
	assert.Len(t, store.GetAll(), 1)
}
