// internal/game/match_store_test.go
package game

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStoreLifecycle(t *testing.T) {
	s := NewMatchStore()
	playerID := uuid.New()

	_, err := s.Get(playerID)
	assert.ErrorIs(t, err, ErrNoActiveMatch)

	m := NewMatch(playerID, 25, false, rand.New(rand.NewSource(1)))
	old := s.Swap(m)
	assert.Nil(t, old)

	got, err := s.Get(playerID)
	require.NoError(t, err)
	assert.Same(t, m, got)

	s.Release(playerID, m.ID)
	_, err = s.Get(playerID)
	assert.ErrorIs(t, err, ErrNoActiveMatch)
}

// TestMatchStoreReleaseComparesMatch checks that releasing a stale match
// leaves its replacement registered.
func TestMatchStoreReleaseComparesMatch(t *testing.T) {
	s := NewMatchStore()
	playerID := uuid.New()

	first := NewMatch(playerID, 25, false, rand.New(rand.NewSource(1)))
	second := NewMatch(playerID, 50, false, rand.New(rand.NewSource(2)))
	s.Swap(first)
	s.Swap(second)

	s.Release(playerID, first.ID)
	got, err := s.Get(playerID)
	require.NoError(t, err)
	assert.Same(t, second, got, "stale release must not drop the live entry")

	s.Release(playerID, second.ID)
	_, err = s.Get(playerID)
	assert.ErrorIs(t, err, ErrNoActiveMatch)
}

func TestMatchStoreSwapEvicts(t *testing.T) {
	s := NewMatchStore()
	playerID := uuid.New()

	first := NewMatch(playerID, 25, false, rand.New(rand.NewSource(1)))
	second := NewMatch(playerID, 50, false, rand.New(rand.NewSource(2)))

	require.Nil(t, s.Swap(first))
	evicted := s.Swap(second)
	assert.Same(t, first, evicted, "one live match per player identity")

	got, err := s.Get(playerID)
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.Len(t, s.All(), 1)
}

func TestMatchStoreIsolatesPlayers(t *testing.T) {
	s := NewMatchStore()
	a := NewMatch(uuid.New(), 10, false, rand.New(rand.NewSource(1)))
	b := NewMatch(uuid.New(), 10, false, rand.New(rand.NewSource(2)))
	s.Swap(a)
	s.Swap(b)

	assert.Len(t, s.All(), 2)
	s.Release(a.PlayerID, a.ID)

	_, err := s.Get(a.PlayerID)
	assert.ErrorIs(t, err, ErrNoActiveMatch)
	_, err = s.Get(b.PlayerID)
	assert.NoError(t, err)
}
