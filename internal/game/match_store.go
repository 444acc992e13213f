// internal/game/match_store.go
package game

import (
	"sync"

	"github.com/google/uuid"
)

// MatchStore keys live matches by player identity. At most one live match
// exists per player; Swap is the single atomic registry write, so overlapping
// creates for one player each observe exactly one evicted match to settle.
type MatchStore struct {
	mu      sync.Mutex
	matches map[uuid.UUID]*Match
}

func NewMatchStore() *MatchStore {
	return &MatchStore{
		matches: make(map[uuid.UUID]*Match),
	}
}

// Get returns the live match for a player, or ErrNoActiveMatch.
func (s *MatchStore) Get(playerID uuid.UUID) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[playerID]
	if !ok {
		return nil, ErrNoActiveMatch
	}
	return m, nil
}

// Swap installs a new match for its player and returns the evicted previous
// match, if any. The caller settles the evicted match outside the store lock.
func (s *MatchStore) Swap(m *Match) *Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.matches[m.PlayerID]
	s.matches[m.PlayerID] = m
	return old
}

// Release removes a player's entry only if it still holds the match with the
// given id. Settlement of an evicted match would otherwise drop the entry of
// the match that replaced it.
func (s *MatchStore) Release(playerID, matchID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.matches[playerID]; ok && m.ID == matchID {
		delete(s.matches, playerID)
	}
}

// All returns the current live matches, for the idle reaper's sweep.
func (s *MatchStore) All() []*Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, m)
	}
	return out
}
