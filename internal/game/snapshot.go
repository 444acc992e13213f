// internal/game/snapshot.go
package game

import (
	"github.com/google/uuid"

	"github.com/cardfelt/uno/internal/deck"
)

// Snapshot is the serializable view handed to the presentation side after
// every state change. The opponent's hand is obfuscated to a count; only
// the player's own cards are listed.
type Snapshot struct {
	MatchID          uuid.UUID   `json:"match_id"`
	DiscardTop       deck.Card   `json:"discardTop"`
	CurrentColor     string      `json:"currentColor"`
	CurrentValue     string      `json:"currentValue"`
	Hand             []deck.Card `json:"hand"`
	OpponentHandSize int         `json:"opponentHandSize"`
	StackSize        int         `json:"stackSize"`
	DiscardSize      int         `json:"discardSize"`
	Turn             string      `json:"turn"`
	Winner           string      `json:"winner,omitempty"`
	Wager            int64       `json:"wager"`
}

// CurrentSnapshot returns the player-facing view of the match.
func (m *Match) CurrentSnapshot() Snapshot {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.snapshotLocked()
}

// snapshotLocked builds the view. Assumes lock is held.
func (m *Match) snapshotLocked() Snapshot {
	snap := Snapshot{
		MatchID:          m.ID,
		CurrentColor:     m.CurrentColor.String(),
		CurrentValue:     m.CurrentValue.String(),
		Hand:             append([]deck.Card(nil), m.Hands[SidePlayer]...),
		OpponentHandSize: len(m.Hands[SideOpponent]),
		StackSize:        m.Supply.StackSize(),
		DiscardSize:      m.Supply.DiscardSize(),
		Turn:             m.Turn.String(),
		Wager:            m.Wager,
	}
	if top, ok := m.Supply.Top(); ok {
		snap.DiscardTop = top
	}
	if m.Winner != nil {
		snap.Winner = m.Winner.String()
	}
	return snap
}
