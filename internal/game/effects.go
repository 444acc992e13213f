// internal/game/effects.go
package game

import (
	"fmt"

	"github.com/cardfelt/uno/internal/deck"
)

// applyPlay moves a validated card from side's hand to the discard pile,
// updates the matchable signature and applies the card's effect. With only
// two seats, Reverse degenerates to Skip: both leave the turn with the
// acting side, as do Draw2 and Draw4 after the victim's forced draws.
// Assumes lock is held and the play was validated by the caller.
func (m *Match) applyPlay(side Side, card deck.Card, chosenColor deck.Color) {
	idx := m.handIndex(side, card)
	m.Hands[side] = append(m.Hands[side][:idx], m.Hands[side][idx+1:]...)
	m.Supply.DiscardTop(card)

	if card.IsWild() {
		m.CurrentColor = chosenColor
	} else {
		m.CurrentColor = card.Color
	}
	m.CurrentValue = card.Value

	m.logAction("play", map[string]interface{}{
		"side":  side.String(),
		"card":  card.String(),
		"color": m.CurrentColor.String(),
	})
	m.announcePlay(side, card)

	retains := false
	switch card.Value {
	case deck.Skip, deck.Reverse:
		retains = true
	case deck.Draw2:
		m.forceDraw(side.Other(), 2)
		retains = true
	case deck.Draw4:
		m.forceDraw(side.Other(), 4)
		retains = true
	}

	if len(m.Hands[side]) == 0 {
		winner := side
		m.Winner = &winner
		m.finish(false)
		return
	}
	if !retains {
		m.Turn = side.Other()
	}
}

// forceDraw pulls n cards into the victim's hand. Assumes lock is held.
func (m *Match) forceDraw(victim Side, n int) {
	drawn := m.Supply.Draw(n)
	m.Hands[victim] = append(m.Hands[victim], drawn...)
	m.notify(fmt.Sprintf("%s draws %d card(s)", victim, len(drawn)))
}

// announcePlay sends the move description to the sink. Assumes lock is held.
func (m *Match) announcePlay(side Side, card deck.Card) {
	if card.IsWild() {
		m.notify(fmt.Sprintf("%s played %s and chose %s", side, card, m.CurrentColor))
		return
	}
	m.notify(fmt.Sprintf("%s played %s", side, card))
}
