// internal/game/rules.go
package game

import "github.com/cardfelt/uno/internal/deck"

// Playable answers whether a card is legal against the current matchable
// signature. Wild-family cards carry deck.ColorWild, so a Wild or Draw4 is
// always playable; the stricter "Draw4 only without a color match in hand"
// house variant is not applied.
func Playable(card deck.Card, currentColor deck.Color, currentValue deck.Value) bool {
	if card.Color == deck.ColorWild {
		return true
	}
	return card.Color == currentColor || card.Value == currentValue
}

// Disruptive reports whether a value belongs to the set of ranks that alter
// turn order or force draws. The bot's baseline strategy leads with these.
func Disruptive(v deck.Value) bool {
	switch v {
	case deck.Skip, deck.Reverse, deck.Draw2, deck.Draw4:
		return true
	}
	return false
}
