// internal/game/bot.go
package game

import "github.com/cardfelt/uno/internal/deck"

// Action is the bot's decision for one turn: a play with an optional wild
// color declaration, or a draw.
type Action struct {
	Play  bool
	Card  deck.Card
	Color deck.Color
}

// chooseAction implements the opponent policy. It filters the bot's hand to
// playable cards; with none, it draws. The baseline strategy leads with a
// disruptive card when it holds one; under Advantage it instead samples
// uniformly among all legal plays, softening its own effectiveness. No
// lookahead. Deterministic given the match's injected rand source.
// Assumes lock is held.
func (m *Match) chooseAction() Action {
	hand := m.Hands[SideOpponent]
	var playable []deck.Card
	for _, c := range hand {
		if Playable(c, m.CurrentColor, m.CurrentValue) {
			playable = append(playable, c)
		}
	}
	if len(playable) == 0 {
		return Action{Play: false}
	}

	pool := playable
	if !m.Advantage {
		var disruptive []deck.Card
		for _, c := range playable {
			if Disruptive(c.Value) {
				disruptive = append(disruptive, c)
			}
		}
		if len(disruptive) > 0 {
			pool = disruptive
		}
	}

	pick := pool[m.rng.Intn(len(pool))]
	action := Action{Play: true, Card: pick}
	if pick.IsWild() {
		action.Color = m.dominantColor(pick)
	}
	return action
}

// dominantColor declares the color appearing most often in the bot's hand
// after removing the card about to be played, ties broken by the fixed
// precedence order. A hand of nothing but wilds declares the first color in
// that order. Assumes lock is held.
func (m *Match) dominantColor(playing deck.Card) deck.Color {
	counts := map[deck.Color]int{}
	skipped := false
	for _, c := range m.Hands[SideOpponent] {
		if !skipped && c == playing {
			skipped = true
			continue
		}
		if c.Color != deck.ColorWild {
			counts[c.Color]++
		}
	}

	best := deck.Precedence[0]
	for _, color := range deck.Precedence {
		if counts[color] > counts[best] {
			best = color
		}
	}
	return best
}
