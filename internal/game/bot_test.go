// internal/game/bot_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardfelt/uno/internal/deck"
)

func TestBotDrawsWithNothingPlayable(t *testing.T) {
	m, _ := scriptedMatch(
		[]deck.Card{{Color: deck.Red, Value: 7}},
		[]deck.Card{{Color: deck.Green, Value: 5}, {Color: deck.Blue, Value: 2}},
		deck.Card{Color: deck.Red, Value: 3},
	)
	m.Mu.Lock()
	action := m.chooseAction()
	m.Mu.Unlock()
	assert.False(t, action.Play)
}

func TestBotPrefersDisruptive(t *testing.T) {
	// Both a plain match and a disruptive match are legal; baseline policy
	// must always lead with the disruptive one.
	hand := []deck.Card{
		{Color: deck.Red, Value: 7},
		{Color: deck.Red, Value: deck.Draw2},
		{Color: deck.Green, Value: 5},
	}
	for i := 0; i < 20; i++ {
		m, _ := scriptedMatch(nil, hand, deck.Card{Color: deck.Red, Value: 3})
		m.Mu.Lock()
		action := m.chooseAction()
		m.Mu.Unlock()
		require.True(t, action.Play)
		assert.Equal(t, deck.Card{Color: deck.Red, Value: deck.Draw2}, action.Card)
	}
}

func TestBotAdvantageSamplesAllLegalPlays(t *testing.T) {
	hand := []deck.Card{
		{Color: deck.Red, Value: 7},
		{Color: deck.Red, Value: deck.Draw2},
	}
	seen := map[deck.Card]bool{}
	m, _ := scriptedMatch(nil, hand, deck.Card{Color: deck.Red, Value: 3})
	m.Advantage = true
	for i := 0; i < 200; i++ {
		m.Mu.Lock()
		action := m.chooseAction()
		m.Mu.Unlock()
		require.True(t, action.Play)
		seen[action.Card] = true
	}
	assert.True(t, seen[deck.Card{Color: deck.Red, Value: 7}], "softened policy also plays plain cards")
	assert.True(t, seen[deck.Card{Color: deck.Red, Value: deck.Draw2}])
}

func TestBotWildColorIsDominant(t *testing.T) {
	wild := deck.Card{Color: deck.ColorWild, Value: deck.Wild}
	hand := []deck.Card{
		wild,
		{Color: deck.Blue, Value: 1},
		{Color: deck.Blue, Value: 2},
		{Color: deck.Blue, Value: 3},
		{Color: deck.Green, Value: 4},
	}
	m, _ := scriptedMatch(nil, hand, deck.Card{Color: deck.Red, Value: 9})

	// Blue/Green match neither color nor value against Red 9, so the wild
	// is the single legal play.
	m.Mu.Lock()
	action := m.chooseAction()
	m.Mu.Unlock()
	require.True(t, action.Play)
	require.Equal(t, wild, action.Card)
	assert.Equal(t, deck.Blue, action.Color)
}

func TestBotWildColorTieBreak(t *testing.T) {
	wild := deck.Card{Color: deck.ColorWild, Value: deck.Wild}

	t.Run("tie breaks by precedence", func(t *testing.T) {
		hand := []deck.Card{
			wild,
			{Color: deck.Green, Value: 4},
			{Color: deck.Yellow, Value: 6},
		}
		m, _ := scriptedMatch(nil, hand, deck.Card{Color: deck.Red, Value: 9})
		m.Mu.Lock()
		color := m.dominantColor(wild)
		m.Mu.Unlock()
		assert.Equal(t, deck.Yellow, color, "Yellow precedes Green")
	})

	t.Run("all wilds falls back to first precedence color", func(t *testing.T) {
		hand := []deck.Card{wild, {Color: deck.ColorWild, Value: deck.Draw4}}
		m, _ := scriptedMatch(nil, hand, deck.Card{Color: deck.Red, Value: 9})
		m.Mu.Lock()
		color := m.dominantColor(wild)
		m.Mu.Unlock()
		assert.Equal(t, deck.Red, color)
	})
}

func TestBotDeterministicGivenSeed(t *testing.T) {
	run := func() []string {
		m, ms := setupTestMatch(t, 77)
		for i := 0; i < 5 && m.Winner == nil; i++ {
			require.NoError(t, m.Draw(SidePlayer))
		}
		return ms.notices
	}
	assert.Equal(t, run(), run())
}
