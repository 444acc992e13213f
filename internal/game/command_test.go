// internal/game/command_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardfelt/uno/internal/deck"
)

func TestParseCommandBasics(t *testing.T) {
	cmd, err := ParseCommand("draw")
	require.NoError(t, err)
	assert.Equal(t, CommandDraw, cmd.Kind)

	cmd, err = ParseCommand("  FORFEIT ")
	require.NoError(t, err)
	assert.Equal(t, CommandForfeit, cmd.Kind)

	_, err = ParseCommand("")
	assert.Error(t, err)
	_, err = ParseCommand("dance")
	assert.Error(t, err)
}

func TestParseCommandPlay(t *testing.T) {
	cmd, err := ParseCommand("play Red 7")
	require.NoError(t, err)
	assert.Equal(t, CommandPlay, cmd.Kind)
	assert.Equal(t, deck.Card{Color: deck.Red, Value: 7}, cmd.Card)
	assert.False(t, cmd.HasColor)

	cmd, err = ParseCommand("play green skip")
	require.NoError(t, err)
	assert.Equal(t, deck.Card{Color: deck.Green, Value: deck.Skip}, cmd.Card)

	cmd, err = ParseCommand("play wild blue")
	require.NoError(t, err)
	assert.Equal(t, deck.Card{Color: deck.ColorWild, Value: deck.Wild}, cmd.Card)
	require.True(t, cmd.HasColor)
	assert.Equal(t, deck.Blue, cmd.Color)

	cmd, err = ParseCommand("play draw4 red")
	require.NoError(t, err)
	assert.Equal(t, deck.Card{Color: deck.ColorWild, Value: deck.Draw4}, cmd.Card)
	require.True(t, cmd.HasColor)
	assert.Equal(t, deck.Red, cmd.Color)

	// A wild with no declared color parses; the engine rejects it later
	// with the missing-color error.
	cmd, err = ParseCommand("play wild")
	require.NoError(t, err)
	assert.False(t, cmd.HasColor)

	_, err = ParseCommand("play")
	assert.Error(t, err)
	_, err = ParseCommand("play purple 7")
	assert.Error(t, err)
	_, err = ParseCommand("play red banana")
	assert.Error(t, err)
	_, err = ParseCommand("play red wild")
	assert.Error(t, err)
	_, err = ParseCommand("play wild purple")
	assert.Error(t, err)
}

// TestParseCommandRoundTrip feeds every card's literal rendering back
// through the parser.
func TestParseCommandRoundTrip(t *testing.T) {
	for _, c := range deck.NewFullDeck() {
		cmd, err := ParseCommand("play " + c.String())
		require.NoError(t, err, "rendering %q must parse", c.String())
		assert.Equal(t, c, cmd.Card)
	}
}
