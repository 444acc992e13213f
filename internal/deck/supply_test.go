// internal/deck/supply_test.go
package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSupply(seed int64) *Supply {
	return NewSupply(rand.New(rand.NewSource(seed)))
}

func TestDrawConserves(t *testing.T) {
	s := newTestSupply(1)
	drawn := s.Draw(14)
	require.Len(t, drawn, 14)
	assert.Equal(t, FullSize-14, s.StackSize())
}

func TestFlipStarterNeverWild(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := newTestSupply(seed)
		starter := s.FlipStarter()
		assert.False(t, starter.IsWild(), "seed %d flipped %s", seed, starter)
		top, ok := s.Top()
		require.True(t, ok)
		assert.Equal(t, starter, top)
		assert.Equal(t, FullSize, s.StackSize()+s.DiscardSize())
	}
}

// TestReshuffleKeepsTopAndLosesNothing drains the stack, forces a reshuffle,
// and checks the discard top survives while no card is lost or duplicated.
func TestReshuffleKeepsTopAndLosesNothing(t *testing.T) {
	s := newTestSupply(7)

	// Move most of the deck to the discard pile.
	for _, c := range s.Draw(FullSize - 5) {
		s.DiscardTop(c)
	}
	topBefore, ok := s.Top()
	require.True(t, ok)
	require.Equal(t, 5, s.StackSize())

	// Drawing past the stack triggers the reshuffle.
	drawn := s.Draw(10)
	require.Len(t, drawn, 10)

	topAfter, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, topBefore, topAfter, "discard top is excluded from the reshuffle")
	assert.Equal(t, FullSize, s.StackSize()+s.DiscardSize()+len(drawn))
}

func TestDrawExhaustionStopsSilently(t *testing.T) {
	s := newTestSupply(3)
	drawn := s.Draw(FullSize + 20)
	assert.Len(t, drawn, FullSize)
	assert.Zero(t, s.StackSize())
	assert.Zero(t, s.DiscardSize())

	assert.Empty(t, s.Draw(1))
}
