// internal/deck/supply.go
package deck

import (
	"log"
	"math/rand"
)

// Supply owns the finite card pool for a single match: a face-down draw
// stack (top at the end of the slice) and a face-up discard pile (top at
// the end). When the stack runs dry, every discard except the current top
// card is shuffled back in. The rand source is injected so shuffles are
// reproducible in tests.
type Supply struct {
	rng     *rand.Rand
	stack   []Card
	discard []Card
}

// NewSupply builds a freshly shuffled full deck over the given source.
func NewSupply(rng *rand.Rand) *Supply {
	s := &Supply{
		rng:   rng,
		stack: NewFullDeck(),
	}
	s.shuffleStack()
	return s
}

func (s *Supply) shuffleStack() {
	s.rng.Shuffle(len(s.stack), func(i, j int) {
		s.stack[i], s.stack[j] = s.stack[j], s.stack[i]
	})
}

// Draw removes up to n cards from the top of the stack, reshuffling from
// the discard pile as needed. It returns fewer than n only when the entire
// supply is exhausted; that cannot happen in a standard two-hand match, so
// it stops silently rather than failing.
func (s *Supply) Draw(n int) []Card {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		if len(s.stack) == 0 {
			s.reshuffleFromDiscard()
		}
		if len(s.stack) == 0 {
			log.Printf("supply exhausted: drew %d of %d requested", len(cards), n)
			break
		}
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		cards = append(cards, top)
	}
	return cards
}

// reshuffleFromDiscard moves all discards except the top card back into the
// stack and shuffles. The top card stays so the matchable signature's source
// never changes under the players.
func (s *Supply) reshuffleFromDiscard() {
	if len(s.discard) <= 1 {
		return
	}
	keep := s.discard[len(s.discard)-1]
	s.stack = append(s.stack, s.discard[:len(s.discard)-1]...)
	s.discard = []Card{keep}
	s.shuffleStack()
	log.Printf("reshuffled discard pile into stack, %d card(s) now drawable", len(s.stack))
}

// DiscardTop pushes a played card onto the discard pile.
func (s *Supply) DiscardTop(c Card) {
	s.discard = append(s.discard, c)
}

// Top returns the current top of the discard pile.
func (s *Supply) Top() (Card, bool) {
	if len(s.discard) == 0 {
		return Card{}, false
	}
	return s.discard[len(s.discard)-1], true
}

// FlipStarter turns the first discard. Wilds flipped here go back into the
// stack and the stack is reshuffled, repeated until a non-wild surfaces.
func (s *Supply) FlipStarter() Card {
	for {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if !top.IsWild() {
			s.discard = append(s.discard, top)
			return top
		}
		s.stack = append(s.stack, top)
		s.shuffleStack()
	}
}

// StackSize returns the number of face-down cards left to draw.
func (s *Supply) StackSize() int {
	return len(s.stack)
}

// DiscardSize returns the number of cards in the discard pile.
func (s *Supply) DiscardSize() int {
	return len(s.discard)
}
