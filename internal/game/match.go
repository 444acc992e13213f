// internal/game/match.go
package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cardfelt/uno/internal/cache"
	"github.com/cardfelt/uno/internal/deck"
)

// Side identifies one of the two seats in a match.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SideOpponent {
		return "opponent"
	}
	return "player"
}

// Other returns the opposite seat.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// startingHandSize is dealt to each side when a match is created.
const startingHandSize = 7

// botTurnCap bounds the number of bot actions driven by a single external
// command. Exceeding it means the effect table produced an endless chain of
// extra turns, which is an internal fault, not a user error.
const botTurnCap = 32

// Result describes a finished match for settlement and presentation.
type Result struct {
	MatchID       uuid.UUID
	PlayerID      uuid.UUID
	Winner        Side
	Wager         int64
	InternalError bool
}

// Match holds the entire authoritative state for one human-vs-bot game.
// All mutation goes through Play, Draw and Forfeit, each of which takes the
// match mutex, so overlapping commands on the same player identity cannot
// corrupt the hand/pile invariants.
type Match struct {
	ID       uuid.UUID
	PlayerID uuid.UUID
	Wager    int64

	// Advantage softens the bot when the human side holds a mitigating
	// perk: the bot picks uniformly among legal plays instead of leading
	// with disruptive cards.
	Advantage bool

	Supply       *deck.Supply
	Hands        [2][]deck.Card
	CurrentColor deck.Color
	CurrentValue deck.Value
	Turn         Side
	Winner       *Side

	Mu       sync.Mutex
	rng      *rand.Rand
	lastSeen time.Time

	// SnapshotFn receives a fresh state snapshot after every successful
	// mutation. If nil, no snapshots are delivered.
	SnapshotFn func(Snapshot)

	// NotifyFn receives transient free-text notices (bot moves, draw and
	// skip announcements). Delivery must not block game-state mutation;
	// the registered sink is responsible for buffering.
	NotifyFn func(string)

	// OnMatchEnd fires exactly once, on the Active -> Finished transition.
	OnMatchEnd func(Result)
	settled    bool

	actionIndex int
}

// NewMatch deals a fresh match for the given player identity: 7 cards per
// side from a shuffled full deck, then a non-wild starter flip.
func NewMatch(playerID uuid.UUID, wager int64, advantage bool, rng *rand.Rand) *Match {
	m := &Match{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Wager:     wager,
		Advantage: advantage,
		Supply:    deck.NewSupply(rng),
		Turn:      SidePlayer,
		rng:       rng,
		lastSeen:  time.Now(),
	}
	m.Hands[SidePlayer] = m.Supply.Draw(startingHandSize)
	m.Hands[SideOpponent] = m.Supply.Draw(startingHandSize)

	starter := m.Supply.FlipStarter()
	m.CurrentColor = starter.Color
	m.CurrentValue = starter.Value

	m.logAction("match_create", map[string]interface{}{
		"wager":   wager,
		"starter": starter.String(),
	})
	return m
}

// Play validates and applies a card played by side, then drives the bot
// until control returns to the human or the match ends.
func (m *Match) Play(side Side, card deck.Card, chosenColor deck.Color, hasColor bool) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.Winner != nil {
		return ErrMatchAlreadyEnded
	}
	if m.Turn != side {
		return ErrNotYourTurn
	}
	if m.handIndex(side, card) < 0 {
		return ErrCardNotHeld
	}
	if !Playable(card, m.CurrentColor, m.CurrentValue) {
		return ErrIllegalPlay
	}
	if card.IsWild() && !hasColor {
		return ErrMissingColorChoice
	}

	m.touch()
	m.applyPlay(side, card, chosenColor)
	if m.Winner == nil {
		m.driveOpponent()
	}
	m.fireSnapshot()
	return nil
}

// Draw validates and pulls exactly one card into side's hand. The drawn
// card grants no immediate play; the turn passes to the opposite side.
func (m *Match) Draw(side Side) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.Winner != nil {
		return ErrMatchAlreadyEnded
	}
	if m.Turn != side {
		return ErrNotYourTurn
	}

	m.touch()
	m.Hands[side] = append(m.Hands[side], m.Supply.Draw(1)...)
	m.Turn = side.Other()
	m.logAction("draw", map[string]interface{}{"side": side.String()})
	m.notify(side.String() + " drew a card")

	m.driveOpponent()
	m.fireSnapshot()
	return nil
}

// Forfeit ends the match unconditionally in favor of the opposite side,
// regardless of whose turn it is.
func (m *Match) Forfeit(side Side) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.Winner != nil {
		return ErrMatchAlreadyEnded
	}
	m.touch()
	winner := side.Other()
	m.Winner = &winner
	m.logAction("forfeit", map[string]interface{}{"side": side.String()})
	m.finish(false)
	m.fireSnapshot()
	return nil
}

// driveOpponent runs bot turns until control stabilizes on the human side
// or the match ends, bounded by botTurnCap. Assumes lock is held.
func (m *Match) driveOpponent() {
	for i := 0; i < botTurnCap; i++ {
		if m.Winner != nil || m.Turn != SideOpponent {
			return
		}
		action := m.chooseAction()
		if !action.Play {
			m.Hands[SideOpponent] = append(m.Hands[SideOpponent], m.Supply.Draw(1)...)
			m.Turn = SidePlayer
			m.logAction("bot_draw", nil)
			m.notify("opponent drew a card")
			continue
		}
		m.applyPlay(SideOpponent, action.Card, action.Color)
	}

	if m.Winner == nil && m.Turn == SideOpponent {
		// Rule-table inconsistency: a special rank granted extra turns
		// forever. Force the match over in the human's favor and settle
		// it as an internal error rather than retrying.
		log.Printf("match %s: bot chain exceeded %d actions, force-forfeiting to player", m.ID, botTurnCap)
		winner := SidePlayer
		m.Winner = &winner
		m.logAction("bot_chain_overflow", nil)
		m.finish(true)
	}
}

// handIndex locates a card in side's hand, -1 if absent. Assumes lock is held.
func (m *Match) handIndex(side Side, card deck.Card) int {
	for i, c := range m.Hands[side] {
		if c == card {
			return i
		}
	}
	return -1
}

// touch records activity for the idle reaper. Assumes lock is held.
func (m *Match) touch() {
	m.lastSeen = time.Now()
}

// IdleSince returns the time of the last accepted command.
func (m *Match) IdleSince() time.Time {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.lastSeen
}

// finish reports settlement exactly once. Assumes lock is held and Winner set.
func (m *Match) finish(internalErr bool) {
	if m.settled || m.Winner == nil {
		return
	}
	m.settled = true
	m.logAction("match_end", map[string]interface{}{
		"winner":        m.Winner.String(),
		"internalError": internalErr,
	})
	if m.OnMatchEnd != nil {
		m.OnMatchEnd(Result{
			MatchID:       m.ID,
			PlayerID:      m.PlayerID,
			Winner:        *m.Winner,
			Wager:         m.Wager,
			InternalError: internalErr,
		})
	}
}

// notify hands a transient notice to the sink. Assumes lock is held.
func (m *Match) notify(text string) {
	if m.NotifyFn != nil {
		m.NotifyFn(text)
	}
}

// fireSnapshot delivers the current state to the sink. Assumes lock is held.
func (m *Match) fireSnapshot() {
	if m.SnapshotFn != nil {
		m.SnapshotFn(m.snapshotLocked())
	}
}

// logAction pushes an action record onto the historian queue, if connected.
// Assumes lock is held.
func (m *Match) logAction(actionType string, payload map[string]interface{}) {
	m.actionIndex++
	if cache.Rdb == nil {
		return
	}
	rec := cache.MatchActionRecord{
		MatchID:       m.ID,
		ActionIndex:   m.actionIndex,
		PlayerID:      m.PlayerID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	go func() {
		if err := cache.PublishMatchAction(rec); err != nil {
			log.Printf("failed to publish match action %s: %v", actionType, err)
		}
	}()
}
