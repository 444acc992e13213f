// internal/handlers/match_server.go
package handlers

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cardfelt/uno/internal/game"
	"github.com/cardfelt/uno/internal/ledger"
	"github.com/cardfelt/uno/internal/models"
)

// MatchServer owns the match registry and the wager settlement wiring. It
// is the only component that creates matches or observes them finishing.
type MatchServer struct {
	Store  *game.MatchStore
	Ledger ledger.Ledger
	Logger *logrus.Logger
}

func NewMatchServer(l ledger.Ledger, logger *logrus.Logger) *MatchServer {
	return &MatchServer{
		Store:  game.NewMatchStore(),
		Ledger: l,
		Logger: logger,
	}
}

// CreateMatch debits the wager and registers a fresh match for the user. A
// live prior match is evicted by the registry swap and forfeited here, so
// every debited match is settled exactly once even when creates overlap.
func (s *MatchServer) CreateMatch(ctx context.Context, user *models.User, wager int64) (*game.Match, error) {
	if err := s.Ledger.Debit(ctx, user.ID, wager); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m := game.NewMatch(user.ID, wager, user.HasCharm, rng)
	m.OnMatchEnd = s.settle

	if old := s.Store.Swap(m); old != nil {
		// An already-finished evicted match settled itself before the swap.
		if err := old.Forfeit(game.SidePlayer); err == nil {
			s.Logger.WithFields(logrus.Fields{
				"match":  old.ID,
				"player": user.ID,
			}).Info("evicted prior match")
		}
	}

	s.Logger.WithFields(logrus.Fields{
		"match":  m.ID,
		"player": user.ID,
		"wager":  wager,
	}).Info("match created")
	return m, nil
}

// settle is invoked by the engine exactly once per match, on the
// Active -> Finished edge. A player win pays 2x the wager; a loss pays
// nothing since the wager was already debited at creation; an internal
// engine fault refunds the wager instead of paying out.
func (s *MatchServer) settle(res game.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var payout int64
	switch {
	case res.InternalError:
		payout = res.Wager
	case res.Winner == game.SidePlayer:
		payout = 2 * res.Wager
	}
	if payout > 0 {
		if err := s.Ledger.Credit(ctx, res.PlayerID, payout); err != nil {
			s.Logger.WithFields(logrus.Fields{
				"match":  res.MatchID,
				"player": res.PlayerID,
				"payout": payout,
			}).Errorf("failed to credit settlement: %v", err)
		}
	}
	s.Store.Release(res.PlayerID, res.MatchID)

	s.Logger.WithFields(logrus.Fields{
		"match":         res.MatchID,
		"player":        res.PlayerID,
		"winner":        res.Winner.String(),
		"payout":        payout,
		"internalError": res.InternalError,
	}).Info("match settled")
}

// RunIdleReaper forfeits matches abandoned past maxIdle. Blocks until ctx
// is cancelled; run it on its own goroutine.
func (s *MatchServer) RunIdleReaper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, m := range s.Store.All() {
				if time.Since(m.IdleSince()) < maxIdle {
					continue
				}
				s.Logger.WithField("match", m.ID).Info("reaping idle match")
				if err := m.Forfeit(game.SidePlayer); err != nil {
					s.Store.Release(m.PlayerID, m.ID)
				}
			}
		}
	}
}
