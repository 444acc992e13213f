// internal/handlers/match_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cardfelt/uno/internal/game"
	"github.com/cardfelt/uno/internal/middleware"
)

// wsFrame is the outbound message envelope. Snapshots carry the full state
// view; notices and errors carry free text.
type wsFrame struct {
	Type    string         `json:"type"`
	State   *game.Snapshot `json:"state,omitempty"`
	Message string         `json:"message,omitempty"`
}

// MatchWSHandler upgrades to WebSocket, attaches the connection as the
// match's presentation sink, and runs the text-command read loop. Inbound
// frames are free-text commands ("play red 7", "draw", "forfeit"); outbound
// frames are snapshots, notices and rejection messages.
func MatchWSHandler(logger *logrus.Logger, s *MatchServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requestUserID(r)
		if err != nil {
			http.Error(w, "authentication required", http.StatusForbidden)
			return
		}

		m, err := s.Store.Get(userID)
		if err != nil {
			http.Error(w, game.ErrNoActiveMatch.Error(), http.StatusNotFound)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"match"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for match %s: %v", m.ID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exit")

		if c.Subprotocol() != "match" {
			c.Close(websocket.StatusPolicyViolation, "Client must use the 'match' subprotocol.")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Outbound frames go through a buffered queue so engine mutation
		// never blocks on a slow client; a full queue drops the frame and
		// the next snapshot supersedes it.
		outbound := make(chan wsFrame, 64)
		send := func(f wsFrame) {
			select {
			case outbound <- f:
			default:
				logger.Warnf("dropping frame for match %s: outbound queue full", m.ID)
			}
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case f := <-outbound:
					data, err := json.Marshal(f)
					if err != nil {
						logger.Warnf("failed to marshal frame: %v", err)
						continue
					}
					if err := c.Write(ctx, websocket.MessageText, data); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		attachSink(m, send)
		defer detachSink(m)

		// Initial sync so the client sees the current state immediately.
		snap := m.CurrentSnapshot()
		send(wsFrame{Type: "snapshot", State: &snap})

		readErr := readCommands(ctx, c, m)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, readErr)
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// attachSink registers the connection's send function as the match sink.
func attachSink(m *game.Match, send func(wsFrame)) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.SnapshotFn = func(snap game.Snapshot) {
		send(wsFrame{Type: "snapshot", State: &snap})
	}
	m.NotifyFn = func(text string) {
		send(wsFrame{Type: "notice", Message: text})
	}
}

func detachSink(m *game.Match) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.SnapshotFn = nil
	m.NotifyFn = nil
}

// readCommands parses and dispatches inbound text until the connection or
// context dies. Rejections are relayed verbatim and never end the loop.
func readCommands(ctx context.Context, c *websocket.Conn, m *game.Match) error {
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return err
		}

		cmd, err := game.ParseCommand(string(data))
		if err == nil {
			err = dispatch(m, cmd)
		}
		if err != nil {
			frame, merr := json.Marshal(wsFrame{Type: "error", Message: err.Error()})
			if merr != nil {
				continue
			}
			if werr := c.Write(ctx, websocket.MessageText, frame); werr != nil {
				return werr
			}
		}
	}
}

func dispatch(m *game.Match, cmd game.Command) error {
	switch cmd.Kind {
	case game.CommandPlay:
		return m.Play(game.SidePlayer, cmd.Card, cmd.Color, cmd.HasColor)
	case game.CommandDraw:
		return m.Draw(game.SidePlayer)
	case game.CommandForfeit:
		return m.Forfeit(game.SidePlayer)
	}
	return nil
}
