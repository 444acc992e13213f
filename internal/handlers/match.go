// internal/handlers/match.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardfelt/uno/internal/database"
	"github.com/cardfelt/uno/internal/ledger"
)

type createMatchRequest struct {
	Wager int64 `json:"wager"`
}

// CreateMatchHandler starts a new wagered match for the authenticated user.
// The wager is debited up front; the response carries the match id and the
// first snapshot (7-card hand, flipped starter).
func CreateMatchHandler(s *MatchServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userID, err := requestUserID(r)
		if err != nil {
			http.Error(w, "authentication required", http.StatusForbidden)
			return
		}

		var req createMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}
		if req.Wager <= 0 {
			http.Error(w, "wager must be positive", http.StatusBadRequest)
			return
		}

		user, err := database.GetUserByID(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		m, err := s.CreateMatch(r.Context(), user, req.Wager)
		if err != nil {
			if errors.Is(err, ledger.ErrInsufficientBalance) {
				http.Error(w, err.Error(), http.StatusPaymentRequired)
				return
			}
			s.Logger.Errorf("failed to create match for %s: %v", userID, err)
			http.Error(w, "failed to create match", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"match_id": m.ID,
			"state":    m.CurrentSnapshot(),
		})
	}
}

