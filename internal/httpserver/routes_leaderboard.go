// internal/httpserver/routes_leaderboard.go
//
//   - GET  /leaderboard[?date=YYYY-MM-DD] → entries for the date (default: the
//     current game's date) plus whether the current game may still be submitted.
//   - POST /leaderboard {"name":"..."}    → add the current win.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordly/internal/game"
	"github.com/robalobadob/wordly/internal/leaderboard"
)

func (s *Server) mountLeaderboard(r chi.Router) {
	r.Get("/leaderboard", s.handleLeaderboard)
	r.Post("/leaderboard", s.handleAddEntry)
}

type lbRow struct {
	Rank int `json:"rank"`
	leaderboard.Entry
	Clock string `json:"clock"` // m:ss
}

type lbRes struct {
	Date      string  `json:"date"`
	Entries   []lbRow `json:"entries"`
	CanSubmit bool    `json:"canSubmit"`
}

// canSubmit reports whether g is a win not yet on the board.
func canSubmit(g *game.Game, b leaderboard.Board) bool {
	return g.Status == game.StatusWon && !b.HasEntry(g)
}

func boardView(date string, g *game.Game, b leaderboard.Board) lbRes {
	entries := b.ForDate(date)
	rows := make([]lbRow, len(entries))
	for i, e := range entries {
		rows[i] = lbRow{Rank: i + 1, Entry: e, Clock: leaderboard.FormatTime(e.Time)}
	}
	return lbRes{Date: date, Entries: rows, CanSubmit: canSubmit(g, b)}
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g, b := s.sess.Game(), s.sess.Leaderboard()
	s.mu.Unlock()

	date := r.URL.Query().Get("date")
	if date == "" {
		date = g.Date
	}
	writeJSON(w, http.StatusOK, boardView(date, g, b))
}

type addEntryReq struct {
	Name string `json:"name"`
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	name, err := leaderboard.ValidateName(req.Name)
	if err != nil {
		code := "invalid_name"
		if errors.Is(err, leaderboard.ErrNameTooLong) {
			code = "name_too_long"
		}
		writeError(w, http.StatusBadRequest, code)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, b := s.sess.Game(), s.sess.Leaderboard()
	switch {
	case g.Status != game.StatusWon:
		writeError(w, http.StatusConflict, "not_won")
		return
	case b.HasEntry(g):
		writeError(w, http.StatusConflict, "already_submitted")
		return
	}
	if !s.sess.AddToLeaderboard(name) {
		log.Warn().Str("game", g.ID).Msg("leaderboard insert ignored")
		writeError(w, http.StatusConflict, "not_won")
		return
	}
	writeJSON(w, http.StatusOK, boardView(g.Date, s.sess.Game(), s.sess.Leaderboard()))
}
