// internal/httpserver/routes_game.go
//
// Game routes:
//   - GET  /game          → current board
//   - POST /game/letter   → {"letter":"a"}
//   - POST /game/delete   → remove last letter
//   - POST /game/submit   → score the current row
//   - POST /game/reset    → new game if finished or stale
//   - GET  /stats         → statistics
//   - GET  /share         → share text (finished games only)
//   - GET  /countdown     → time until the next puzzle
//   - GET  /words/{word}  → vocabulary membership
//
// Intent responses carry "changed": false when the intent was ignored.

package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordly/internal/daily"
	"github.com/robalobadob/wordly/internal/game"
	"github.com/robalobadob/wordly/internal/stats"
)

func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Get("/", s.handleGame)
		r.Post("/letter", s.handleLetter)
		r.Post("/delete", s.intent(func() bool { return s.sess.RemoveLetter() }))
		r.Post("/submit", s.intent(func() bool { return s.sess.SubmitGuess() }))
		r.Post("/reset", s.intent(func() bool { return s.sess.ResetGame() }))
	})
	r.Get("/stats", s.handleStats)
	r.Get("/share", s.handleShare)
	r.Get("/countdown", s.handleCountdown)
	r.Get("/words/{word}", s.handleWord)
}

// gameView is the board as the presentation layer sees it. The solution is
// only filled in once the game is over.
type gameView struct {
	ID              string                    `json:"id"`
	Date            string                    `json:"date"`
	Rows            [game.MaxGuesses]game.Row `json:"rows"`
	CurrentRowIndex int                       `json:"currentRowIndex"`
	Status          game.Status               `json:"gameStatus"`
	Keyboard        map[string]game.CellState `json:"keyboardStatus"`
	StartTime       time.Time                 `json:"startTime"`
	EndTime         *time.Time                `json:"endTime,omitempty"`
	ElapsedSeconds  int                       `json:"elapsedSeconds,omitempty"`
	Solution        string                    `json:"solution,omitempty"`
}

func viewOf(g *game.Game) gameView {
	v := gameView{
		ID:              g.ID,
		Date:            g.Date,
		Rows:            g.Rows,
		CurrentRowIndex: g.CurrentRowIndex,
		Status:          g.Status,
		Keyboard:        g.Keyboard,
		StartTime:       g.StartTime,
	}
	if g.Status.Over() {
		end := g.EndTime
		v.EndTime = &end
		v.ElapsedSeconds = int(g.Elapsed() / time.Second)
		v.Solution = g.Solution
	}
	return v
}

type intentRes struct {
	Changed bool     `json:"changed"`
	Game    gameView `json:"game"`
}

// apply runs fn under the session lock and replies with the resulting board.
func (s *Server) apply(w http.ResponseWriter, fn func() bool) {
	s.mu.Lock()
	changed := fn()
	g := s.sess.Game()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, intentRes{Changed: changed, Game: viewOf(g)})
}

func (s *Server) intent(fn func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { s.apply(w, fn) }
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g := s.sess.Game()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, viewOf(g))
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.apply(w, func() bool { return s.sess.AddLetter(req.Letter) })
}

type statsRes struct {
	stats.Stats
	WinPercentage int `json:"winPercentage"`
	MaxBucket     int `json:"maxBucket"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := s.sess.Stats()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, statsRes{Stats: st, WinPercentage: st.WinPercentage(), MaxBucket: st.MaxBucket()})
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g := s.sess.Game()
	s.mu.Unlock()
	if !g.Status.Over() {
		writeError(w, http.StatusConflict, "game_in_progress")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(game.ShareText(g, s.shareURL)))
}

type countdownRes struct {
	Seconds int    `json:"seconds"`
	Clock   string `json:"clock"` // HH:MM:SS
}

func (s *Server) handleCountdown(w http.ResponseWriter, r *http.Request) {
	left := daily.UntilNext(s.clock.Now())
	secs := int(left / time.Second)
	writeJSON(w, http.StatusOK, countdownRes{
		Seconds: secs,
		Clock:   fmt.Sprintf("%02d:%02d:%02d", secs/3600%24, secs/60%60, secs%60),
	})
}

type wordRes struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	word := strings.ToUpper(chi.URLParam(r, "word"))
	writeJSON(w, http.StatusOK, wordRes{Word: word, Valid: s.words.IsValidWord(word)})
}
