// internal/session/session.go
//
// Owned state for one player installation: the current game, the player's
// statistics and the daily leaderboard.
//
// The presentation layer reads snapshots (deep copies) and dispatches intents:
// AddLetter, RemoveLetter, SubmitGuess, ResetGame, AddToLeaderboard. Intents
// that change state notify subscribers synchronously, in subscription order,
// before returning.
//
// A Session is not safe for concurrent use. Callers serialize intents.

package session

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordly/internal/daily"
	"github.com/robalobadob/wordly/internal/game"
	"github.com/robalobadob/wordly/internal/leaderboard"
	"github.com/robalobadob/wordly/internal/stats"
	"github.com/robalobadob/wordly/internal/words"
)

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// Picker maps a date key to that day's solution.
type Picker func(date string) string

// Snapshot is a complete copy of session state.
type Snapshot struct {
	Game        *game.Game        `json:"game"`
	Stats       stats.Stats       `json:"stats"`
	Leaderboard leaderboard.Board `json:"leaderboard"`
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Game:        s.Game.Clone(),
		Stats:       s.Stats,
		Leaderboard: slices.Clone(s.Leaderboard),
	}
}

// Listener receives a snapshot after every state change.
type Listener func(Snapshot)

type subscription struct{ fn Listener }

// Session is the state machine host.
type Session struct {
	clock  Clock
	pick   Picker
	accept func(string) bool

	game  *game.Game
	stats stats.Stats
	board leaderboard.Board

	subs []*subscription
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the time source.
func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

// WithPicker overrides daily word selection.
func WithPicker(p Picker) Option { return func(s *Session) { s.pick = p } }

// WithSnapshot restores previously persisted state.
func WithSnapshot(snap Snapshot) Option {
	return func(s *Session) {
		c := snap.Clone()
		s.game, s.stats, s.board = c.Game, c.Stats, c.Leaderboard
	}
}

// WithGuessFilter makes SubmitGuess a no-op for words accept rejects.
func WithGuessFilter(accept func(string) bool) Option {
	return func(s *Session) { s.accept = accept }
}

// New builds a Session. Without a restored game, or when the restored game
// belongs to another day, a fresh game for today is created.
func New(opts ...Option) *Session {
	s := &Session{clock: SystemClock, pick: words.WordOfTheDay}
	for _, o := range opts {
		o(s)
	}
	if s.game == nil || s.game.Date != s.today() {
		s.game = s.newGame()
	}
	return s
}

func (s *Session) today() string { return daily.DateKey(s.clock.Now()) }

func (s *Session) newGame() *game.Game {
	now := s.clock.Now()
	date := daily.DateKey(now)
	g := game.New(s.pick(date), date, now)
	log.Debug().Str("date", date).Str("game", g.ID).Msg("new game")
	return g
}

// Today returns the current date key.
func (s *Session) Today() string { return s.today() }

// Game returns a copy of the current game.
func (s *Session) Game() *game.Game { return s.game.Clone() }

// Stats returns the current statistics.
func (s *Session) Stats() stats.Stats { return s.stats }

// Leaderboard returns a copy of the leaderboard.
func (s *Session) Leaderboard() leaderboard.Board { return slices.Clone(s.board) }

// Snapshot returns a copy of all state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Game: s.game, Stats: s.stats, Leaderboard: s.board}.Clone()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	sub := &subscription{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(x *subscription) bool { return x == sub })
	}
}

func (s *Session) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(snap.Clone())
	}
}

// AddLetter types ch into the current row.
func (s *Session) AddLetter(ch string) bool {
	if !s.game.AddLetter(ch) {
		return false
	}
	s.notify()
	return true
}

// RemoveLetter deletes the last typed letter of the current row.
func (s *Session) RemoveLetter() bool {
	if !s.game.RemoveLetter() {
		return false
	}
	s.notify()
	return true
}

// SubmitGuess scores the current row and, when the game ends, records the
// result in the statistics.
func (s *Session) SubmitGuess() bool {
	if s.accept != nil {
		if w, ok := s.game.Pending(); ok && !s.accept(w) {
			log.Debug().Str("guess", w).Msg("guess rejected by filter")
			return false
		}
	}

	now := s.clock.Now()
	res, ok := s.game.Submit(now)
	if !ok {
		return false
	}

	today := daily.DateKey(now)
	switch res.Status {
	case game.StatusWon:
		s.stats.RecordWin(res.Row, today)
		log.Info().Str("date", s.game.Date).Int("guesses", res.Row+1).
			Dur("elapsed", s.game.Elapsed()).Msg("game won")
	case game.StatusLost:
		s.stats.RecordLoss(today)
		log.Info().Str("date", s.game.Date).Msg("game lost")
	}
	s.notify()
	return true
}

// ResetGame starts a fresh game if the current one is finished or belongs to
// another day. An in-progress game for today is never discarded.
func (s *Session) ResetGame() bool {
	if s.game.Date == s.today() && s.game.Status == game.StatusPlaying {
		return false
	}
	s.game = s.newGame()
	log.Debug().Str("date", s.game.Date).Str("game", s.game.ID).Msg("game reset")
	s.notify()
	return true
}

// AddToLeaderboard records the current game under name if it is a win.
// Names are validated by the caller, and so is duplicate submission.
func (s *Session) AddToLeaderboard(name string) bool {
	if !s.board.Add(name, s.game) {
		return false
	}
	log.Info().Str("name", name).Str("date", s.game.Date).Msg("leaderboard entry added")
	s.notify()
	return true
}
