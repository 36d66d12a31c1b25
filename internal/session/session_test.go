package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordly/internal/game"
	"github.com/robalobadob/wordly/internal/leaderboard"
	"github.com/robalobadob/wordly/internal/stats"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
}

func fixed(word string) Picker { return func(string) string { return word } }

func guess(t *testing.T, s *Session, w string) {
	t.Helper()
	for _, r := range w {
		require.True(t, s.AddLetter(string(r)))
	}
	require.True(t, s.SubmitGuess())
}

func TestNewUsesTodaysWord(t *testing.T) {
	s := New(WithClock(newClock()))
	g := s.Game()
	assert.Equal(t, "2026-10-14", g.Date)
	assert.Equal(t, "SPOON", g.Solution)
	assert.Equal(t, game.StatusPlaying, g.Status)
}

func TestWinScenario(t *testing.T) {
	clk := newClock()
	s := New(WithClock(clk), WithPicker(fixed("APPLE")))

	guess(t, s, "ARISE")
	row := s.Game().Rows[0]
	assert.Equal(t, game.StateCorrect, row.Cells[0].State)
	assert.Equal(t, game.StateAbsent, row.Cells[1].State)
	assert.True(t, row.Submitted)

	clk.Advance(42 * time.Second)
	guess(t, s, "APPLE")

	g := s.Game()
	assert.Equal(t, game.StatusWon, g.Status)
	assert.Equal(t, 2, g.CurrentRowIndex)
	assert.Equal(t, clk.Now(), g.EndTime)

	st := s.Stats()
	assert.Equal(t, 1, st.GamesPlayed)
	assert.Equal(t, 1, st.GamesWon)
	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, [stats.Buckets]int{0, 1, 0, 0, 0, 0}, st.GuessDistribution)
	assert.Equal(t, "2026-10-14", st.LastPlayed)

	assert.False(t, s.AddLetter("A"))
	assert.False(t, s.SubmitGuess())
}

func TestLossScenario(t *testing.T) {
	s := New(WithClock(newClock()), WithPicker(fixed("APPLE")))
	for i := 0; i < game.MaxGuesses; i++ {
		guess(t, s, "GHOST")
	}

	g := s.Game()
	assert.Equal(t, game.StatusLost, g.Status)
	assert.Equal(t, game.MaxGuesses, g.CurrentRowIndex)
	assert.False(t, s.AddLetter("A"), "no 7th row")

	st := s.Stats()
	assert.Equal(t, 1, st.GamesPlayed)
	assert.Equal(t, 0, st.GamesWon)
	assert.Equal(t, 0, st.CurrentStreak)
}

func TestSameDayReplayDoesNotDoubleCountStreak(t *testing.T) {
	s := New(WithClock(newClock()), WithPicker(fixed("APPLE")))
	guess(t, s, "APPLE")
	require.True(t, s.ResetGame())
	guess(t, s, "APPLE")

	st := s.Stats()
	assert.Equal(t, 2, st.GamesWon)
	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 1, st.MaxStreak)
}

func TestLossKeepsMaxStreak(t *testing.T) {
	clk := newClock()
	s := New(WithClock(clk), WithPicker(fixed("APPLE")))
	guess(t, s, "APPLE")

	clk.Advance(24 * time.Hour)
	require.True(t, s.ResetGame())
	guess(t, s, "APPLE")
	require.Equal(t, 2, s.Stats().CurrentStreak)

	clk.Advance(24 * time.Hour)
	require.True(t, s.ResetGame())
	for i := 0; i < game.MaxGuesses; i++ {
		guess(t, s, "GHOST")
	}
	assert.Equal(t, 0, s.Stats().CurrentStreak)
	assert.Equal(t, 2, s.Stats().MaxStreak)
}

func TestResetGame(t *testing.T) {
	clk := newClock()
	s := New(WithClock(clk), WithPicker(fixed("APPLE")))
	id := s.Game().ID

	require.True(t, s.AddLetter("a"))
	assert.False(t, s.ResetGame(), "in-progress game for today is kept")
	assert.Equal(t, id, s.Game().ID)
	assert.Equal(t, "A", s.Game().Rows[0].Cells[0].Letter)

	clk.Advance(24 * time.Hour)
	assert.True(t, s.ResetGame(), "new day")
	g := s.Game()
	assert.NotEqual(t, id, g.ID)
	assert.Equal(t, "2026-10-15", g.Date)
	assert.Equal(t, clk.Now(), g.StartTime)
	assert.Equal(t, "", g.Rows[0].Cells[0].Letter)
}

func TestRestoreFromSnapshot(t *testing.T) {
	clk := newClock()
	first := New(WithClock(clk), WithPicker(fixed("APPLE")))
	guess(t, first, "ARISE")
	snap := first.Snapshot()

	same := New(WithClock(clk), WithPicker(fixed("OTHER")), WithSnapshot(snap))
	assert.Equal(t, snap.Game.ID, same.Game().ID)
	assert.Equal(t, 1, same.Game().CurrentRowIndex)

	clk.Advance(24 * time.Hour)
	snap.Stats.GamesPlayed = 7
	next := New(WithClock(clk), WithPicker(fixed("GRAPE")), WithSnapshot(snap))
	assert.Equal(t, "2026-10-15", next.Game().Date)
	assert.Equal(t, "GRAPE", next.Game().Solution)
	assert.Equal(t, 7, next.Stats().GamesPlayed, "stats survive a day change")
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := New(WithClock(newClock()), WithPicker(fixed("APPLE")))
	require.True(t, s.AddLetter("a"))

	g := s.Game()
	g.Rows[0].Cells[0].Letter = "Z"
	g.Keyboard["Z"] = game.StateCorrect
	assert.Equal(t, "A", s.Game().Rows[0].Cells[0].Letter)
	assert.Empty(t, s.Game().Keyboard)
}

func TestAddToLeaderboard(t *testing.T) {
	clk := newClock()
	s := New(WithClock(clk), WithPicker(fixed("APPLE")))
	assert.False(t, s.AddToLeaderboard("ana"), "game not won")

	guess(t, s, "ARISE")
	clk.Advance(75 * time.Second)
	guess(t, s, "APPLE")

	require.True(t, s.AddToLeaderboard("ana"))
	assert.Equal(t, leaderboard.Board{{Name: "ana", Guesses: 2, Time: 75, Date: "2026-10-14"}}, s.Leaderboard())
}

func TestSubscribe(t *testing.T) {
	s := New(WithClock(newClock()), WithPicker(fixed("APPLE")))

	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	require.True(t, s.AddLetter("a"))
	assert.False(t, s.SubmitGuess(), "incomplete row")
	assert.False(t, s.ResetGame())
	require.Len(t, got, 1, "only state changes notify")
	assert.Equal(t, "A", got[0].Game.Rows[0].Cells[0].Letter)

	got[0].Game.Rows[0].Cells[0].Letter = "Q"
	assert.Equal(t, "A", s.Game().Rows[0].Cells[0].Letter)

	unsubscribe()
	require.True(t, s.RemoveLetter())
	assert.Len(t, got, 1)
}

func TestGuessFilter(t *testing.T) {
	s := New(
		WithClock(newClock()),
		WithPicker(fixed("APPLE")),
		WithGuessFilter(func(w string) bool { return w != "QQQQQ" }),
	)
	for i := 0; i < 5; i++ {
		require.True(t, s.AddLetter("q"))
	}
	assert.False(t, s.SubmitGuess())
	assert.Equal(t, 0, s.Game().CurrentRowIndex)
}
