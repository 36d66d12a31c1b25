// internal/game/engine.go
//
// Row/turn state machine for a single daily game.
// Responsibilities:
//   - Create games with a pre-allocated 6x5 empty board.
//   - Fill and clear cells of the current row.
//   - Score a full row, upgrade the keyboard map, and detect won/lost.
//
// Every operation is a no-op (returns false) when its preconditions do not
// hold. Submitted rows are never mutated again, and a finished game never
// returns to playing.

package game

import (
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Result describes one scored row.
type Result struct {
	Row    int                   `json:"row"` // 0-based index of the scored row
	Guess  string                `json:"guess"`
	Marks  [WordLength]CellState `json:"marks"`
	Status Status                `json:"status"` // status after scoring
}

// Won reports whether the row was all correct.
func (r Result) Won() bool { return r.Status == StatusWon }

// New constructs a fresh game for date with the given solution.
func New(solution, date string, now time.Time) *Game {
	g := &Game{
		ID:        uuid.NewString(),
		Solution:  strings.ToUpper(solution),
		Status:    StatusPlaying,
		Keyboard:  make(map[string]CellState),
		Date:      date,
		StartTime: now,
	}
	for i := range g.Rows {
		for j := range g.Rows[i].Cells {
			g.Rows[i].Cells[j] = Cell{State: StateEmpty}
		}
	}
	return g
}

// writable reports whether the current row may be edited.
func (g *Game) writable() bool {
	return g.Status == StatusPlaying && g.CurrentRowIndex < MaxGuesses
}

// AddLetter places ch (one ASCII letter, any case) in the leftmost empty cell
// of the current row.
func (g *Game) AddLetter(ch string) bool {
	ch = strings.ToUpper(ch)
	if len(ch) != 1 || ch[0] < 'A' || ch[0] > 'Z' {
		return false
	}
	if !g.writable() {
		return false
	}
	row := &g.Rows[g.CurrentRowIndex]
	for i := range row.Cells {
		if row.Cells[i].Letter == "" {
			row.Cells[i] = Cell{Letter: ch, State: StateTBD}
			return true
		}
	}
	return false
}

// RemoveLetter clears the rightmost filled cell of the current row.
func (g *Game) RemoveLetter() bool {
	if !g.writable() {
		return false
	}
	row := &g.Rows[g.CurrentRowIndex]
	for i := WordLength - 1; i >= 0; i-- {
		if row.Cells[i].Letter != "" {
			row.Cells[i] = Cell{State: StateEmpty}
			return true
		}
	}
	return false
}

// Pending returns the current row's letters and whether the row is complete
// and may be submitted.
func (g *Game) Pending() (string, bool) {
	if !g.writable() {
		return "", false
	}
	row := g.Rows[g.CurrentRowIndex]
	return row.Word(), row.filled() == WordLength
}

// Submit scores the current row. It is a no-op unless the game is playing and
// the row is completely filled.
func (g *Game) Submit(now time.Time) (Result, bool) {
	guess, ok := g.Pending()
	if !ok {
		return Result{}, false
	}

	idx := g.CurrentRowIndex
	marks := Evaluate(guess, g.Solution)

	row := &g.Rows[idx]
	for i, m := range marks {
		row.Cells[i].State = m
		upgradeKeyboard(g.Keyboard, row.Cells[i].Letter, m)
	}
	row.Submitted = true

	switch {
	case lo.EveryBy(marks[:], func(m CellState) bool { return m == StateCorrect }):
		g.Status = StatusWon
		g.EndTime = now
	case idx == MaxGuesses-1:
		g.Status = StatusLost
		g.EndTime = now
	}
	g.CurrentRowIndex++

	return Result{Row: idx, Guess: guess, Marks: marks, Status: g.Status}, true
}

// upgradeKeyboard stores st for letter only if it improves on what is known.
func upgradeKeyboard(kb map[string]CellState, letter string, st CellState) {
	if st.Better(kb[letter]) {
		kb[letter] = st
	}
}

// Elapsed returns the time from start to end, or zero while playing.
func (g *Game) Elapsed() time.Duration {
	if g.EndTime.IsZero() || g.StartTime.IsZero() {
		return 0
	}
	return g.EndTime.Sub(g.StartTime)
}

// Clone returns a deep copy.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	c := *g
	c.Keyboard = maps.Clone(g.Keyboard)
	if c.Keyboard == nil {
		c.Keyboard = make(map[string]CellState)
	}
	return &c
}
