// internal/leaderboard/leaderboard.go
//
// Daily leaderboard: the ten best winning games for a date.
//
// Ordering is fewer guesses first, then less time. Adding an entry drops every
// entry from another date, so the board only ever holds one day's scores.
// Add is not idempotent; callers check HasEntry before submitting.

package leaderboard

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/robalobadob/wordly/internal/game"
)

const (
	MaxEntries    = 10
	MaxNameLength = 15
)

var (
	ErrEmptyName   = errors.New("leaderboard: name is empty")
	ErrNameTooLong = fmt.Errorf("leaderboard: name longer than %d characters", MaxNameLength)
)

// Entry is one winning game.
type Entry struct {
	Name    string `json:"name"`
	Guesses int    `json:"guesses"`
	Time    int    `json:"time"` // whole seconds from start to win
	Date    string `json:"date"`
}

// Board is a sorted, bounded list of entries.
type Board []Entry

// EntryFor builds the entry a finished game would earn. ok is false unless
// the game was won and has both timestamps.
func EntryFor(name string, g *game.Game) (Entry, bool) {
	if g == nil || g.Status != game.StatusWon || g.StartTime.IsZero() || g.EndTime.IsZero() {
		return Entry{}, false
	}
	return Entry{
		Name:    name,
		Guesses: g.CurrentRowIndex,
		Time:    int(g.Elapsed() / time.Second),
		Date:    g.Date,
	}, true
}

// Add appends name's entry for g, keeps only entries for g's date, re-sorts
// and truncates to MaxEntries. It reports false and leaves the board alone if
// g is not a completed win.
func (b *Board) Add(name string, g *game.Game) bool {
	e, ok := EntryFor(name, g)
	if !ok {
		return false
	}
	next := lo.Filter(append(slices.Clone(*b), e), func(x Entry, _ int) bool {
		return x.Date == e.Date
	})
	slices.SortStableFunc(next, compare)
	if len(next) > MaxEntries {
		next = next[:MaxEntries]
	}
	*b = next
	return true
}

// compare orders by guesses, then time.
func compare(a, b Entry) int {
	if c := cmp.Compare(a.Guesses, b.Guesses); c != 0 {
		return c
	}
	return cmp.Compare(a.Time, b.Time)
}

// HasEntry reports whether an entry with g's date, guess count and time is
// already on the board.
func (b Board) HasEntry(g *game.Game) bool {
	e, ok := EntryFor("", g)
	if !ok {
		return false
	}
	return lo.ContainsBy(b, func(x Entry) bool {
		return x.Date == e.Date && x.Guesses == e.Guesses && x.Time == e.Time
	})
}

// ForDate returns the entries recorded for date, in board order.
func (b Board) ForDate(date string) []Entry {
	return lo.Filter(b, func(x Entry, _ int) bool { return x.Date == date })
}

// ValidateName trims name and checks it is 1..MaxNameLength characters.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", ErrEmptyName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return "", ErrNameTooLong
	}
	return name, nil
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
