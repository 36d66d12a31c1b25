// Package stats tracks aggregate play statistics for one player installation.
//
// A Stats value is updated exactly once per completed game. Recording the same
// game twice is the caller's problem; the only guard is the streak rule,
// which does not increment twice for wins on the same date.
package stats

import "math"

// Buckets is the length of the guess distribution (one per allowed guess).
const Buckets = 6

// Stats holds counters, streaks and the guess distribution.
type Stats struct {
	GamesPlayed       int          `json:"gamesPlayed"`
	GamesWon          int          `json:"gamesWon"`
	CurrentStreak     int          `json:"currentStreak"`
	MaxStreak         int          `json:"maxStreak"`
	GuessDistribution [Buckets]int `json:"guessDistribution"` // [i] = wins in i+1 guesses
	LastPlayed        string       `json:"lastPlayed"`        // YYYY-MM-DD, "" before the first game
}

// RecordWin counts a win that took row+1 guesses (row is 0-based).
// The streak is left alone if a game was already recorded for today.
func (s *Stats) RecordWin(row int, today string) {
	s.GamesPlayed++
	s.GamesWon++
	if row >= 0 && row < Buckets {
		s.GuessDistribution[row]++
	}
	if s.LastPlayed != today {
		s.CurrentStreak++
	}
	s.MaxStreak = max(s.MaxStreak, s.CurrentStreak)
	s.LastPlayed = today
}

// RecordLoss counts a loss and breaks the current streak.
func (s *Stats) RecordLoss(today string) {
	s.GamesPlayed++
	s.CurrentStreak = 0
	s.LastPlayed = today
}

// WinPercentage is the rounded share of games won, 0 with no games played.
func (s Stats) WinPercentage() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
}

// MaxBucket is the largest distribution count, at least 1.
func (s Stats) MaxBucket() int {
	m := 1
	for _, n := range s.GuessDistribution {
		m = max(m, n)
	}
	return m
}
