package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	var s Stats
	assert.Equal(t, 0, s.WinPercentage())
	assert.Equal(t, 1, s.MaxBucket())
	assert.Equal(t, [Buckets]int{}, s.GuessDistribution)
}

func TestRecordWin(t *testing.T) {
	var s Stats
	s.RecordWin(1, "2026-10-14")

	assert.Equal(t, 1, s.GamesPlayed)
	assert.Equal(t, 1, s.GamesWon)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.MaxStreak)
	assert.Equal(t, [Buckets]int{0, 1, 0, 0, 0, 0}, s.GuessDistribution)
	assert.Equal(t, "2026-10-14", s.LastPlayed)
}

func TestSameDayWinDoesNotDoubleCountStreak(t *testing.T) {
	var s Stats
	s.RecordWin(2, "2026-10-14")
	s.RecordWin(3, "2026-10-14")

	assert.Equal(t, 2, s.GamesPlayed)
	assert.Equal(t, 2, s.GamesWon)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.MaxStreak)
	assert.Equal(t, [Buckets]int{0, 0, 1, 1, 0, 0}, s.GuessDistribution)
}

func TestStreakAcrossDays(t *testing.T) {
	var s Stats
	s.RecordWin(0, "2026-10-12")
	s.RecordWin(0, "2026-10-13")
	s.RecordWin(0, "2026-10-14")
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.MaxStreak)
	assert.Equal(t, 3, s.MaxBucket())
}

func TestLossResetsStreakKeepsMax(t *testing.T) {
	var s Stats
	s.RecordWin(0, "2026-10-12")
	s.RecordWin(4, "2026-10-13")
	s.RecordLoss("2026-10-14")

	assert.Equal(t, 3, s.GamesPlayed)
	assert.Equal(t, 2, s.GamesWon)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 2, s.MaxStreak)
	assert.Equal(t, "2026-10-14", s.LastPlayed)
	assert.Equal(t, 67, s.WinPercentage())
}

func TestWinAfterLossSameDayStartsNoStreak(t *testing.T) {
	var s Stats
	s.RecordLoss("2026-10-14")
	s.RecordWin(5, "2026-10-14")
	assert.Equal(t, 0, s.CurrentStreak, "lastPlayed already today")
	assert.Equal(t, 0, s.MaxStreak)
	assert.Equal(t, 50, s.WinPercentage())
}
