// internal/daily/daily.go
//
// Calendar helpers for the daily puzzle.
//
//   - DateKey:   YYYY-MM-DD in UTC, the key every daily structure is scoped by.
//   - Hash:      32-bit rolling hash over a date key (h = h*31 + c, wrapping).
//   - WordIndex: |Hash(date)| mod n, the position of the day's solution.
//   - UntilNext: time remaining before the next date key begins.
//
// The hash arithmetic is frozen: changing it (or the vocabulary order) changes
// which word every past and future date maps to.
package daily

import "time"

// Layout is the date key format.
const Layout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Hash folds s into a signed 32-bit value using h = h*31 + c with
// two's-complement wraparound.
func Hash(s string) int32 {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	return h
}

// WordIndex returns a deterministic index in [0, n) for a date key.
// The absolute value is taken in 64 bits so math.MinInt32 stays positive.
func WordIndex(date string, n int) int {
	if n <= 0 {
		return 0
	}
	h := int64(Hash(date))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// UntilNext returns how long until the date key after now's begins.
func UntilNext(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return next.Sub(now)
}
