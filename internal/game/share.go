package game

import (
	"fmt"
	"strings"
	"time"
)

const (
	tileCorrect = "🟩"
	tilePresent = "🟨"
	tileOther   = "⬛"
)

// ShareText renders a spoiler-free summary of the board: a header, the
// result line, one emoji row per submitted guess and, if url is set, a
// "Play at" footer.
func ShareText(g *Game, url string) string {
	var b strings.Builder

	day := g.Date
	if t, err := time.Parse("2006-01-02", g.Date); err == nil {
		day = t.Format("Jan 2")
	}
	fmt.Fprintf(&b, "Wordly - %s\n", day)

	if g.Status == StatusWon {
		fmt.Fprintf(&b, "Solved in %d/%d guesses\n\n", g.CurrentRowIndex, MaxGuesses)
	} else {
		b.WriteString("Failed to solve today's puzzle\n\n")
	}

	for _, row := range g.Rows[:g.CurrentRowIndex] {
		for _, c := range row.Cells {
			switch c.State {
			case StateCorrect:
				b.WriteString(tileCorrect)
			case StatePresent:
				b.WriteString(tilePresent)
			default:
				b.WriteString(tileOther)
			}
		}
		b.WriteByte('\n')
	}

	if url != "" {
		fmt.Fprintf(&b, "\nPlay at: %s", url)
	}
	return b.String()
}
