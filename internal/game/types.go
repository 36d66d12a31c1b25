// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - CellState: lifecycle/outcome of a single letter cell.
//   - Cell, Row: one tile and one guess attempt.
//   - Status:    playing → won | lost.
//   - Game:      the board for one calendar day.

package game

import "time"

const (
	MaxGuesses = 6 // rows per game
	WordLength = 5 // cells per row
)

// CellState is the state of one cell.
//   - "empty":   never typed.
//   - "tbd":     typed, not yet scored.
//   - "correct": right letter, right position.
//   - "present": letter is in the solution at another position.
//   - "absent":  letter has no remaining occurrence in the solution.
type CellState string

const (
	StateEmpty   CellState = "empty"
	StateTBD     CellState = "tbd"
	StateCorrect CellState = "correct"
	StatePresent CellState = "present"
	StateAbsent  CellState = "absent"
)

// rank orders scored states for the keyboard upgrade rule.
// Unscored states rank below every outcome.
func (s CellState) rank() int {
	switch s {
	case StateAbsent:
		return 1
	case StatePresent:
		return 2
	case StateCorrect:
		return 3
	}
	return 0
}

// Better reports whether s is strictly better than other in the ordering
// unset < absent < present < correct.
func (s CellState) Better(other CellState) bool {
	return s.rank() > other.rank()
}

// Cell is a single letter tile. Letter is "" when the cell is empty.
type Cell struct {
	Letter string    `json:"letter"`
	State  CellState `json:"state"`
}

// Row is one guess attempt.
type Row struct {
	Cells     [WordLength]Cell `json:"cells"`
	Submitted bool             `json:"submitted"`
}

// Word concatenates the row's letters.
func (r Row) Word() string {
	b := make([]byte, 0, WordLength)
	for _, c := range r.Cells {
		b = append(b, c.Letter...)
	}
	return string(b)
}

// filled counts non-empty cells.
func (r Row) filled() int {
	n := 0
	for _, c := range r.Cells {
		if c.Letter != "" {
			n++
		}
	}
	return n
}

// Status is the game's progression state. Won and lost are terminal.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Over reports whether s is terminal.
func (s Status) Over() bool { return s == StatusWon || s == StatusLost }

// Game holds the board for one calendar day.
type Game struct {
	ID              string               `json:"id"`
	Solution        string               `json:"solution"` // uppercase, fixed for the game's lifetime
	Rows            [MaxGuesses]Row      `json:"rows"`
	CurrentRowIndex int                  `json:"currentRowIndex"` // == number of submitted rows
	Status          Status               `json:"gameStatus"`
	Keyboard        map[string]CellState `json:"keyboardStatus"`
	Date            string               `json:"date"` // YYYY-MM-DD
	StartTime       time.Time            `json:"startTime"`
	EndTime         time.Time            `json:"endTime,omitempty"` // zero until won/lost
}
