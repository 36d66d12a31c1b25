// internal/game/evaluate.go
//
// Guess Evaluator: standard two-pass scoring.
//
// Pass 1: exact positions are marked correct and their solution letters
// consumed. Pass 2: each remaining guess letter takes the leftmost unconsumed
// occurrence in the solution (present), or stays absent. A solution letter is
// credited to at most one guess position, and exact matches always win over
// misplaced ones.

package game

import "strings"

// consumed replaces used solution letters; it never equals a letter.
const consumed = '#'

// Evaluate scores guess against solution. Both are uppercased first; callers
// guarantee WordLength letters each.
func Evaluate(guess, solution string) [WordLength]CellState {
	var res [WordLength]CellState
	g := []byte(strings.ToUpper(guess))
	sol := []byte(strings.ToUpper(solution))

	for i := range res {
		res[i] = StateAbsent
	}

	for i := 0; i < WordLength; i++ {
		if g[i] == sol[i] {
			res[i] = StateCorrect
			sol[i] = consumed
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] != StateAbsent {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if sol[j] == g[i] {
				res[i] = StatePresent
				sol[j] = consumed
				break
			}
		}
	}
	return res
}
