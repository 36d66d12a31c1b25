// internal/words/words.go
//
// Word Source for the daily puzzle.
//
// Responsibilities:
//   - Hold the fixed, ordered vocabulary of 5-letter uppercase words.
//   - Map a date key to that day's solution (see daily.WordIndex).
//   - Answer case-insensitive membership tests.
//
// Vocabulary sources:
//   - Default(): the list embedded in assets/vocabulary.txt.
//   - Load(path): one word per line from a file (WORDS_FILE). Blank lines and
//     lines starting with '#' are skipped; order is preserved as written.
//
// Order is part of the contract. Two lists with the same words in a different
// order produce different daily solutions.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordly/assets"
	"github.com/robalobadob/wordly/internal/daily"
)

// Length is the number of letters in every vocabulary word.
const Length = 5

var (
	ErrEmptyList   = errors.New("words: vocabulary is empty")
	ErrInvalidWord = errors.New("words: invalid vocabulary entry")
)

// List is an immutable ordered vocabulary.
type List struct {
	words []string
	set   map[string]struct{}
}

// New validates words and builds a List. Entries are uppercased; each must be
// Length ASCII letters and appear only once.
func New(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	l := &List{
		words: make([]string, 0, len(words)),
		set:   make(map[string]struct{}, len(words)),
	}
	for i, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) != Length || !isAlpha(w) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidWord, w, i)
		}
		if _, dup := l.set[w]; dup {
			return nil, fmt.Errorf("%w: duplicate %q at position %d", ErrInvalidWord, w, i)
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l, nil
}

// Load reads a vocabulary file, one word per line.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return New(out)
}

var (
	defaultOnce sync.Once
	defaultList *List
)

// Default returns the embedded vocabulary. It panics if the embedded file is
// malformed, which can only happen through a bad edit to assets/.
func Default() *List {
	defaultOnce.Do(func() {
		ws, err := assets.VocabularyList()
		if err == nil {
			defaultList, err = New(ws)
		}
		if err != nil {
			panic(fmt.Sprintf("words: embedded vocabulary: %v", err))
		}
	})
	return defaultList
}

// WordOfTheDay returns the solution for a YYYY-MM-DD date key.
func (l *List) WordOfTheDay(date string) string {
	return l.words[daily.WordIndex(date, len(l.words))]
}

// IsValidWord reports whether w (any case) is in the vocabulary.
func (l *List) IsValidWord(w string) bool {
	_, ok := l.set[strings.ToUpper(w)]
	return ok
}

// Len returns the vocabulary size.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the vocabulary in order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// WordOfTheDay uses the embedded vocabulary.
func WordOfTheDay(date string) string { return Default().WordOfTheDay(date) }

// IsValidWord uses the embedded vocabulary.
func IsValidWord(w string) bool { return Default().IsValidWord(w) }

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
