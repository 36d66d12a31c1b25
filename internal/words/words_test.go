package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	l := Default()
	require.Equal(t, 78, l.Len())

	ws := l.Words()
	assert.Equal(t, "APPLE", ws[0])
	assert.Equal(t, "ZONED", ws[len(ws)-1])
	assert.Equal(t, "SPOON", ws[70])
}

func TestWordOfTheDay(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-01", "UNCLE"},
		{"2025-06-15", "PIANO"},
		{"2026-10-14", "SPOON"},
		{"2026-10-15", "TULIP"},
		{"1970-01-01", "FRUIT"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, WordOfTheDay(tt.date))
			assert.Equal(t, tt.want, WordOfTheDay(tt.date), "repeat call must agree")
		})
	}
}

func TestIsValidWord(t *testing.T) {
	assert.True(t, IsValidWord("APPLE"))
	assert.True(t, IsValidWord("apple"))
	assert.True(t, IsValidWord("ApPlE"))
	assert.False(t, IsValidWord("CRANE"))
	assert.False(t, IsValidWord(""))
}

func TestNewRejectsBadLists(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyList)

	_, err = New([]string{"APPLE", "TOOLONG"})
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = New([]string{"AP1LE"})
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = New([]string{"APPLE", "apple"})
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestNewPreservesOrder(t *testing.T) {
	l, err := New([]string{"zebra", "apple", "mango"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ZEBRA", "APPLE", "MANGO"}, l.Words())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\nmango\n\nGRAPE\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"MANGO", "GRAPE"}, l.Words())
	assert.True(t, l.IsValidWord("grape"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
