// internal/store/memory.go
//
// In-memory implementation of Store.
// Used in tests and when DB_PATH=memory; state is lost when the process exits.
//
// Concurrency-safe via RWMutex. Snapshots are deep-copied on the way in and
// on the way out, so callers never share board state with the store.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordly/internal/session"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("store: no snapshot saved")

// Store persists the state of a single player installation.
type Store interface {
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap session.Snapshot) error

	// Load returns the stored snapshot, or ErrNotFound.
	Load(ctx context.Context) (session.Snapshot, error)
}

// memory is a Store holding one snapshot.
type memory struct {
	mu   sync.RWMutex
	snap *session.Snapshot
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) Save(ctx context.Context, snap session.Snapshot) error {
	c := snap.Clone()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = &c
	return nil
}

func (m *memory) Load(ctx context.Context) (session.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snap == nil {
		return session.Snapshot{}, ErrNotFound
	}
	return m.snap.Clone(), nil
}
