// internal/store/sqlite.go
//
// SQLite-backed Store: the local-storage equivalent for one installation.
//
// Layout:
//   - state(key='game')  → JSON of the current game (omitted while nil).
//   - state(key='stats') → JSON of the statistics.
//   - leaderboard_entries → one row per board entry.
//
// Save rewrites everything in one transaction, so a reader never observes a
// game from one snapshot with stats from another.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordly/internal/game"
	"github.com/robalobadob/wordly/internal/leaderboard"
	"github.com/robalobadob/wordly/internal/session"
)

const (
	keyGame  = "game"
	keyStats = "stats"
)

// SQLite is a Store on a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens path and applies migrations.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the database.
func (s *SQLite) Close() error { return s.db.Close() }

// Save replaces the stored snapshot.
func (s *SQLite) Save(ctx context.Context, snap session.Snapshot) error {
	statsJSON, err := json.Marshal(snap.Stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	var gameJSON []byte
	if snap.Game != nil {
		if gameJSON, err = json.Marshal(snap.Game); err != nil {
			return fmt.Errorf("encode game: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	if err := putState(ctx, tx, keyStats, statsJSON, now); err != nil {
		return err
	}
	if gameJSON != nil {
		if err := putState(ctx, tx, keyGame, gameJSON, now); err != nil {
			return err
		}
	} else if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE key=?`, keyGame); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard_entries`); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	for i, e := range snap.Leaderboard {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO leaderboard_entries (date, name, guesses, time_s, position)
			VALUES (?, ?, ?, ?, ?)`,
			e.Date, e.Name, e.Guesses, e.Time, i,
		); err != nil {
			return fmt.Errorf("insert leaderboard entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func putState(ctx context.Context, tx *sql.Tx, key string, value []byte, now string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Load returns the stored snapshot, or ErrNotFound if Save was never called.
func (s *SQLite) Load(ctx context.Context) (session.Snapshot, error) {
	var snap session.Snapshot

	statsJSON, err := s.getState(ctx, keyStats)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(statsJSON, &snap.Stats); err != nil {
		return snap, fmt.Errorf("decode stats: %w", err)
	}

	gameJSON, err := s.getState(ctx, keyGame)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return snap, err
	default:
		var g game.Game
		if err := json.Unmarshal(gameJSON, &g); err != nil {
			return snap, fmt.Errorf("decode game: %w", err)
		}
		snap.Game = &g
	}

	if snap.Leaderboard, err = s.leaderboard(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}

func (s *SQLite) getState(ctx context.Context, key string) ([]byte, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key=?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(v), nil
}

// leaderboard reads back the stored board, best first.
func (s *SQLite) leaderboard(ctx context.Context) (leaderboard.Board, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, guesses, time_s, date
		FROM leaderboard_entries
		ORDER BY guesses ASC, time_s ASC, position ASC
		LIMIT ?`, leaderboard.MaxEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var out leaderboard.Board
	for rows.Next() {
		var e leaderboard.Entry
		if err := rows.Scan(&e.Name, &e.Guesses, &e.Time, &e.Date); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ Store = (*SQLite)(nil)
