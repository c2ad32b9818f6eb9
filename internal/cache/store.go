// internal/cache/store.go
//
// SQLite persistence for the pattern cache and the precomputed openers.
// Responsibilities:
//   - Opening the cache database with safe defaults (WAL, busy timeout).
//   - Loading the persisted pattern map into a Cache and flushing dirty
//     caches back, wholesale, inside one transaction.
//   - Storing best-opener words keyed by strategy name.
//
// Failure policy: per the solver's degraded-mode rules, callers treat every
// error from this file as non-fatal: log it and run with an empty cache.
// Schema is applied on open; there is no migration history to track.

package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

const schema = `
CREATE TABLE IF NOT EXISTS patterns (
    secret  TEXT NOT NULL,
    guess   TEXT NOT NULL,
    pattern TEXT NOT NULL,
    PRIMARY KEY (secret, guess)
);
CREATE TABLE IF NOT EXISTS openers (
    strategy TEXT PRIMARY KEY,
    word     TEXT NOT NULL
);`

// Store wraps the SQLite handle backing the persisted caches.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the cache database file.
//
// - Ensures the parent directory exists for relative paths (e.g. ./data/patterns.db).
// - Configures busy timeout and WAL journaling mode.
// - Applies the schema idempotently.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Load reads every persisted pattern into c. Entries already present in c
// are overwritten with the persisted value (they are identical by
// construction: the encoder is deterministic).
func (s *Store) Load(ctx context.Context, c *Cache) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT secret, guess, pattern FROM patterns`)
	if err != nil {
		return 0, fmt.Errorf("query patterns: %w", err)
	}
	defer rows.Close()

	n := 0
	c.mu.Lock()
	defer c.mu.Unlock()
	for rows.Next() {
		var secret, guess, raw string
		if err := rows.Scan(&secret, &guess, &raw); err != nil {
			return n, fmt.Errorf("scan pattern row: %w", err)
		}
		p, err := feedback.Parse(raw)
		if err != nil {
			// Corrupt row: skip it, the encoder recomputes on demand.
			continue
		}
		c.addLoaded(secret, guess, p)
		n++
	}
	return n, rows.Err()
}

// Save writes the full contents of c in one transaction and clears the
// dirty flag on success. INSERT OR REPLACE keeps the operation idempotent.
func (s *Store) Save(ctx context.Context, c *Cache) error {
	snap := c.snapshot()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO patterns (secret, guess, pattern) VALUES (?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for secret, byGuess := range snap {
		for guess, p := range byGuess {
			if _, err := stmt.ExecContext(ctx, secret, guess, string(p)); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("insert pattern (%s, %s): %w", secret, guess, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit patterns: %w", err)
	}
	c.ClearDirty()
	return nil
}

// LoadOpeners returns the persisted strategy → opening word map.
func (s *Store) LoadOpeners(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT strategy, word FROM openers`)
	if err != nil {
		return nil, fmt.Errorf("query openers: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var strategy, word string
		if err := rows.Scan(&strategy, &word); err != nil {
			return nil, fmt.Errorf("scan opener row: %w", err)
		}
		out[strategy] = word
	}
	return out, rows.Err()
}

// SaveOpener upserts the best known opening word for a strategy.
func (s *Store) SaveOpener(ctx context.Context, strategy, word string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO openers (strategy, word) VALUES (?, ?)`, strategy, word)
	return err
}
