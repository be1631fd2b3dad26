// Package settings persists session state in a SQLite database.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // database/sql driver
)

const activeToolkitKey = "toolkit"

// Store implements ports.SettingsStore using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the settings database at the given path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create settings directory")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open settings database"), "path", path)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		revision   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return zerr.Wrap(err, "failed to migrate settings schema")
	}
	return nil
}

// ActiveToolkit returns the selected toolkit key, or "" when none is set.
func (s *Store) ActiveToolkit(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, activeToolkitKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", zerr.Wrap(err, "failed to read active toolkit")
	}
	return value, nil
}

// SetActiveToolkit records the selection, stamping each write with a new
// revision ID.
func (s *Store) SetActiveToolkit(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, revision, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			revision = excluded.revision,
			updated_at = excluded.updated_at`,
		activeToolkitKey, key, ulid.Make().String(), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set active toolkit"), "key", key)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
