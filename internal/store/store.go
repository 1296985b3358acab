// Package store persists ingredients, recipes and their links in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	applog "github.com/theirongolddev/bakecost/internal/log"

	_ "modernc.org/sqlite" // register sqlite driver
)

var errNotConfigured = errors.New("store is not configured")

// Store is the SQLite-backed ingredient and recipe store. Construct one with
// Open and pass it to whatever needs it.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path, creates missing tables and
// applies the margin column upgrade.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db, path: path}
	if _, err := s.AddMarginColumn(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	applog.Debug(context.Background(), "store opened", "path", path)
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Counts returns the number of stored ingredients and recipes.
func (s *Store) Counts(ctx context.Context) (ingredients, recipes int, err error) {
	if err := s.ready(ctx); err != nil {
		return 0, 0, err
	}
	err = s.db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM ingredients), (SELECT COUNT(*) FROM recipes)",
	).Scan(&ingredients, &recipes)
	if err != nil {
		return 0, 0, fmt.Errorf("counting rows: %w", err)
	}
	return ingredients, recipes, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	return nil
}

// withTx runs fn in a transaction. The transaction is rolled back on every
// path that does not reach Commit.
func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// affected returns the row count of res, wrapping a driver error with op.
func affected(res sql.Result, op string) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
