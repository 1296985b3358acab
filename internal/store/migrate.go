package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	applog "github.com/theirongolddev/bakecost/internal/log"
)

// AddMarginColumn adds recipes.margin to databases that predate it.
// It reports whether the column was added; an existing column is not an
// error, so calling it repeatedly is safe.
func (s *Store) AddMarginColumn(ctx context.Context) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	if _, err := s.db.ExecContext(ctx, addMarginColumnSQL); err != nil {
		if isAlreadyExists(err) {
			applog.Debug(ctx, "margin column already present")
			return false, nil
		}
		return false, fmt.Errorf("adding margin column: %w", err)
	}
	applog.Info(ctx, "added margin column to recipes")
	return true, nil
}

// Reset drops every table and recreates an empty schema. All data is lost.
func (s *Store) Reset(ctx context.Context) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, dropSQL); err != nil {
			return fmt.Errorf("dropping tables: %w", err)
		}
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	applog.Info(ctx, "database reset", "path", s.path)
	return nil
}

// isAlreadyExists reports whether err is SQLite refusing idempotent DDL.
func isAlreadyExists(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column name")
}
