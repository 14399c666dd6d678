package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/personaplus/plus/internal/osutil"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

// SQLiteKV is a KV persisted in a single SQLite table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLite opens (and creates if needed) the SQLite database at path.
func NewSQLite(path string) (*SQLiteKV, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(cleanPath), osutil.DirPermission); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if _, err := db.Exec(kvSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	var value string

	err := s.db.QueryRowContext(
		ctx,
		`SELECT value FROM kv WHERE key = ?`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("get %s: %w", key, err)
	}

	return value, true, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key,
		value,
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteKV) MultiGet(ctx context.Context, keys []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(keys))

	for _, key := range keys {
		v, found, err := s.Get(ctx, key)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, Pair{Key: key, Value: v, Found: found})
	}

	return pairs, nil
}

func (s *SQLiteKV) MultiRemove(ctx context.Context, keys []string) (err error) {
	if err = checkKeys(keys); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin remove: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, key := range keys {
		_, err = tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
		if err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Close releases the underlying SQLite connection.
func (s *SQLiteKV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
