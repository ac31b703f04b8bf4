package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	_ "modernc.org/sqlite"
)

// DefaultDBPath returns the default PixelPress store location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".pixelpress.db"), nil
}

// ResolveDBPath returns the store path, honoring the PP_DB override.
func ResolveDBPath() (string, error) {
	if p := os.Getenv("PP_DB"); p != "" {
		return p, nil
	}
	return DefaultDBPath()
}

// SQLiteStore is the shared on-device store: a single kv table in a
// SQLite file that every PixelPress process opens directly. Opening
// can fail; after that every Store method is total and swallows I/O
// errors per the Store contract.
type SQLiteStore struct {
	db *sql.DB

	// Dedicated connection for PRAGMA data_version, which is tracked
	// per connection and moves when a different connection commits.
	watchConn *sql.Conn

	writes atomic.Int64
}

// Open opens (and creates if missing) the store at path.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("watch conn: %w", err)
	}

	return &SQLiteStore{db: db, watchConn: conn}, nil
}

func (s *SQLiteStore) Close() error {
	_ = s.watchConn.Close()
	return s.db.Close()
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Get(key, fallback string) string {
	row := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)

	var v string
	if err := row.Scan(&v); err != nil {
		return fallback
	}
	return v
}

func (s *SQLiteStore) Set(key, value string) {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err == nil {
		s.writes.Add(1)
	}
}

func (s *SQLiteStore) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err == nil {
		s.writes.Add(1)
	}
}

func (s *SQLiteStore) Keys() []string {
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return keys
		}
		keys = append(keys, k)
	}
	return keys
}

// ChangeToken combines the local write counter with SQLite's
// data_version. The counter moves on this store's own writes; the
// data_version moves when any *other* connection commits, which covers
// writes made by other PixelPress processes sharing the file.
func (s *SQLiteStore) ChangeToken() string {
	var dv int64
	row := s.watchConn.QueryRowContext(context.Background(), `PRAGMA data_version`)
	_ = row.Scan(&dv)
	return fmt.Sprintf("%d:%d", s.writes.Load(), dv)
}
