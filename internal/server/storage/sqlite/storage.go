package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage implements every server storage interface over one database
var (
	_ storage.UserStorage  = (*Storage)(nil)
	_ storage.TokenStorage = (*Storage)(nil)
	_ storage.NoteStorage  = (*Storage)(nil)
	_ storage.LabelStorage = (*Storage)(nil)
)

// Storage represents SQLite storage implementation
type Storage struct {
	db *sql.DB
}

// New creates a new SQLite storage instance.
// dbPath is the path to the SQLite database file.
// Use ":memory:" for an in-memory database (useful for testing).
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite in WAL mode supports multiple readers but a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	storage := &Storage{db: db}

	if err := storage.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// runMigrations applies migrations from the embedded FS
func (s *Storage) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}

// bumpCursor advances a change cursor inside the given transaction
func bumpCursor(ctx context.Context, tx *sql.Tx, key string) error {
	query := `
		INSERT INTO sync_cursors (scope_key, seq) VALUES (?, 1)
		ON CONFLICT(scope_key) DO UPDATE SET seq = seq + 1
	`
	if _, err := tx.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to bump cursor %s: %w", key, err)
	}
	return nil
}

// readCursor returns the current value of a change cursor, zero when
// the scope has never been written
func (s *Storage) readCursor(ctx context.Context, key string) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx,
		`SELECT seq FROM sync_cursors WHERE scope_key = ?`, key).Scan(&seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read cursor %s: %w", key, err)
	}
	return seq, nil
}

func unixToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func ownedKey(userID string) string  { return "notes:owned:" + userID }
func sharedKey(userID string) string { return "notes:shared:" + userID }
func labelsKey(userID string) string { return "labels:" + userID }
