package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// SQLiteStore keeps one row per save slot holding the JSON state document.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the local SQLite database and its schema.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One writer; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS garden_states (
			slot TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			state TEXT NOT NULL,
			revision INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME NOT NULL
		);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, slot string) (*domain.GameState, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT state FROM garden_states WHERE slot = ?`, slot).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return domain.DecodeState([]byte(doc))
}

func (s *SQLiteStore) Save(ctx context.Context, slot string, state *domain.GameState) error {
	data, err := domain.EncodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO garden_states (slot, schema_version, state, revision, updated_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(slot) DO UPDATE SET
			schema_version = excluded.schema_version,
			state = excluded.state,
			revision = garden_states.revision + 1,
			updated_at = excluded.updated_at`,
		slot, domain.StateSchemaVersion, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Revision returns how many times the slot has been written, 0 if never.
func (s *SQLiteStore) Revision(ctx context.Context, slot string) (int64, error) {
	var rev int64
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM garden_states WHERE slot = ?`, slot).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return rev, err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
