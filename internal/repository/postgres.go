package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSlot keeps snapshots as JSONB rows of the address_snapshots table
type PostgresSlot struct {
	db *pgxpool.Pool
}

// NewPostgresSlot creates a new PostgreSQL snapshot slot
func NewPostgresSlot(db *pgxpool.Pool) *PostgresSlot {
	return &PostgresSlot{db: db}
}

// EnsureSchema creates the snapshot table if it does not exist
func (s *PostgresSlot) EnsureSchema(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS address_snapshots (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := s.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create snapshot table: %w", err)
	}
	return nil
}

// Load returns the raw snapshot stored under key
func (s *PostgresSlot) Load(ctx context.Context, key string) ([]byte, error) {
	sql := `SELECT value::text FROM address_snapshots WHERE key = $1`

	var value string
	err := s.db.QueryRow(ctx, sql, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("repository: failed to load snapshot: %w", err)
	}

	return []byte(value), nil
}

// Save replaces the snapshot stored under key
func (s *PostgresSlot) Save(ctx context.Context, key string, data []byte) error {
	sql := `
		INSERT INTO address_snapshots (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.Exec(ctx, sql, key, string(data)); err != nil {
		return fmt.Errorf("repository: failed to save snapshot: %w", err)
	}
	return nil
}
