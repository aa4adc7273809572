package repository

import (
	"context"
	"errors"
	"fmt"

	"address-catalog/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSnapshotNotFound is returned when no snapshot has been stored under a key yet.
var ErrSnapshotNotFound = errors.New("repository: snapshot not found")

// Slot is a durable key/value slot holding serialized snapshots
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Open creates the slot selected by the storage backend setting.
// The returned function releases the backend resources.
func Open(ctx context.Context, cfg config.Config) (Slot, func(), error) {
	switch cfg.StorageBackend {
	case "", config.BackendFile:
		slot, err := NewFileSlot(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() {}, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: cannot connect to db: %w", err)
		}
		slot := NewPostgresSlot(pool)
		if err := slot.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return slot, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("repository: unknown storage backend %q", cfg.StorageBackend)
	}
}
