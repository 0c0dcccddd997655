package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
)

// Storages bundles the repositories backed by one database.
type Storages struct {
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewStorages connects to the database named by cfg.DB.DSN, applies
// migrations and builds the repositories. A postgres:// or postgresql://
// DSN selects PostgreSQL; anything else is treated as a SQLite file path.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		SnapshotRepository: NewSnapshotRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	switch {
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	case strings.Contains(cfg.DSN, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, scheme(cfg.DSN))
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

func scheme(dsn string) string {
	s, _, _ := strings.Cut(dsn, "://")
	return s
}
