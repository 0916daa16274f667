package store

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires the repositories for the configured backend.
//
// With a DSN present the SQL repository is used (after running migrations);
// without one the server falls back to the in-memory repository, which is
// useful for local development and tests but loses state on restart.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database configured, using in-memory user repository")
		return &Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{UserRepository: NewUserRepository(db, log)}, nil
}
