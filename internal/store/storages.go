package store

import (
	"context"

	"github.com/docuvault/go-doc-manager/internal/config"
	"github.com/docuvault/go-doc-manager/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
}

// NewStorages opens the PostgreSQL connection described by cfg and wires the
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
	}, nil
}
