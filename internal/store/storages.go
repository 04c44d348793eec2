package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/logger"
)

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	UserRepository      UserRepository
	SettingsRepository  SettingsRepository
	FilialRepository    FilialRepository
	ContactsRepository  ContactsRepository
	ContractFileStorage ContractFileStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and prepares the
// contract directories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	files, err := NewContractFileStorage(cfg.Files, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		SettingsRepository:  NewSettingsRepository(db, log),
		FilialRepository:    NewFilialRepository(db, log),
		ContactsRepository:  NewContactsRepository(db, log),
		ContractFileStorage: files,
		db:                  db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
