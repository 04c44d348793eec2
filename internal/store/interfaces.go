package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/cargo-settings/models"
)

// UserRepository reads accounts owned by the identity subsystem.
type UserRepository interface {
	// FindUserByID returns [ErrNoUserWasFound] when no user has the given id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// SettingsRepository stores the global Settings singleton.
type SettingsRepository interface {
	// GetSettings returns nil and no error when the record was never created.
	GetSettings(ctx context.Context) (*models.Settings, error)

	// SaveSettings creates or replaces the singleton and returns the stored row.
	SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error)
}

// FilialRepository reads and updates branch records. Filials are never
// created through it.
type FilialRepository interface {
	// FindFilialByUserPhone returns the first filial bound to phone or
	// [ErrFilialNotFound].
	FindFilialByUserPhone(ctx context.Context, phone string) (models.Filial, error)

	// SaveFilial writes the operational fields of an existing filial.
	SaveFilial(ctx context.Context, filial models.Filial) (models.Filial, error)
}

// ContactsRepository stores the Contacts singleton.
type ContactsRepository interface {
	GetContacts(ctx context.Context) (*models.Contacts, error)
	SaveContacts(ctx context.Context, contacts models.Contacts) (models.Contacts, error)
}

// StagedFile is an uploaded document written to the staging area but not
// yet published.
type StagedFile struct {
	Path string
	Size int64
}

// ContractFileStorage keeps contract documents on disk. Uploads are first
// staged, their public name is reserved, and the content becomes visible
// only after Commit.
type ContractFileStorage interface {
	Stage(ctx context.Context, content io.Reader) (StagedFile, error)

	// Reserve returns [ErrContractNameTaken] when fileName is already used.
	Reserve(ctx context.Context, fileName string) error
	Release(ctx context.Context, fileName string) error

	Commit(ctx context.Context, staged StagedFile, fileName string) error
	Discard(ctx context.Context, staged StagedFile) error

	// SweepStaged removes staged files last modified before olderThan and
	// reports how many were removed.
	SweepStaged(ctx context.Context, olderThan time.Time) (int, error)
}

// ErrorClassificator decides whether a failed database call may succeed if
// repeated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
