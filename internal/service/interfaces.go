package service

import (
	"context"

	"github.com/MKhiriev/cargo-settings/models"
)

// RoleResolver turns a caller id into a classified [models.Caller].
type RoleResolver interface {
	ResolveCaller(ctx context.Context, userID string) (models.Caller, error)
}

// SettingsService reads and updates the settings record applicable to a
// caller: the global Settings for admins, their own Filial for branch
// operators.
type SettingsService interface {
	GetSettings(ctx context.Context, userID string) (models.SettingsResult, error)
	UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.SettingsResult, error)
}

// ContactsService reads and updates the public Contacts record. It has no
// role gating.
type ContactsService interface {
	GetContacts(ctx context.Context) (*models.Contacts, error)
	UpdateContacts(ctx context.Context, update models.ContactsUpdate) (models.Contacts, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SettingsServiceWrapper defines middleware composition for SettingsService.
// Implementations wrap an existing SettingsService to add behavior such as
// logging or validating.
type SettingsServiceWrapper interface {
	Wrap(SettingsService) SettingsService
}

// ContactsServiceWrapper is the ContactsService counterpart of
// [SettingsServiceWrapper].
type ContactsServiceWrapper interface {
	Wrap(ContactsService) ContactsService
}
