package service

import (
	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
)

type Services struct {
	SettingsService SettingsService
	ContactsService ContactsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	settingsService := NewSettingsService(storages, cfg.Storage.Files, logger)
	contactsService := NewContactsService(storages.ContactsRepository, logger)

	return &Services{
		SettingsService: NewSettingsValidationService().Wrap(settingsService),
		ContactsService: NewContactsValidationService().Wrap(contactsService),
		AppInfoService:  appInfoService,
	}, nil
}
