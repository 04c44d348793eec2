package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/config"
	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
)

type settingsService struct {
	roles       RoleResolver
	entities    *entityResolver
	settings    store.SettingsRepository
	filials     store.FilialRepository
	attachments *attachmentHandler

	logger *logger.Logger
}

func NewSettingsService(storages *store.Storages, cfg config.Files, logger *logger.Logger) SettingsService {
	logger.Debug().Msg("creating settings service")
	return &settingsService{
		roles:       NewRoleResolver(storages.UserRepository),
		entities:    newEntityResolver(storages.SettingsRepository, storages.FilialRepository),
		settings:    storages.SettingsRepository,
		filials:     storages.FilialRepository,
		attachments: newAttachmentHandler(storages.ContractFileStorage, cfg.PublicPrefix),
		logger:      logger,
	}
}

// GetSettings returns the record applicable to the caller. For an admin
// the result may hold a nil Settings when nothing was configured yet.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (models.SettingsResult, error) {
	caller, err := s.roles.ResolveCaller(ctx, userID)
	if err != nil {
		return models.SettingsResult{}, err
	}

	return s.entities.resolve(ctx, caller, accessRead)
}

// UpdateSettings merges update into the caller's record and saves it.
//
// A contract upload is staged only after the caller was authorized, is
// referenced by the saved record and becomes public after the save. When
// the save fails the staged file is dropped. When publishing fails after
// the save, the previous record is written back so that no saved record
// points at a missing file.
func (s *settingsService) UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.SettingsResult, error) {
	log := logger.FromContext(ctx)

	caller, err := s.roles.ResolveCaller(ctx, update.UserID)
	if err != nil {
		return models.SettingsResult{}, err
	}

	target, err := s.entities.resolve(ctx, caller, accessWrite)
	if err != nil {
		return models.SettingsResult{}, err
	}

	pending, err := s.attachments.stage(ctx, update.Contract)
	if err != nil {
		log.Err(err).Str("func", "settingsService.UpdateSettings").Msg("error staging contract")
		return models.SettingsResult{}, err
	}

	saved, err := s.save(ctx, target, update, pending)
	if err != nil {
		log.Err(err).Str("func", "settingsService.UpdateSettings").Str("role", string(caller.Role)).Msg("error saving settings")
		s.attachments.discard(ctx, pending)
		return models.SettingsResult{}, err
	}

	if err = s.attachments.commit(ctx, pending); err != nil {
		log.Err(err).Str("func", "settingsService.UpdateSettings").Msg("settings saved but contract was not published")
		if restoreErr := s.restore(ctx, target); restoreErr != nil {
			log.Err(restoreErr).
				Str("func", "settingsService.UpdateSettings").
				Str("contract_file_path", pending.reference).
				Msg("error restoring settings, record references an unpublished contract")
		}
		return models.SettingsResult{}, err
	}

	log.Info().
		Str("func", "settingsService.UpdateSettings").
		Str("role", string(caller.Role)).
		Bool("contract_uploaded", pending != nil).
		Msg("settings updated")

	return saved, nil
}

func (s *settingsService) save(ctx context.Context, target models.SettingsResult, update models.SettingsUpdate, pending *pendingContract) (models.SettingsResult, error) {
	switch target.Role {
	case models.RoleAdmin:
		settings := *target.Settings
		mergeSettingsFields(&settings.SettingsFields, update)
		if pending != nil {
			settings.ContractFilePath = pending.reference
		}

		saved, err := s.settings.SaveSettings(ctx, settings)
		if err != nil {
			return models.SettingsResult{}, err
		}
		target.Settings = &saved

	case models.RoleFilial:
		filial := *target.Filial
		mergeSettingsFields(&filial.SettingsFields, update)
		if pending != nil {
			filial.ContractFilePath = pending.reference
		}

		saved, err := s.filials.SaveFilial(ctx, filial)
		if errors.Is(err, store.ErrFilialNotFound) {
			return models.SettingsResult{}, fmt.Errorf("%w: %w", ErrFilialNotFound, err)
		}
		if err != nil {
			return models.SettingsResult{}, err
		}
		target.Filial = &saved

	default:
		return models.SettingsResult{}, ErrAccessDenied
	}

	return target, nil
}

// restore writes back the record as it was loaded before the update.
func (s *settingsService) restore(ctx context.Context, previous models.SettingsResult) error {
	switch {
	case previous.Settings != nil:
		_, err := s.settings.SaveSettings(ctx, *previous.Settings)
		return err
	case previous.Filial != nil:
		_, err := s.filials.SaveFilial(ctx, *previous.Filial)
		return err
	default:
		return nil
	}
}
