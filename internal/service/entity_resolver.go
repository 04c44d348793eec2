package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
)

type accessMode int

const (
	accessRead accessMode = iota
	accessWrite
)

// entityResolver finds the record a caller is allowed to see or change.
type entityResolver struct {
	settings store.SettingsRepository
	filials  store.FilialRepository
}

func newEntityResolver(settings store.SettingsRepository, filials store.FilialRepository) *entityResolver {
	return &entityResolver{
		settings: settings,
		filials:  filials,
	}
}

// resolve dispatches on the caller role:
//   - admin: the Settings singleton. On read a missing record stays nil; on
//     write a new empty one is returned instead.
//   - filial: the Filial bound to the caller's phone. Never created.
//   - anything else: [ErrAccessDenied].
func (e *entityResolver) resolve(ctx context.Context, caller models.Caller, mode accessMode) (models.SettingsResult, error) {
	result := models.SettingsResult{Role: caller.Role}

	switch caller.Role {
	case models.RoleAdmin:
		settings, err := e.settings.GetSettings(ctx)
		if err != nil {
			return models.SettingsResult{}, fmt.Errorf("error loading settings: %w", err)
		}
		if settings == nil && mode == accessWrite {
			settings = models.NewSettings()
		}
		result.Settings = settings
		return result, nil

	case models.RoleFilial:
		// an empty phone would match every filial without an operator
		if caller.Phone == "" {
			return models.SettingsResult{}, ErrFilialNotFound
		}

		filial, err := e.filials.FindFilialByUserPhone(ctx, caller.Phone)
		if errors.Is(err, store.ErrFilialNotFound) {
			return models.SettingsResult{}, fmt.Errorf("%w: %w", ErrFilialNotFound, err)
		}
		if err != nil {
			return models.SettingsResult{}, fmt.Errorf("error loading filial: %w", err)
		}
		result.Filial = &filial
		return result, nil

	default:
		return models.SettingsResult{}, ErrAccessDenied
	}
}
