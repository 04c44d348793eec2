// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/models"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository]. The "settings" table holds at most one row, keyed by
// [models.SettingsSingletonID].
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSettings loads the singleton. A missing row is not an error: nil is
// returned so that callers can tell "never configured" apart from failures.
func (s *settingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingsQuery()
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.GetSettings").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := scanSettings(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logQueryError(log, "settingsRepository.GetSettings", err, "failed to get settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &settings, nil
}

// SaveSettings upserts the singleton and returns the row as stored.
func (s *settingsRepository) SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSettingsQuery(settings)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.SaveSettings").Msg("failed to create query")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanSettings(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		s.logQueryError(log, "settingsRepository.SaveSettings", err, "failed to save settings")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "settingsRepository.SaveSettings").Msg("settings saved")
	return saved, nil
}

func scanSettings(row *sql.Row) (models.Settings, error) {
	var st models.Settings
	err := row.Scan(
		&st.ID,
		&st.VideoLink,
		&st.ChinaAddress,
		&st.WhatsappNumber,
		&st.AboutUsText,
		&st.ProhibitedItemsText,
		&st.DeliveryTime,
		&st.CargoResponsibility,
		&st.ContractFilePath,
		&st.UpdatedAt,
	)
	return st, err
}
