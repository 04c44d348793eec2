package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/models"
)

type filialRepository struct {
	*DB
	logger *logger.Logger
}

func NewFilialRepository(db *DB, logger *logger.Logger) FilialRepository {
	logger.Debug().Msg("creating filial repository")
	return &filialRepository{
		DB:     db,
		logger: logger,
	}
}

// FindFilialByUserPhone returns the filial whose user_phone equals phone.
// When several match, the one with the lowest id wins.
func (f *filialRepository) FindFilialByUserPhone(ctx context.Context, phone string) (models.Filial, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindFilialByUserPhoneQuery(phone)
	if err != nil {
		log.Err(err).Str("func", "filialRepository.FindFilialByUserPhone").Msg("failed to create query")
		return models.Filial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	filial, err := scanFilial(f.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Filial{}, ErrFilialNotFound
	}
	if err != nil {
		f.logQueryError(log, "filialRepository.FindFilialByUserPhone", err, "failed to find filial")
		return models.Filial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return filial, nil
}

// SaveFilial updates the operational fields of the filial with filial.ID.
// Identity fields (phone, user, logo) are left untouched.
func (f *filialRepository) SaveFilial(ctx context.Context, filial models.Filial) (models.Filial, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveFilialQuery(filial)
	if err != nil {
		log.Err(err).Str("func", "filialRepository.SaveFilial").Msg("failed to create query")
		return models.Filial{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanFilial(f.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().Str("func", "filialRepository.SaveFilial").Int64("filial_id", filial.ID).Msg("filial disappeared before save")
		return models.Filial{}, ErrFilialNotFound
	}
	if err != nil {
		f.logQueryError(log, "filialRepository.SaveFilial", err, "failed to save filial")
		return models.Filial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func scanFilial(row *sql.Row) (models.Filial, error) {
	var (
		fl       models.Filial
		logoPath sql.NullString
	)

	err := row.Scan(
		&fl.ID,
		&fl.FilialID,
		&fl.FilialText,
		&fl.FilialAddress,
		&fl.UserPhone,
		&fl.UserID,
		&logoPath,
		&fl.VideoLink,
		&fl.ChinaAddress,
		&fl.WhatsappNumber,
		&fl.AboutUsText,
		&fl.ProhibitedItemsText,
		&fl.DeliveryTime,
		&fl.CargoResponsibility,
		&fl.ContractFilePath,
		&fl.CreatedAt,
		&fl.UpdatedAt,
	)
	if err != nil {
		return models.Filial{}, err
	}

	if logoPath.Valid {
		fl.LogoPath = &logoPath.String
	}
	return fl, nil
}
