package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/models"
)

// contactsRepository stores the Contacts singleton in the "contacts" table.
type contactsRepository struct {
	*DB
	logger *logger.Logger
}

func NewContactsRepository(db *DB, logger *logger.Logger) ContactsRepository {
	logger.Debug().Msg("creating contacts repository")
	return &contactsRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *contactsRepository) GetContacts(ctx context.Context) (*models.Contacts, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetContactsQuery()
	if err != nil {
		log.Err(err).Str("func", "contactsRepository.GetContacts").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contacts, err := scanContacts(c.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		c.logQueryError(log, "contactsRepository.GetContacts", err, "failed to get contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &contacts, nil
}

func (c *contactsRepository) SaveContacts(ctx context.Context, contacts models.Contacts) (models.Contacts, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveContactsQuery(contacts)
	if err != nil {
		log.Err(err).Str("func", "contactsRepository.SaveContacts").Msg("failed to create query")
		return models.Contacts{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanContacts(c.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		c.logQueryError(log, "contactsRepository.SaveContacts", err, "failed to save contacts")
		return models.Contacts{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func scanContacts(row *sql.Row) (models.Contacts, error) {
	var ct models.Contacts
	err := row.Scan(
		&ct.ID,
		&ct.Phone,
		&ct.WhatsappPhone,
		&ct.WhatsappLink,
		&ct.Instagram,
		&ct.TelegramID,
		&ct.TelegramLink,
		&ct.UpdatedAt,
	)
	return ct, err
}
