package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
)

// contactsService serves the public contact card. Anyone may read or
// change it.
type contactsService struct {
	contacts store.ContactsRepository

	logger *logger.Logger
}

func NewContactsService(contacts store.ContactsRepository, logger *logger.Logger) ContactsService {
	logger.Debug().Msg("creating contacts service")
	return &contactsService{
		contacts: contacts,
		logger:   logger,
	}
}

// GetContacts returns nil when the card was never filled.
func (c *contactsService) GetContacts(ctx context.Context) (*models.Contacts, error) {
	return c.contacts.GetContacts(ctx)
}

func (c *contactsService) UpdateContacts(ctx context.Context, update models.ContactsUpdate) (models.Contacts, error) {
	current, err := c.contacts.GetContacts(ctx)
	if err != nil {
		return models.Contacts{}, fmt.Errorf("error loading contacts: %w", err)
	}
	if current == nil {
		current = models.NewContacts()
	}

	contacts := *current
	mergeContacts(&contacts, update)

	saved, err := c.contacts.SaveContacts(ctx, contacts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactsService.UpdateContacts").Msg("error saving contacts")
		return models.Contacts{}, err
	}

	return saved, nil
}
