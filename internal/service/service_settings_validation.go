package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/validators"
	"github.com/MKhiriev/cargo-settings/models"
)

type SettingsValidationService struct {
	inner     SettingsService
	validator validators.Validator
}

func NewSettingsValidationService() SettingsServiceWrapper {
	return &SettingsValidationService{
		validator: validators.NewSettingsValidator(),
	}
}

// GetSettings is not validated: a missing id is reported as an unknown user
// by the inner service.
func (v *SettingsValidationService) GetSettings(ctx context.Context, userID string) (models.SettingsResult, error) {
	return v.inner.GetSettings(ctx, userID)
}

func (v *SettingsValidationService) UpdateSettings(ctx context.Context, update models.SettingsUpdate) (models.SettingsResult, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.SettingsResult{}, validationError(err)
	}

	return v.inner.UpdateSettings(ctx, update)
}

func (v *SettingsValidationService) Wrap(inner SettingsService) SettingsService {
	v.inner = inner
	return v
}

type ContactsValidationService struct {
	inner     ContactsService
	validator validators.Validator
}

func NewContactsValidationService() ContactsServiceWrapper {
	return &ContactsValidationService{
		validator: validators.NewSettingsValidator(),
	}
}

func (v *ContactsValidationService) GetContacts(ctx context.Context) (*models.Contacts, error) {
	return v.inner.GetContacts(ctx)
}

func (v *ContactsValidationService) UpdateContacts(ctx context.Context, update models.ContactsUpdate) (models.Contacts, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Contacts{}, validationError(err)
	}

	return v.inner.UpdateContacts(ctx, update)
}

func (v *ContactsValidationService) Wrap(inner ContactsService) ContactsService {
	v.inner = inner
	return v
}

func validationError(err error) error {
	if errors.Is(err, validators.ErrInvalidUserID) {
		return fmt.Errorf("%w: %w", ErrValidationNoUserID, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
