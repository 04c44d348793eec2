package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/cargo-settings/models"
)

// Field name constants used to specify which parts of an update should be
// validated.
const (
	// FieldUserID targets the caller id of a settings update.
	FieldUserID = "user_id"

	// FieldClear targets the list of fields to reset.
	FieldClear = "clear"
)

// clearableSettingsFields lists the settings fields a caller may reset.
// The contract reference is deliberately absent: it only changes on upload.
var clearableSettingsFields = []string{
	models.FieldVideoLink,
	models.FieldChinaAddress,
	models.FieldWhatsappNumber,
	models.FieldAboutUsText,
	models.FieldProhibitedItemsText,
	models.FieldDeliveryTime,
	models.FieldCargoResponsibility,
}

var clearableContactsFields = []string{
	models.FieldPhone,
	models.FieldWhatsappPhone,
	models.FieldWhatsappLink,
	models.FieldInstagram,
	models.FieldTelegramID,
	models.FieldTelegramLink,
}

// SettingsValidator checks settings and contacts updates before they reach
// the database.
type SettingsValidator struct {
}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SettingsUpdate:
		return v.validateSettingsUpdate(ctx, value, fields...)
	case *models.SettingsUpdate:
		return v.validateSettingsUpdate(ctx, *value, fields...)

	case models.ContactsUpdate:
		return v.validateContactsUpdate(ctx, value, fields...)
	case *models.ContactsUpdate:
		return v.validateContactsUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateSettingsUpdate(ctx context.Context, update models.SettingsUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldClear}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(update.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldClear:
			if err := validateClearList(update.Clear, clearableSettingsFields); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SettingsValidator) validateContactsUpdate(ctx context.Context, update models.ContactsUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClear}
	}

	for _, f := range fields {
		switch f {
		case FieldClear:
			if err := validateClearList(update.Clear, clearableContactsFields); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateClearList(clear []string, allowed []string) error {
	seen := make(map[string]struct{}, len(clear))
	for _, name := range clear {
		if !slices.Contains(allowed, name) {
			return fmt.Errorf("%w: %q", ErrUnknownClearField, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateClear, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
