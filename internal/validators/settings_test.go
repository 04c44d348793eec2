// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/cargo-settings/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewSettingsValidator
// ---------------------------------------------------------------------------

func TestNewSettingsValidator(t *testing.T) {
	v := NewSettingsValidator()
	require.NotNil(t, v)
	_, ok := v.(*SettingsValidator)
	assert.True(t, ok)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewSettingsValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// SettingsUpdate
// ---------------------------------------------------------------------------

func TestValidate_SettingsUpdate(t *testing.T) {
	tests := []struct {
		name    string
		update  models.SettingsUpdate
		fields  []string
		wantErr error
	}{
		{
			name:   "valid update without clear",
			update: models.SettingsUpdate{UserID: "u-1", VideoLink: models.Some("http://x")},
		},
		{
			name:   "valid clear list",
			update: models.SettingsUpdate{UserID: "u-1", Clear: []string{models.FieldVideoLink, models.FieldDeliveryTime}},
		},
		{
			name:    "missing user id",
			update:  models.SettingsUpdate{},
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "blank user id",
			update:  models.SettingsUpdate{UserID: "   "},
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "contract reference cannot be cleared",
			update:  models.SettingsUpdate{UserID: "u-1", Clear: []string{"contractFilePath"}},
			wantErr: ErrUnknownClearField,
		},
		{
			name:    "unknown clear field",
			update:  models.SettingsUpdate{UserID: "u-1", Clear: []string{"filialText"}},
			wantErr: ErrUnknownClearField,
		},
		{
			name:    "duplicate clear field",
			update:  models.SettingsUpdate{UserID: "u-1", Clear: []string{models.FieldVideoLink, models.FieldVideoLink}},
			wantErr: ErrDuplicateClear,
		},
		{
			name:   "scoped to clear ignores user id",
			update: models.SettingsUpdate{Clear: []string{models.FieldAboutUsText}},
			fields: []string{FieldClear},
		},
		{
			name:    "unknown scope",
			update:  models.SettingsUpdate{UserID: "u-1"},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewSettingsValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SettingsUpdatePointer(t *testing.T) {
	err := NewSettingsValidator().Validate(context.Background(), &models.SettingsUpdate{})
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

// ---------------------------------------------------------------------------
// ContactsUpdate
// ---------------------------------------------------------------------------

func TestValidate_ContactsUpdate(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ContactsUpdate{}))
	assert.NoError(t, v.Validate(ctx, &models.ContactsUpdate{Clear: []string{models.FieldTelegramID}}))

	err := v.Validate(ctx, models.ContactsUpdate{Clear: []string{models.FieldVideoLink}})
	assert.ErrorIs(t, err, ErrUnknownClearField)

	err = v.Validate(ctx, models.ContactsUpdate{}, FieldUserID)
	assert.ErrorIs(t, err, ErrUnknownField)
}
