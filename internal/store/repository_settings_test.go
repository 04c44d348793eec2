package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsRowColumns = []string{
	"id", "video_link", "china_address", "whatsapp_number", "about_us_text",
	"prohibited_items_text", "delivery_time", "cargo_responsibility",
	"contract_file_path", "updated_at",
}

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &settingsRepository{DB: db, logger: logger.Nop()}, mock
}

func TestSettingsRepository_GetSettings_Found(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM settings WHERE id = \\$1").
		WithArgs(models.SettingsSingletonID).
		WillReturnRows(sqlmock.NewRows(settingsRowColumns).
			AddRow(int64(1), "http://x", "Guangzhou", "", "", "", "", "", "/uploads/contracts/1.pdf", now))

	got, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "http://x", got.VideoLink)
	assert.Equal(t, "Guangzhou", got.ChinaAddress)
	assert.Equal(t, "/uploads/contracts/1.pdf", got.ContractFilePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_GetSettings_Missing(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectQuery("FROM settings").
		WillReturnRows(sqlmock.NewRows(settingsRowColumns))

	got, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSettingsRepository_GetSettings_DBError(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectQuery("FROM settings").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	got, err := repo.GetSettings(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSettingsRepository_SaveSettings_Upserts(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)
	now := time.Now()

	in := models.Settings{
		ID: models.SettingsSingletonID,
		SettingsFields: models.SettingsFields{
			VideoLink:        "http://x",
			DeliveryTime:     "10 days",
			ContractFilePath: "/uploads/contracts/1.pdf",
		},
	}

	mock.ExpectQuery("INSERT INTO settings (.+) ON CONFLICT \\(id\\) DO UPDATE SET (.+) RETURNING").
		WithArgs(int64(1), "http://x", "", "", "", "", "10 days", "", "/uploads/contracts/1.pdf").
		WillReturnRows(sqlmock.NewRows(settingsRowColumns).
			AddRow(int64(1), "http://x", "", "", "", "", "10 days", "", "/uploads/contracts/1.pdf", now))

	saved, err := repo.SaveSettings(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, in.SettingsFields, saved.SettingsFields)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_SaveSettings_DBError(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectQuery("INSERT INTO settings").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.SaveSettings(context.Background(), *models.NewSettings())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSettingsRepository_SaveSettings_NoRowsIsFailure(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectQuery("INSERT INTO settings").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SaveSettings(context.Background(), *models.NewSettings())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
