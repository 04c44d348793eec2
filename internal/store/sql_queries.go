package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/cargo-settings/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "phone", "role"}

	// operational columns shared by settings and filials, in scan order
	settingsFieldColumns = []string{
		"video_link",
		"china_address",
		"whatsapp_number",
		"about_us_text",
		"prohibited_items_text",
		"delivery_time",
		"cargo_responsibility",
		"contract_file_path",
	}

	settingsColumns = concatColumns([]string{"id"}, settingsFieldColumns, []string{"updated_at"})

	filialColumns = concatColumns(
		[]string{"id", "filial_id", "filial_text", "filial_address", "user_phone", "user_id", "logo_path"},
		settingsFieldColumns,
		[]string{"created_at", "updated_at"},
	)

	contactsFieldColumns = []string{
		"phone",
		"whatsapp_phone",
		"whatsapp_link",
		"instagram",
		"telegram_id",
		"telegram_link",
	}

	contactsColumns = concatColumns([]string{"id"}, contactsFieldColumns, []string{"updated_at"})
)

func concatColumns(parts ...[]string) []string {
	out := make([]string, 0, 16)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func settingsFieldValues(f models.SettingsFields) []any {
	return []any{
		f.VideoLink,
		f.ChinaAddress,
		f.WhatsappNumber,
		f.AboutUsText,
		f.ProhibitedItemsText,
		f.DeliveryTime,
		f.CargoResponsibility,
		f.ContractFilePath,
	}
}

func contactsFieldValues(c models.Contacts) []any {
	return []any{
		c.Phone,
		c.WhatsappPhone,
		c.WhatsappLink,
		c.Instagram,
		c.TelegramID,
		c.TelegramLink,
	}
}

// upsertSuffix overwrites every listed column of the conflicting row and
// returns the stored row.
func upsertSuffix(columns, returning []string) string {
	set := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		set = append(set, c+" = EXCLUDED."+c)
	}
	set = append(set, "updated_at = NOW()")

	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(set, ", ") +
		" RETURNING " + strings.Join(returning, ", ")
}

func buildFindUserByIDQuery(userID string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
}

func buildGetSettingsQuery() (string, []any, error) {
	return psql.
		Select(settingsColumns...).
		From("settings").
		Where(sq.Eq{"id": models.SettingsSingletonID}).
		ToSql()
}

// buildSaveSettingsQuery creates the singleton or overwrites it in place, so
// two concurrent first writes cannot produce two records.
func buildSaveSettingsQuery(settings models.Settings) (string, []any, error) {
	values := append([]any{models.SettingsSingletonID}, settingsFieldValues(settings.SettingsFields)...)

	return psql.
		Insert("settings").
		Columns(concatColumns([]string{"id"}, settingsFieldColumns)...).
		Values(values...).
		Suffix(upsertSuffix(settingsFieldColumns, settingsColumns)).
		ToSql()
}

// buildFindFilialByUserPhoneQuery picks the oldest filial when several share
// a phone.
func buildFindFilialByUserPhoneQuery(phone string) (string, []any, error) {
	return psql.
		Select(filialColumns...).
		From("filials").
		Where(sq.Eq{"user_phone": phone}).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildSaveFilialQuery(filial models.Filial) (string, []any, error) {
	update := psql.Update("filials")
	for i, value := range settingsFieldValues(filial.SettingsFields) {
		update = update.Set(settingsFieldColumns[i], value)
	}

	return update.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": filial.ID}).
		Suffix("RETURNING " + strings.Join(filialColumns, ", ")).
		ToSql()
}

func buildGetContactsQuery() (string, []any, error) {
	return psql.
		Select(contactsColumns...).
		From("contacts").
		Where(sq.Eq{"id": models.SettingsSingletonID}).
		ToSql()
}

func buildSaveContactsQuery(contacts models.Contacts) (string, []any, error) {
	values := append([]any{models.SettingsSingletonID}, contactsFieldValues(contacts)...)

	return psql.
		Insert("contacts").
		Columns(concatColumns([]string{"id"}, contactsFieldColumns)...).
		Values(values...).
		Suffix(upsertSuffix(contactsFieldColumns, contactsColumns)).
		ToSql()
}
