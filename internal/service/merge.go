package service

import "github.com/MKhiriev/cargo-settings/models"

// mergeFields applies a partial update to the fields addressed by target.
//
// Names in clear are reset first. Then every value that is present and
// non-empty overwrites its field, so a field both cleared and sent ends up
// with the sent value. Absent or empty values never change anything. Names
// unknown to target are ignored.
func mergeFields(target map[string]*string, values map[string]models.Optional[string], clear []string) {
	for _, name := range clear {
		if field, ok := target[name]; ok {
			*field = ""
		}
	}

	for name, value := range values {
		field, ok := target[name]
		if !ok || !value.NonZero() {
			continue
		}
		*field = value.Value
	}
}

// settingsTargets does not expose the contract reference: it is only set by
// an upload.
func settingsTargets(f *models.SettingsFields) map[string]*string {
	return map[string]*string{
		models.FieldVideoLink:           &f.VideoLink,
		models.FieldChinaAddress:        &f.ChinaAddress,
		models.FieldWhatsappNumber:      &f.WhatsappNumber,
		models.FieldAboutUsText:         &f.AboutUsText,
		models.FieldProhibitedItemsText: &f.ProhibitedItemsText,
		models.FieldDeliveryTime:        &f.DeliveryTime,
		models.FieldCargoResponsibility: &f.CargoResponsibility,
	}
}

func settingsValues(u models.SettingsUpdate) map[string]models.Optional[string] {
	return map[string]models.Optional[string]{
		models.FieldVideoLink:           u.VideoLink,
		models.FieldChinaAddress:        u.ChinaAddress,
		models.FieldWhatsappNumber:      u.WhatsappNumber,
		models.FieldAboutUsText:         u.AboutUsText,
		models.FieldProhibitedItemsText: u.ProhibitedItemsText,
		models.FieldDeliveryTime:        u.DeliveryTime,
		models.FieldCargoResponsibility: u.CargoResponsibility,
	}
}

func contactsTargets(c *models.Contacts) map[string]*string {
	return map[string]*string{
		models.FieldPhone:         &c.Phone,
		models.FieldWhatsappPhone: &c.WhatsappPhone,
		models.FieldWhatsappLink:  &c.WhatsappLink,
		models.FieldInstagram:     &c.Instagram,
		models.FieldTelegramID:    &c.TelegramID,
		models.FieldTelegramLink:  &c.TelegramLink,
	}
}

func contactsValues(u models.ContactsUpdate) map[string]models.Optional[string] {
	return map[string]models.Optional[string]{
		models.FieldPhone:         u.Phone,
		models.FieldWhatsappPhone: u.WhatsappPhone,
		models.FieldWhatsappLink:  u.WhatsappLink,
		models.FieldInstagram:     u.Instagram,
		models.FieldTelegramID:    u.TelegramID,
		models.FieldTelegramLink:  u.TelegramLink,
	}
}

func mergeSettingsFields(fields *models.SettingsFields, update models.SettingsUpdate) {
	mergeFields(settingsTargets(fields), settingsValues(update), update.Clear)
}

func mergeContacts(contacts *models.Contacts, update models.ContactsUpdate) {
	mergeFields(contactsTargets(contacts), contactsValues(update), update.Clear)
}
