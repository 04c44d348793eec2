package models

import "time"

// Names of the contact fields as they appear in requests and in the
// `clear` list.
const (
	FieldPhone         = "phone"
	FieldWhatsappPhone = "whatsappPhone"
	FieldWhatsappLink  = "whatsappLink"
	FieldInstagram     = "instagram"
	FieldTelegramID    = "telegramId"
	FieldTelegramLink  = "telegramLink"
)

// Contacts is the public contact information of the company.
// At most one exists, keyed by [SettingsSingletonID].
type Contacts struct {
	ID            int64     `json:"id"`
	Phone         string    `json:"phone"`
	WhatsappPhone string    `json:"whatsappPhone"`
	WhatsappLink  string    `json:"whatsappLink"`
	Instagram     string    `json:"instagram"`
	TelegramID    string    `json:"telegramId"`
	TelegramLink  string    `json:"telegramLink"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewContacts returns an empty, not yet persisted Contacts record.
func NewContacts() *Contacts {
	return &Contacts{ID: SettingsSingletonID}
}

// ContactsUpdate is a partial update of [Contacts].
type ContactsUpdate struct {
	Phone         Optional[string] `json:"phone"`
	WhatsappPhone Optional[string] `json:"whatsappPhone"`
	WhatsappLink  Optional[string] `json:"whatsappLink"`
	Instagram     Optional[string] `json:"instagram"`
	TelegramID    Optional[string] `json:"telegramId"`
	TelegramLink  Optional[string] `json:"telegramLink"`

	Clear []string `json:"clear,omitempty"`
}
