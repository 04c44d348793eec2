package models

import (
	"io"
	"time"
)

// SettingsSingletonID is the fixed primary key of the one global Settings
// record (and of the one Contacts record).
const SettingsSingletonID int64 = 1

// Names of the operational fields as they appear in requests and in the
// `clear` list.
const (
	FieldVideoLink           = "videoLink"
	FieldChinaAddress        = "chinaAddress"
	FieldWhatsappNumber      = "whatsappNumber"
	FieldAboutUsText         = "aboutUsText"
	FieldProhibitedItemsText = "prohibitedItemsText"
	FieldDeliveryTime        = "deliveryTime"
	FieldCargoResponsibility = "cargoResponsibility"
)

// SettingsFields are the operational fields shared by the global Settings
// record and every Filial record.
type SettingsFields struct {
	VideoLink           string `json:"videoLink"`
	ChinaAddress        string `json:"chinaAddress"`
	WhatsappNumber      string `json:"whatsappNumber"`
	AboutUsText         string `json:"aboutUsText"`
	ProhibitedItemsText string `json:"prohibitedItemsText"`
	DeliveryTime        string `json:"deliveryTime"`
	CargoResponsibility string `json:"cargoResponsibility"`

	// ContractFilePath is the public path of the last uploaded contract
	// document, e.g. "/uploads/contracts/1700000000000.pdf".
	ContractFilePath string `json:"contractFilePath"`
}

// Settings is the global configuration record used by admin callers.
// At most one exists, keyed by [SettingsSingletonID].
type Settings struct {
	ID int64 `json:"id"`
	SettingsFields
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSettings returns an empty, not yet persisted Settings record.
func NewSettings() *Settings {
	return &Settings{ID: SettingsSingletonID}
}

// Filial is a branch record with its own override of the shared settings
// fields. It is located by the phone of the filial operator.
type Filial struct {
	ID            int64   `json:"id"`
	FilialID      string  `json:"filialId"`
	FilialText    string  `json:"filialText"`
	FilialAddress string  `json:"filialAddress"`
	UserPhone     string  `json:"userPhone"`
	UserID        string  `json:"userId"`
	LogoPath      *string `json:"logoPath"`
	SettingsFields
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingsUpdate is a partial update of [SettingsFields] requested by a caller.
type SettingsUpdate struct {
	UserID string `json:"userId"`

	VideoLink           Optional[string] `json:"videoLink"`
	ChinaAddress        Optional[string] `json:"chinaAddress"`
	WhatsappNumber      Optional[string] `json:"whatsappNumber"`
	AboutUsText         Optional[string] `json:"aboutUsText"`
	ProhibitedItemsText Optional[string] `json:"prohibitedItemsText"`
	DeliveryTime        Optional[string] `json:"deliveryTime"`
	CargoResponsibility Optional[string] `json:"cargoResponsibility"`

	// Clear lists field names that must be reset to an empty value.
	Clear []string `json:"clear,omitempty"`

	// Contract is the uploaded contract document, nil when none was sent.
	Contract *ContractUpload `json:"-"`
}

// ContractUpload is a contract document received with a settings update.
type ContractUpload struct {
	// OriginalName is the client-side file name; only its extension is kept.
	OriginalName string

	// Content streams the document body.
	Content io.Reader
}

// SettingsResult is the record a settings operation resolved to: the global
// Settings for admins, a Filial for branch operators.
type SettingsResult struct {
	Role     Role
	Settings *Settings
	Filial   *Filial
}

// Payload returns the record to be sent to the caller verbatim. For admins
// without a Settings record yet it is a nil *Settings.
func (r SettingsResult) Payload() any {
	if r.Role == RoleFilial {
		return r.Filial
	}
	return r.Settings
}
