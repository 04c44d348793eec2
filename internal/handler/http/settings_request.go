// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/cargo-settings/models"
)

const (
	formFieldUserID   = "userId"
	formFieldClear    = "clear"
	formFieldContract = "contract"

	// multipartMemory is kept in memory before parts spill to temp files.
	multipartMemory = 8 << 20
)

var errUnsupportedContentType = errors.New("unsupported content type")

// settingsRequest is a decoded POST /updateSettings body. close releases
// the uploaded file and any temp files of the multipart form.
type settingsRequest struct {
	update models.SettingsUpdate
	close  func()
}

// decodeSettingsRequest reads a settings update sent as multipart form,
// urlencoded form or JSON. A form field counts as present when its key was
// sent, even with an empty value.
func decodeSettingsRequest(r *http.Request) (settingsRequest, error) {
	req := settingsRequest{close: func() {}}

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return req, fmt.Errorf("%w: %w", errUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return req, fmt.Errorf("error parsing multipart form: %w", err)
		}
		form := r.MultipartForm
		req.update = settingsUpdateFromForm(form.Value)

		upload, file, err := contractFromForm(form)
		if err != nil {
			_ = form.RemoveAll()
			return req, err
		}
		req.update.Contract = upload
		req.close = func() {
			if file != nil {
				_ = file.Close()
			}
			_ = form.RemoveAll()
		}
		return req, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("error parsing form: %w", err)
		}
		req.update = settingsUpdateFromForm(r.PostForm)
		return req, nil

	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&req.update); err != nil {
			return req, fmt.Errorf("error decoding JSON: %w", err)
		}
		req.update.Contract = nil
		return req, nil

	default:
		return req, fmt.Errorf("%w: %s", errUnsupportedContentType, mediaType)
	}
}

func settingsUpdateFromForm(values url.Values) models.SettingsUpdate {
	return models.SettingsUpdate{
		UserID:              values.Get(formFieldUserID),
		VideoLink:           formValue(values, models.FieldVideoLink),
		ChinaAddress:        formValue(values, models.FieldChinaAddress),
		WhatsappNumber:      formValue(values, models.FieldWhatsappNumber),
		AboutUsText:         formValue(values, models.FieldAboutUsText),
		ProhibitedItemsText: formValue(values, models.FieldProhibitedItemsText),
		DeliveryTime:        formValue(values, models.FieldDeliveryTime),
		CargoResponsibility: formValue(values, models.FieldCargoResponsibility),
		Clear:               clearList(values[formFieldClear]),
	}
}

func formValue(values url.Values, key string) models.Optional[string] {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return models.None[string]()
	}
	return models.Some(v[0])
}

// clearList accepts both repeated keys and comma separated names.
func clearList(raw []string) []string {
	var names []string
	for _, item := range raw {
		for _, name := range strings.Split(item, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func contractFromForm(form *multipart.Form) (*models.ContractUpload, io.Closer, error) {
	headers := form.File[formFieldContract]
	if len(headers) == 0 {
		return nil, nil, nil
	}

	header := headers[0]
	file, err := header.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("error opening uploaded contract: %w", err)
	}

	return &models.ContractUpload{
		OriginalName: header.Filename,
		Content:      file,
	}, file, nil
}
