package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/utils"
	"github.com/MKhiriev/cargo-settings/models"
)

// maxContactsBody caps the JSON body of POST /updateContacts.
const maxContactsBody = 64 << 10

func (h *Handler) updateContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// an empty body is an update that changes nothing
	var update models.ContactsUpdate
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactsBody)).Decode(&update)
	if err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, r, err, "*Handler.updateContacts")
		return
	}

	contacts, err := h.services.ContactsService.UpdateContacts(r.Context(), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateContacts")
		return
	}

	if _, err = utils.WriteJSON(w, contacts, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateContacts").Msg("error writing response")
	}
}

func (h *Handler) getContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contacts, err := h.services.ContactsService.GetContacts(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.getContacts")
		return
	}

	if _, err = utils.WriteJSON(w, contacts, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getContacts").Msg("error writing response")
	}
}
