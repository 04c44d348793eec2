package http

import (
	"net/http"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/utils"
)

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	req, err := decodeSettingsRequest(r)
	if err != nil {
		writeBadRequest(w, r, err, "*Handler.updateSettings")
		return
	}
	defer req.close()

	result, err := h.services.SettingsService.UpdateSettings(r.Context(), req.update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateSettings")
		return
	}

	if _, err = utils.WriteJSON(w, result.Payload(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateSettings").Msg("error writing response")
	}
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.SettingsService.GetSettings(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, r, err, "*Handler.getSettings")
		return
	}

	if _, err = utils.WriteJSON(w, result.Payload(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSettings").Msg("error writing response")
	}
}
