package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/service"
	"github.com/MKhiriev/cargo-settings/internal/utils"
	"github.com/MKhiriev/cargo-settings/models"
)

const (
	messageInvalidRequest = "Invalid request"
	messageServerError    = "Server error"
)

type errorReply struct {
	status  int
	message string
}

var errorReplyMap = map[error]errorReply{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, messageInvalidRequest},
	service.ErrValidationNoUserID:  {http.StatusBadRequest, messageInvalidRequest},
	service.ErrUserNotFound:        {http.StatusNotFound, "User not found"},
	service.ErrFilialNotFound:      {http.StatusNotFound, "Filial not found"},
	service.ErrAccessDenied:        {http.StatusForbidden, "Access denied"},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorReplyMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, messageServerError}
}

// writeError answers with the status and message matching err. Server
// errors are logged with the failure; client errors at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	reply := replyFromError(err)

	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", reply.status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Message: reply.message}, reply.status); wErr != nil {
		log.Err(wErr).Str("func", fn).Msg("error writing error response")
	}
}

// writeBadRequest is used for bodies that could not be decoded at all.
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error, fn string) {
	writeError(w, r, errors.Join(service.ErrInvalidDataProvided, err), fn)
}
