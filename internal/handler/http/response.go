package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// handlerFunc is a route handler that reports failure by returning an error
// instead of writing the error response itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc]. A returned error is translated by
// statusFromError; errors without a known mapping are logged and answered
// with a generic 500.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		status, message := statusFromError(err)
		log := logger.FromRequest(r)
		if status == http.StatusInternalServerError {
			log.Err(err).Str("path", r.URL.Path).Msg("request failed")
		} else {
			log.Debug().Err(err).Int("status", status).Msg("request rejected")
		}

		writeError(w, status, message)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, app.MsgInternalServerError)
}
