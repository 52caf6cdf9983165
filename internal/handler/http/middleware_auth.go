package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

const bearerPrefix = "Bearer "

// auth is the authentication gate of the pipeline.
//
// A request passes only if its "Authorization" header is exactly
// "Bearer <token>" with the configured token. Anything else, including a
// missing header, is answered with 401 and {"error":"Unauthorized"}; the
// next stage is not called, so rejected requests have no side effects.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("path", r.URL.Path).Send()
			writeError(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		if authHeader != h.authHeader {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Str("path", r.URL.Path).Send()
			writeError(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
