package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// withLogging writes one entry when a request arrives and one when its
// response is complete. The response itself passes through untouched.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		method := r.Method
		path := r.URL.Path

		log.Info().
			Str("method", method).
			Str("path", path).
			Msg("request")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("path", path).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("response")
	})
}
