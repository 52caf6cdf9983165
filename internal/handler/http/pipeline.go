package http

import (
	"github.com/go-chi/chi/v5"
)

// pipeline returns the stages every request passes through, outermost first.
//
// withRecovery must stay first so that a panic in any later stage or handler
// becomes a 500 response. auth runs before withLogging, so rejected requests
// are never access-logged and never reach a handler.
func (h *Handler) pipeline() chi.Middlewares {
	return chi.Chain(
		h.withRecovery,
		h.withTraceID,
		h.auth,
		h.withLogging,
	)
}
