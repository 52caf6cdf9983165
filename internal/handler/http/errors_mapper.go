package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/store"
)

type errorMapping struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorMapping{
	store.ErrUserNotFound: {http.StatusNotFound, app.MsgUserNotFound},

	ErrInvalidUserIDParam: {http.StatusBadRequest, app.MsgInvalidUserID},
	ErrInvalidJSON:        {http.StatusBadRequest, app.MsgInvalidJSON},
}

// statusFromError returns the response status for err and the message that
// may be shown to the client. Unknown errors map to 500 with a fixed message.
func statusFromError(err error) (int, string) {
	for target, m := range errorStatusMap {
		if errors.Is(err, target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
